package cli

import (
	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notificaciones",
		Short:   "Preferencias de notificación",
		Aliases: []string{"notifications"},
	}
	cmd.AddCommand(
		newNotificationsShowCmd(app),
		newNotificationsSetCmd(app),
	)
	return cmd
}

func newNotificationsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Ver preferencias actuales",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			prefs, err := app.NotifA.GetPreferences(cmd.Context())
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			onOff := func(b bool) string {
				if b {
					return "activado"
				}
				return "desactivado"
			}
			r.table([]string{"PREFERENCIA", "VALOR"}, [][]string{
				{"Recordatorios de citas", onOff(prefs.AppointmentReminders)},
				{"Cambios de estado", onOff(prefs.StatusChanges)},
				{"Promociones", onOff(prefs.Promotions)},
				{"Horario activo", prefs.ActiveFrom + " - " + prefs.ActiveUntil},
			})
			return nil
		},
	}
}

func newNotificationsSetCmd(app *App) *cobra.Command {
	var reminders, statusChanges, promotions bool
	var from, until string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Actualizar preferencias (se envía el objeto completo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			prefs := model.NotificationPreferences{
				AppointmentReminders: reminders,
				StatusChanges:        statusChanges,
				Promotions:           promotions,
				ActiveFrom:           from,
				ActiveUntil:          until,
			}
			if err := app.NotifA.UpdatePreferences(cmd.Context(), prefs); err != nil {
				r.errorf("No se pudo actualizar: %s", apierr.Message(err))
				return err
			}
			r.successf("Preferencias actualizadas")
			return nil
		},
	}
	cmd.Flags().BoolVar(&reminders, "recordatorios", true, "recordatorios de citas")
	cmd.Flags().BoolVar(&statusChanges, "cambios", true, "avisos de cambios de estado")
	cmd.Flags().BoolVar(&promotions, "promociones", false, "promociones")
	cmd.Flags().StringVar(&from, "desde", "08:00", "inicio del horario activo")
	cmd.Flags().StringVar(&until, "hasta", "21:00", "fin del horario activo")
	return cmd
}

package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/reminder"
)

func newRemindersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordatorios",
		Short: "Recordatorios locales de citas",
	}
	cmd.AddCommand(newRemindersRunCmd(app))
	return cmd
}

func newRemindersRunCmd(app *App) *cobra.Command {
	var leadMinutes, intervalMinutes int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ejecutar el servicio de recordatorios",
		Long: "Consulta periódicamente las citas próximas y programa un " +
			"recordatorio local para cada una, con la anticipación configurada.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			if leadMinutes <= 0 {
				leadMinutes = app.Config.Reminder.LeadMinutes
			}
			if intervalMinutes <= 0 {
				intervalMinutes = app.Config.Reminder.CheckInterval
			}

			notifier := reminder.NewLocalNotifier(app.Log, func(rem reminder.Reminder) {
				r.infof("🔔 %s — %s", rem.Title, rem.Body)
			})
			scheduler := reminder.NewScheduler(notifier, app.Log, app.Metrics)
			worker := reminder.NewWorker(
				app.AppointmentsA, scheduler, app.Log,
				time.Duration(leadMinutes)*time.Minute,
				time.Duration(intervalMinutes)*time.Minute,
			)

			worker.Start(cmd.Context())
			defer worker.Stop()
			r.infof("Servicio de recordatorios en ejecución (Ctrl+C para salir)")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&leadMinutes, "anticipacion", 0, "minutos de anticipación")
	cmd.Flags().IntVar(&intervalMinutes, "intervalo", 0, "minutos entre consultas")
	return cmd
}

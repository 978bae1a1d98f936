package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newDoctorsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "medicos",
		Short:   "Consultar médicos",
		Aliases: []string{"doctors"},
	}
	cmd.AddCommand(
		newDoctorsListCmd(app),
		newDoctorsAvailabilityCmd(app),
	)
	return cmd
}

func newDoctorsListCmd(app *App) *cobra.Command {
	var specialtyID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar médicos",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			doctors, err := app.DoctorsA.List(cmd.Context(), specialtyID)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			rows := make([][]string, 0)
			for _, d := range doctors {
				specs := ""
				for i, s := range d.Specialties {
					if i > 0 {
						specs += ", "
					}
					specs += s.Name
				}
				active := "sí"
				if !d.Active {
					active = "no"
				}
				rows = append(rows, []string{
					strconv.FormatInt(d.ID, 10),
					d.FullName(),
					specs,
					d.License,
					active,
				})
			}
			r.table([]string{"ID", "NOMBRE", "ESPECIALIDADES", "LICENCIA", "ACTIVO"}, rows)
			return nil
		},
	}
	cmd.Flags().Int64Var(&specialtyID, "especialidad", 0, "filtrar por especialidad")
	return cmd
}

func newDoctorsAvailabilityCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "disponibilidad <id>",
		Short: "Ver horarios disponibles de un médico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			day, err := time.ParseInLocation(time.DateOnly, date, time.Local)
			if err != nil {
				return fmt.Errorf("fecha inválida (usa AAAA-MM-DD): %s", date)
			}
			r := newRenderer(app.Theme)

			slots, err := app.DoctorsA.Availability(cmd.Context(), id, day)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			rows := make([][]string, 0)
			for _, s := range slots {
				state := "libre"
				if !s.Available {
					state = "ocupado"
				}
				rows = append(rows, []string{
					s.Start.Format("15:04"),
					s.End.Format("15:04"),
					state,
				})
			}
			r.table([]string{"INICIO", "FIN", "ESTADO"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "fecha", time.Now().Format(time.DateOnly), "día a consultar (AAAA-MM-DD)")
	return cmd
}

func newSpecialtiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "especialidades",
		Short:   "Consultar especialidades",
		Aliases: []string{"specialties"},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Listar especialidades",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			specs, err := app.SpecialtiesA.List(cmd.Context())
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			rows := make([][]string, 0)
			for _, s := range specs {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10), s.Name, s.Description,
				})
			}
			r.table([]string{"ID", "NOMBRE", "DESCRIPCIÓN"}, rows)
			return nil
		},
	})
	return cmd
}

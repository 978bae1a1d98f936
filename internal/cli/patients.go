package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newPatientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pacientes",
		Short:   "Gestionar pacientes",
		Aliases: []string{"patients"},
	}
	cmd.AddCommand(
		newPatientsListCmd(app),
		newPatientsCreateCmd(app),
		newPatientsDeleteCmd(app),
		newPatientsHistoryCmd(app),
	)
	return cmd
}

func newPatientsListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar pacientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			app.Patients.Fetch(cmd.Context(), model.ListParams{Search: search})
			if msg := app.Patients.Err(); msg != "" {
				r.errorf("%s", msg)
				return errors.New(msg)
			}

			rows := make([][]string, 0)
			for _, p := range app.Patients.Items() {
				rows = append(rows, []string{
					strconv.FormatInt(p.ID, 10),
					p.Name + " " + p.LastName,
					p.Email,
					p.Phone,
				})
			}
			r.table([]string{"ID", "NOMBRE", "EMAIL", "TELÉFONO"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "buscar", "", "búsqueda por nombre o email")
	return cmd
}

func newPatientsCreateCmd(app *App) *cobra.Command {
	var req model.CreatePatientRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Registrar un paciente",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			p, err := app.Patients.Create(cmd.Context(), req)
			if err != nil {
				r.errorf("No se pudo registrar: %s", apierr.Message(err))
				return err
			}
			r.successf("Paciente %d registrado", p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "nombre", "", "nombre")
	cmd.Flags().StringVar(&req.LastName, "apellido", "", "apellido")
	cmd.Flags().StringVar(&req.Email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&req.Phone, "telefono", "", "teléfono")
	cmd.Flags().StringVar(&req.Address, "direccion", "", "dirección")
	cmd.Flags().StringVar(&req.DateOfBirth, "nacimiento", "", "fecha de nacimiento (AAAA-MM-DD)")
	cmd.Flags().StringVar(&req.Gender, "genero", "", "género")
	cmd.MarkFlagRequired("nombre")
	return cmd
}

func newPatientsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un paciente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			if err := app.Patients.Delete(cmd.Context(), id); err != nil {
				r.errorf("No se pudo eliminar: %s", apierr.Message(err))
				return err
			}
			r.successf("Paciente %d eliminado", id)
			return nil
		},
	}
}

func newPatientsHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "historial <id>",
		Short: "Ver el historial clínico de un paciente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			records, err := app.PatientsA.History(cmd.Context(), id)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			rows := make([][]string, 0)
			for _, rec := range records {
				rows = append(rows, []string{
					rec.Date.Format("02/01/2006"),
					rec.DoctorName,
					rec.Diagnosis,
					rec.Treatment,
				})
			}
			r.table([]string{"FECHA", "MÉDICO", "DIAGNÓSTICO", "TRATAMIENTO"}, rows)
			return nil
		},
	}
}

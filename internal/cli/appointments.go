package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newAppointmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "citas",
		Short:   "Gestionar citas",
		Aliases: []string{"appointments"},
	}
	cmd.AddCommand(
		newAppointmentsListCmd(app),
		newAppointmentsShowCmd(app),
		newAppointmentsCreateCmd(app),
		newAppointmentsCancelCmd(app),
		newAppointmentsActionCmd(app, "aprobar", "Aprobar una cita pendiente",
			[]string{model.RoleAdmin, model.RoleSuperAdmin},
			func(cmd *cobra.Command, id int64) (*model.Appointment, error) {
				return app.Appointments.Approve(cmd.Context(), id)
			}),
		newAppointmentsRejectCmd(app),
		newAppointmentsActionCmd(app, "confirmar", "Confirmar asistencia a una cita",
			nil,
			func(cmd *cobra.Command, id int64) (*model.Appointment, error) {
				return app.Appointments.Confirm(cmd.Context(), id)
			}),
		newAppointmentsCompleteCmd(app),
	)
	return cmd
}

func newAppointmentsListCmd(app *App) *cobra.Command {
	var status string
	var doctorID, patientID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar citas",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			app.Appointments.Fetch(cmd.Context(), model.AppointmentFilters{
				Status:    model.AppointmentStatus(status),
				DoctorID:  doctorID,
				PatientID: patientID,
			})
			if msg := app.Appointments.Err(); msg != "" {
				r.errorf("%s", msg)
				return errors.New(msg)
			}

			rows := make([][]string, 0)
			for _, apt := range app.Appointments.Items() {
				doctor := "-"
				if apt.Doctor != nil {
					doctor = apt.Doctor.FullName()
				}
				rows = append(rows, []string{
					strconv.FormatInt(apt.ID, 10),
					apt.DateTime.Format("02/01/2006 15:04"),
					doctor,
					string(apt.Status),
					apt.Reason,
				})
			}
			r.table([]string{"ID", "FECHA", "MÉDICO", "ESTADO", "MOTIVO"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "estado", "", "filtrar por estado")
	cmd.Flags().Int64Var(&doctorID, "medico", 0, "filtrar por médico")
	cmd.Flags().Int64Var(&patientID, "paciente", 0, "filtrar por paciente")
	return cmd
}

func newAppointmentsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Ver el detalle de una cita",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			apt, err := app.AppointmentsA.Get(cmd.Context(), id)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			rows := [][]string{
				{"Fecha", apt.DateTime.Format("02/01/2006 15:04")},
				{"Estado", string(apt.Status)},
				{"Motivo", apt.Reason},
			}
			if apt.Patient != nil {
				rows = append(rows, []string{"Paciente", apt.Patient.Name + " " + apt.Patient.LastName})
			}
			if apt.Doctor != nil {
				rows = append(rows, []string{"Médico", apt.Doctor.FullName()})
			}
			if apt.Diagnosis != "" {
				rows = append(rows, []string{"Diagnóstico", apt.Diagnosis})
			}
			if apt.Treatment != "" {
				rows = append(rows, []string{"Tratamiento", apt.Treatment})
			}
			if apt.Cost > 0 {
				rows = append(rows, []string{"Costo", fmt.Sprintf("%.2f", apt.Cost)})
			}
			r.table([]string{"CAMPO", "VALOR"}, rows)
			return nil
		},
	}
}

func newAppointmentsCreateCmd(app *App) *cobra.Command {
	var req model.CreateAppointmentRequest
	var when string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Agendar una cita",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			dt, err := time.ParseInLocation("2006-01-02 15:04", when, time.Local)
			if err != nil {
				return fmt.Errorf("fecha inválida (usa AAAA-MM-DD HH:MM): %s", when)
			}
			req.DateTime = dt

			apt, err := app.Appointments.Create(cmd.Context(), req)
			if err != nil {
				r.errorf("No se pudo agendar: %s", apierr.Message(err))
				return err
			}
			r.successf("Cita %d agendada para %s", apt.ID, apt.DateTime.Format("02/01/2006 15:04"))
			return nil
		},
	}
	cmd.Flags().Int64Var(&req.PatientID, "paciente", 0, "id del paciente")
	cmd.Flags().Int64Var(&req.DoctorID, "medico", 0, "id del médico")
	cmd.Flags().StringVar(&when, "fecha", "", "fecha y hora (AAAA-MM-DD HH:MM)")
	cmd.Flags().StringVar(&req.Reason, "motivo", "", "motivo de la consulta")
	cmd.Flags().StringVar(&req.Notes, "notas", "", "notas adicionales")
	cmd.MarkFlagRequired("medico")
	cmd.MarkFlagRequired("fecha")
	cmd.MarkFlagRequired("motivo")
	return cmd
}

func newAppointmentsCancelCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancelar una cita",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			if err := app.Appointments.Cancel(cmd.Context(), id, reason); err != nil {
				r.errorf("No se pudo cancelar: %s", apierr.Message(err))
				return err
			}
			r.successf("Cita %d cancelada", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "motivo", "", "motivo de la cancelación")
	return cmd
}

func newAppointmentsRejectCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "rechazar <id>",
		Short: "Rechazar una cita pendiente",
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

			apt, err := app.Appointments.Reject(cmd.Context(), id, reason)
			if err != nil {
				r.errorf("No se pudo rechazar: %s", apierr.Message(err))
				return err
			}
			r.successf("Cita %d ahora está %s", apt.ID, apt.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "motivo", "", "motivo del rechazo")
	return cmd
}

func newAppointmentsCompleteCmd(app *App) *cobra.Command {
	var req model.CompleteAppointmentRequest

	cmd := &cobra.Command{
		Use:   "completar <id>",
		Short: "Cerrar una cita con diagnóstico",
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

			apt, err := app.Appointments.Complete(cmd.Context(), id, req)
			if err != nil {
				r.errorf("No se pudo completar: %s", apierr.Message(err))
				return err
			}
			r.successf("Cita %d completada", apt.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Diagnosis, "diagnostico", "", "diagnóstico")
	cmd.Flags().StringVar(&req.Treatment, "tratamiento", "", "tratamiento")
	cmd.Flags().Float64Var(&req.Cost, "costo", 0, "costo de la consulta")
	cmd.MarkFlagRequired("diagnostico")
	return cmd
}

// newAppointmentsActionCmd builds the single-id transition commands that
// share the same shape (approve, confirm).
func newAppointmentsActionCmd(app *App, use, short string, roles []string, call func(*cobra.Command, int64) (*model.Appointment, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if len(roles) > 0 {
				if err := app.RequireRole(roles...); err != nil {
					return err
				}
			} else if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			apt, err := call(cmd, id)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			r.successf("Cita %d ahora está %s", apt.ID, apt.Status)
			return nil
		},
	}
}

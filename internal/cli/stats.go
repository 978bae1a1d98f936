package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Ver estadísticas del sistema",
		Aliases: []string{"stats"},
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			app.Stats.FetchDashboard(cmd.Context())
			if msg := app.Stats.Err(); msg != "" {
				r.errorf("%s", msg)
				return errors.New(msg)
			}

			d := app.Stats.Dashboard()
			r.table([]string{"INDICADOR", "VALOR"}, [][]string{
				{"Citas totales", strconv.Itoa(d.TotalAppointments)},
				{"Citas hoy", strconv.Itoa(d.TodayAppointments)},
				{"Pendientes de aprobar", strconv.Itoa(d.PendingApprovals)},
				{"Pacientes", strconv.Itoa(d.TotalPatients)},
				{"Médicos", strconv.Itoa(d.TotalDoctors)},
				{"Usuarios activos", strconv.Itoa(d.ActiveUsers)},
				{"Ingresos del mes", fmt.Sprintf("%.2f", d.MonthlyRevenue)},
			})

			app.Stats.FetchCharts(cmd.Context())
			if byStatus := app.Stats.ByStatus(); len(byStatus) > 0 {
				r.infof("")
				rows := make([][]string, 0, len(byStatus))
				for _, sc := range byStatus {
					rows = append(rows, []string{string(sc.Status), strconv.Itoa(sc.Count)})
				}
				r.table([]string{"ESTADO", "CITAS"}, rows)
			}
			if byDoctor := app.Stats.ByDoctor(); len(byDoctor) > 0 {
				r.infof("")
				rows := make([][]string, 0, len(byDoctor))
				for _, dc := range byDoctor {
					rows = append(rows, []string{dc.DoctorName, strconv.Itoa(dc.Count)})
				}
				r.table([]string{"MÉDICO", "CITAS"}, rows)
			}

			app.Stats.FetchActivity(cmd.Context())
			activity := app.Stats.Activity()
			if len(activity) > 0 {
				r.infof("")
				rows := make([][]string, 0, len(activity))
				for _, item := range activity {
					rows = append(rows, []string{
						item.Timestamp.Format("02/01 15:04"), item.Type, item.Description,
					})
				}
				r.table([]string{"FECHA", "TIPO", "ACTIVIDAD"}, rows)
			}
			return nil
		},
	}
	return cmd
}

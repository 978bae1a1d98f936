package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newReportsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reportes",
		Short:   "Consultar y exportar reportes",
		Aliases: []string{"reports"},
	}
	cmd.AddCommand(
		newReportsAppointmentsCmd(app),
		newReportsDoctorsCmd(app),
		newReportsExportCmd(app),
	)
	return cmd
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromStr != "" {
		from, err = time.ParseInLocation(time.DateOnly, fromStr, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("fecha inválida: %s", fromStr)
		}
	}
	if toStr != "" {
		to, err = time.ParseInLocation(time.DateOnly, toStr, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("fecha inválida: %s", toStr)
		}
	}
	return from, to, nil
}

func newReportsAppointmentsCmd(app *App) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "citas",
		Short: "Reporte de citas por período",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			report, err := app.ReportsA.Appointments(cmd.Context(), from, to)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}

			rows := [][]string{{"Total", strconv.Itoa(report.Total)}}
			for _, sc := range report.ByStatus {
				rows = append(rows, []string{string(sc.Status), strconv.Itoa(sc.Count)})
			}
			rows = append(rows, []string{"Ingresos", fmt.Sprintf("%.2f", report.Revenue)})
			r.table([]string{"CONCEPTO", "VALOR"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&fromStr, "desde", "", "inicio del período (AAAA-MM-DD)")
	cmd.Flags().StringVar(&toStr, "hasta", "", "fin del período (AAAA-MM-DD)")
	return cmd
}

func newReportsDoctorsCmd(app *App) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "medicos",
		Short: "Reporte de citas por médico",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			report, err := app.ReportsA.Doctors(cmd.Context(), from, to)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}

			rows := make([][]string, 0, len(report.Doctors))
			for _, dc := range report.Doctors {
				rows = append(rows, []string{
					strconv.FormatInt(dc.DoctorID, 10), dc.DoctorName, strconv.Itoa(dc.Count),
				})
			}
			r.table([]string{"ID", "MÉDICO", "CITAS"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&fromStr, "desde", "", "inicio del período (AAAA-MM-DD)")
	cmd.Flags().StringVar(&toStr, "hasta", "", "fin del período (AAAA-MM-DD)")
	return cmd
}

func newReportsExportCmd(app *App) *cobra.Command {
	var fromStr, toStr, format, output string

	cmd := &cobra.Command{
		Use:   "export <citas|medicos>",
		Short: "Exportar un reporte a archivo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			data, err := app.ReportsA.Export(cmd.Context(), args[0], format, from, to)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			if output == "" {
				output = fmt.Sprintf("reporte_%s.%s", args[0], format)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			r.successf("Reporte guardado en %s (%d bytes)", output, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&fromStr, "desde", "", "inicio del período (AAAA-MM-DD)")
	cmd.Flags().StringVar(&toStr, "hasta", "", "fin del período (AAAA-MM-DD)")
	cmd.Flags().StringVar(&format, "formato", model.ExportFormatPDF, "pdf o xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo de salida")
	return cmd
}

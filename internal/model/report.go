package model

import "time"

// AppointmentsReport is the summary block of /reportes/citas.
type AppointmentsReport struct {
	From     time.Time     `json:"desde"`
	To       time.Time     `json:"hasta"`
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"por_estado"`
	Revenue  float64       `json:"ingresos"`
}

// DoctorsReport is the summary block of /reportes/medicos.
type DoctorsReport struct {
	From    time.Time     `json:"desde"`
	To      time.Time     `json:"hasta"`
	Doctors []DoctorCount `json:"medicos"`
}

// Export formats accepted by /reportes/exportar.
const (
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)

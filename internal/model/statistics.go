package model

import "time"

// DashboardStats is the aggregate block the admin dashboard renders.
// All aggregation happens server-side; the client only displays it.
type DashboardStats struct {
	TotalAppointments int     `json:"total_citas"`
	TodayAppointments int     `json:"citas_hoy"`
	PendingApprovals  int     `json:"citas_pendientes"`
	TotalPatients     int     `json:"total_pacientes"`
	TotalDoctors      int     `json:"total_medicos"`
	ActiveUsers       int     `json:"usuarios_activos"`
	MonthlyRevenue    float64 `json:"ingresos_mes"`
}

// StatusCount is one slice of the appointments-by-status chart.
type StatusCount struct {
	Status AppointmentStatus `json:"estado"`
	Count  int               `json:"total"`
}

// DoctorCount is one row of the appointments-by-doctor ranking.
type DoctorCount struct {
	DoctorID   int64  `json:"medico_id"`
	DoctorName string `json:"medico"`
	Count      int    `json:"total"`
}

// ActivityItem is one entry of the recent-activity feed.
type ActivityItem struct {
	ID          int64     `json:"id"`
	Type        string    `json:"tipo"`
	Description string    `json:"descripcion"`
	Timestamp   time.Time `json:"fecha"`
}

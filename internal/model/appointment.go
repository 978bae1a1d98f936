package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pendiente"
	AppointmentStatusScheduled  AppointmentStatus = "programada"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmada"
	AppointmentStatusInProgress AppointmentStatus = "en_curso"
	AppointmentStatusCompleted  AppointmentStatus = "completada"
	AppointmentStatusCancelled  AppointmentStatus = "cancelada"
	AppointmentStatusNoShow     AppointmentStatus = "no_asistio"
)

// Appointment mirrors the server's cita resource. Status transitions are
// requested through distinct endpoints; the client stores whatever status
// the server last returned and never enforces legal transitions itself.
type Appointment struct {
	ID        int64             `json:"id"`
	PatientID int64             `json:"paciente_id"`
	DoctorID  int64             `json:"medico_id"`
	Patient   *Patient          `json:"paciente,omitempty"`
	Doctor    *Doctor           `json:"medico,omitempty"`
	DateTime  time.Time         `json:"fecha_hora"`
	Status    AppointmentStatus `json:"estado"`
	Reason    string            `json:"motivo,omitempty"`
	Notes     string            `json:"notas,omitempty"`
	Diagnosis string            `json:"diagnostico,omitempty"`
	Treatment string            `json:"tratamiento,omitempty"`
	Cost      float64           `json:"costo,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Upcoming reports whether the appointment starts after now.
func (a Appointment) Upcoming(now time.Time) bool {
	return a.DateTime.After(now)
}

// CreateAppointmentRequest books a cita. PatientID may be zero when a
// patient books for themself; the server resolves it from the token.
type CreateAppointmentRequest struct {
	PatientID int64     `json:"paciente_id,omitempty"`
	DoctorID  int64     `json:"medico_id" validate:"required"`
	DateTime  time.Time `json:"fecha_hora" validate:"required"`
	Reason    string    `json:"motivo" validate:"required,max=500"`
	Notes     string    `json:"notas" validate:"max=1000"`
}

type UpdateAppointmentRequest struct {
	DateTime  *time.Time `json:"fecha_hora,omitempty"`
	Reason    *string    `json:"motivo,omitempty"`
	Notes     *string    `json:"notas,omitempty"`
	Diagnosis *string    `json:"diagnostico,omitempty"`
	Treatment *string    `json:"tratamiento,omitempty"`
	Cost      *float64   `json:"costo,omitempty"`
}

// CompleteAppointmentRequest carries the clinical fields the doctor fills
// in when closing an appointment.
type CompleteAppointmentRequest struct {
	Diagnosis string  `json:"diagnostico" validate:"required"`
	Treatment string  `json:"tratamiento"`
	Cost      float64 `json:"costo"`
}

type AppointmentFilters struct {
	Status    AppointmentStatus
	DoctorID  int64
	PatientID int64
	StartDate time.Time
	EndDate   time.Time
}

package model

import "time"

// Doctor mirrors the server's medico resource.
type Doctor struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"usuario_id,omitempty"`
	Name        string      `json:"nombre"`
	LastName    string      `json:"apellido,omitempty"`
	Email       string      `json:"email,omitempty"`
	Phone       string      `json:"telefono,omitempty"`
	License     string      `json:"numero_licencia"`
	Active      bool        `json:"activo"`
	Specialties []Specialty `json:"especialidades,omitempty"`
	Schedule    []WorkShift `json:"horario,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// FullName joins name and last name with the Dr. prefix the screens used.
func (d Doctor) FullName() string {
	name := d.Name
	if d.LastName != "" {
		name = d.Name + " " + d.LastName
	}
	return "Dr. " + name
}

// WorkShift is one per-weekday time range of a doctor's schedule.
// Weekday 0 is Sunday, matching the server. Times are "HH:MM" strings.
type WorkShift struct {
	Weekday int    `json:"dia_semana"`
	Start   string `json:"hora_inicio"`
	End     string `json:"hora_fin"`
}

// TimeSlot is one bookable interval from the availability endpoint.
type TimeSlot struct {
	Start     time.Time `json:"inicio"`
	End       time.Time `json:"fin"`
	Available bool      `json:"disponible"`
}

type CreateDoctorRequest struct {
	Name         string      `json:"nombre" validate:"required"`
	LastName     string      `json:"apellido"`
	Email        string      `json:"email" validate:"omitempty,email"`
	Phone        string      `json:"telefono"`
	License      string      `json:"numero_licencia" validate:"required"`
	SpecialtyIDs []int64     `json:"especialidad_ids" validate:"required,min=1"`
	Schedule     []WorkShift `json:"horario"`
}

type UpdateDoctorRequest struct {
	Name         *string     `json:"nombre,omitempty"`
	LastName     *string     `json:"apellido,omitempty"`
	Email        *string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string     `json:"telefono,omitempty"`
	License      *string     `json:"numero_licencia,omitempty"`
	Active       *bool       `json:"activo,omitempty"`
	SpecialtyIDs []int64     `json:"especialidad_ids,omitempty"`
	Schedule     []WorkShift `json:"horario,omitempty"`
}

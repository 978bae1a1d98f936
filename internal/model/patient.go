package model

import "time"

// Patient mirrors the server's paciente resource.
type Patient struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"usuario_id,omitempty"`
	Name           string     `json:"nombre"`
	LastName       string     `json:"apellido,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"telefono,omitempty"`
	Address        string     `json:"direccion,omitempty"`
	DateOfBirth    string     `json:"fecha_nacimiento,omitempty"`
	Gender         string     `json:"genero,omitempty"`
	BloodType      string     `json:"tipo_sangre,omitempty"`
	Allergies      string     `json:"alergias,omitempty"`
	MedicalHistory string     `json:"historial_medico,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type CreatePatientRequest struct {
	Name        string `json:"nombre" validate:"required"`
	LastName    string `json:"apellido"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"telefono"`
	Address     string `json:"direccion"`
	DateOfBirth string `json:"fecha_nacimiento"`
	Gender      string `json:"genero" validate:"omitempty,oneof=masculino femenino otro"`
	BloodType   string `json:"tipo_sangre"`
	Allergies   string `json:"alergias"`
}

type UpdatePatientRequest struct {
	Name           *string `json:"nombre,omitempty"`
	LastName       *string `json:"apellido,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"telefono,omitempty"`
	Address        *string `json:"direccion,omitempty"`
	DateOfBirth    *string `json:"fecha_nacimiento,omitempty"`
	Gender         *string `json:"genero,omitempty"`
	BloodType      *string `json:"tipo_sangre,omitempty"`
	Allergies      *string `json:"alergias,omitempty"`
	MedicalHistory *string `json:"historial_medico,omitempty"`
}

// MedicalRecord is one entry of a patient's clinical history, as returned
// by /pacientes/:id/historial.
type MedicalRecord struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"cita_id"`
	DoctorName    string    `json:"medico,omitempty"`
	Date          time.Time `json:"fecha"`
	Diagnosis     string    `json:"diagnostico"`
	Treatment     string    `json:"tratamiento,omitempty"`
	Notes         string    `json:"notas,omitempty"`
}

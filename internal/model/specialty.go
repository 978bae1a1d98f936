package model

import "time"

// Specialty mirrors the server's especialidad resource.
type Specialty struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSpecialtyRequest struct {
	Name        string `json:"nombre" validate:"required"`
	Description string `json:"descripcion" validate:"max=500"`
}

type UpdateSpecialtyRequest struct {
	Name        *string `json:"nombre,omitempty"`
	Description *string `json:"descripcion,omitempty"`
}

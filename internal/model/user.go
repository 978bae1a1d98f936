package model

import "time"

// User role constants, as the server reports them
const (
	RolePatient    = "paciente"
	RoleDoctor     = "medico"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User represents a system user
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"nombre"`
	LastName  string     `json:"apellido,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"rol"`
	Phone     string     `json:"telefono,omitempty"`
	Active    bool       `json:"activo"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName joins name and last name the way the profile screens did.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}

// CreateUserRequest represents user creation parameters
type CreateUserRequest struct {
	Name     string `json:"nombre" validate:"required"`
	LastName string `json:"apellido"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"rol" validate:"required,oneof=paciente medico admin superadmin"`
	Phone    string `json:"telefono"`
}

// UpdateUserRequest represents user update parameters
type UpdateUserRequest struct {
	Name     *string `json:"nombre,omitempty"`
	LastName *string `json:"apellido,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"telefono,omitempty"`
	Role     *string `json:"rol,omitempty" validate:"omitempty,oneof=paciente medico admin superadmin"`
	Active   *bool   `json:"activo,omitempty"`
}

// UserFilters represents user search parameters
type UserFilters struct {
	Role   string
	Active *bool
	Search string
}

package dto

import "time"

// SetupStatusResponse indica si la app está en primer arranque (sin usuarios).
type SetupStatusResponse struct {
	NeedsSetup bool `json:"needs_setup"`
}

// CreateAdminRequest entrada del primer arranque: crea la cuenta admin inicial.
type CreateAdminRequest struct {
	Username        string `json:"username" validate:"required,min=1,max=100"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// CreateUserRequest entrada para crear un usuario (solo admin; password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username        string `json:"username" validate:"required,min=1,max=100"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	IsAdmin         bool   `json:"is_admin"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

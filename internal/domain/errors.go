package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrItemAlreadyExists     = errors.New("ya existe un ítem para ese expositor y tipo")
	ErrPasswordMismatch      = errors.New("las contraseñas no coinciden")
	ErrPasswordTooShort      = errors.New("la contraseña debe tener al menos 4 caracteres")
	ErrSetupAlreadyDone      = errors.New("la configuración inicial ya fue realizada")
)

package entity

import "time"

// User representa un usuario del sistema. El username es único y sensible a
// mayúsculas; IsAdmin habilita la creación de nuevas cuentas.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsAdmin      bool
	CreatedAt    time.Time
}

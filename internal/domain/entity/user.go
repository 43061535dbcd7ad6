package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleFacturador = "facturador"
)

// User representa una cuenta del sistema; su ID es la clave de owner
// bajo la cual se particionan drafts y settings.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, facturador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

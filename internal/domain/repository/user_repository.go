package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail devuelve nil sin error si el email no existe.
	FindByEmail(email string) (*entity.User, error)
}

package repository

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para el directorio de usuarios (DIP).
type UserRepository interface {
	List() []*entity.User
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// ListByRole devuelve los usuarios de un rol en orden de inserción
	// (el orden determina el round-robin de distribución).
	ListByRole(role string) []*entity.User
}

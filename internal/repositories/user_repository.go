package repositories

import (
	"userhub/internal/models"
	"userhub/internal/schemas"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	List(skip, limit int) ([]models.User, error)
	Create(user *models.User) error
	Update(id uint, patch schemas.UserUpdate) (*models.User, error)
	Delete(id uint) error
}

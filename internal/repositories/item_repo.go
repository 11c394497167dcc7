package repositories

import "userhub/internal/models"

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	GetByID(id uint) (*models.Item, error)
	List(skip, limit int) ([]models.Item, error)
	Create(item *models.Item) error
	Delete(id uint) error
}

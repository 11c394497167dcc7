package schemas

import "userhub/internal/models"

// ItemCreate is the request body for creating an item.
// Price is a pointer so that a zero price still satisfies "required".
type ItemCreate struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	IsActive    *bool    `json:"is_active"`
	OwnerID     uint     `json:"owner_id" validate:"required"`
}

// NewItem builds an Item entity from a validated create payload.
// IsActive defaults to true when absent.
func (i ItemCreate) NewItem() *models.Item {
	item := &models.Item{
		Title:       i.Title,
		Description: i.Description,
		Price:       *i.Price,
		IsActive:    true,
		OwnerID:     i.OwnerID,
	}
	if i.IsActive != nil {
		item.IsActive = *i.IsActive
	}
	return item
}

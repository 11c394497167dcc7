package repositories

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"userhub/internal/models"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// GetByID retrieves an item by ID. Returns ErrNotFound if no such item exists.
func (r *GORMItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// List returns items in insertion order, sliced by skip/limit, with the
// same repair-then-degrade read behavior as the user repository.
func (r *GORMItemRepository) List(skip, limit int) ([]models.Item, error) {
	items, err := r.listOnce(skip, limit)
	if err == nil {
		return items, nil
	}
	log.Printf("Listing items failed, attempting schema repair: %v", err)
	if repairErr := EnsureSchema(r.db); repairErr != nil {
		log.Printf("Schema repair failed: %v", repairErr)
		return []models.Item{}, nil
	}
	items, err = r.listOnce(skip, limit)
	if err != nil {
		log.Printf("Listing items failed after schema repair: %v", err)
		return []models.Item{}, nil
	}
	return items, nil
}

func (r *GORMItemRepository) listOnce(skip, limit int) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.Order("id").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Create persists a new item and fills in its assigned ID.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if err := EnsureSchema(r.db); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Delete removes an item by ID. Returns ErrNotFound if the item is absent.
func (r *GORMItemRepository) Delete(id uint) error {
	if err := EnsureSchema(r.db); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

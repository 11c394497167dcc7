package repositories

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"userhub/internal/models"
	"userhub/internal/schemas"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetByID retrieves a user by ID. Returns ErrNotFound if no such user exists.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// List returns users in insertion order, sliced by skip/limit.
// On a storage error it repairs the schema, retries once, and then
// degrades to an empty list instead of failing the read.
func (r *GORMUserRepository) List(skip, limit int) ([]models.User, error) {
	users, err := r.listOnce(skip, limit)
	if err == nil {
		return users, nil
	}
	log.Printf("Listing users failed, attempting schema repair: %v", err)
	if repairErr := EnsureSchema(r.db); repairErr != nil {
		log.Printf("Schema repair failed: %v", repairErr)
		return []models.User{}, nil
	}
	users, err = r.listOnce(skip, limit)
	if err != nil {
		log.Printf("Listing users failed after schema repair: %v", err)
		return []models.User{}, nil
	}
	return users, nil
}

func (r *GORMUserRepository) listOnce(skip, limit int) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("id").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create persists a new user and fills in its assigned ID.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := EnsureSchema(r.db); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update applies the present fields of patch to an existing user and
// returns the updated row. Returns ErrNotFound if the user is absent.
func (r *GORMUserRepository) Update(id uint, patch schemas.UserUpdate) (*models.User, error) {
	if err := EnsureSchema(r.db); err != nil {
		return nil, err
	}
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		patch.ApplyTo(&user)
		return tx.Save(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &user, nil
}

// Delete removes a user and all items it owns in one transaction.
// Returns ErrNotFound if the user is absent.
func (r *GORMUserRepository) Delete(id uint) error {
	if err := EnsureSchema(r.db); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

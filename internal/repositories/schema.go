package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"userhub/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
// Callers should test for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// EnsureSchema creates the users and items tables if they are missing.
// It is idempotent and never touches existing data, so mutating
// operations call it defensively: a store that was unreachable or
// empty at process startup heals on the first successful write.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

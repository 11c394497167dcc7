package services

import (
	"errors"

	"userhub/internal/models"
	"userhub/internal/repositories"
	"userhub/internal/schemas"
)

// ErrOwnerNotFound is returned by CreateItem when the referenced owner
// does not exist. No item row is written in that case.
var ErrOwnerNotFound = errors.New("owner does not exist")

// ItemService handles business logic related to items.
type ItemService struct {
	itemRepo repositories.ItemRepository
	userRepo repositories.UserRepository
	mq       EventPublisher
}

// NewItemService creates a new ItemService. The user repository is
// needed to verify item ownership. mq may be nil when no message
// broker is configured.
func NewItemService(itemRepo repositories.ItemRepository, userRepo repositories.UserRepository, mq EventPublisher) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
		mq:       mq,
	}
}

// ListItems retrieves items in insertion order, sliced by skip/limit.
func (s *ItemService) ListItems(skip, limit int) ([]models.Item, error) {
	return s.itemRepo.List(skip, limit)
}

// GetItem retrieves a single item by its ID.
func (s *ItemService) GetItem(id uint) (*models.Item, error) {
	return s.itemRepo.GetByID(id)
}

// CreateItem verifies the owner exists, persists the item and
// publishes an item.created event. Returns ErrOwnerNotFound before
// writing anything when the owner is absent.
func (s *ItemService) CreateItem(input schemas.ItemCreate) (*models.Item, error) {
	if _, err := s.userRepo.GetByID(input.OwnerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	item := input.NewItem()
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	publishEvent(s.mq, "item.created", item.ID)
	return item, nil
}

// DeleteItem removes an item and publishes an item.deleted event.
func (s *ItemService) DeleteItem(id uint) error {
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.mq, "item.deleted", id)
	return nil
}

package services

import (
	"userhub/internal/models"
	"userhub/internal/repositories"
	"userhub/internal/schemas"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
	mq   EventPublisher
}

// NewUserService creates a new UserService. mq may be nil when no
// message broker is configured.
func NewUserService(repo repositories.UserRepository, mq EventPublisher) *UserService {
	return &UserService{
		repo: repo,
		mq:   mq,
	}
}

// ListUsers retrieves users in insertion order, sliced by skip/limit.
func (s *UserService) ListUsers(skip, limit int) ([]models.User, error) {
	return s.repo.List(skip, limit)
}

// GetUser retrieves a single user by its ID.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser persists a new user from a validated payload and
// publishes a user.created event.
func (s *UserService) CreateUser(input schemas.UserCreate) (*models.User, error) {
	user := input.NewUser()
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	publishEvent(s.mq, "user.created", user.ID)
	return user, nil
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(id uint, patch schemas.UserUpdate) (*models.User, error) {
	return s.repo.Update(id, patch)
}

// DeleteUser removes a user and, by cascade, all items it owns, then
// publishes a user.deleted event.
func (s *UserService) DeleteUser(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.mq, "user.deleted", id)
	return nil
}

package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"userhub/internal/models"
	"userhub/internal/repositories"
	"userhub/internal/schemas"
	"userhub/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(skip, limit int) ([]models.User, error) {
	args := m.Called(skip, limit)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(id uint, patch schemas.UserUpdate) (*models.User, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(eventType string, body []byte) error {
	args := m.Called(eventType, body)
	return args.Error(0)
}

func intPtr(i int) *int { return &i }

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	expectedUsers := []models.User{
		{ID: 1, Name: "Alice", Age: 25},
		{ID: 2, Name: "Bob", Age: 30},
	}

	mockRepo.On("List", 0, 100).Return(expectedUsers, nil).Once()

	users, err := service.ListUsers(0, 100)

	assert.NoError(t, err)
	assert.Equal(t, expectedUsers, users)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	expectedUser := &models.User{ID: 1, Name: "Alice", Age: 25}

	// Test successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expectedUser, nil).Once()
	user, err := service.GetUser(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedUser, user)
	mockRepo.AssertExpectations(t)

	// Test user not found
	mockRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()
	user, err = service.GetUser(99)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMQ := new(MockEventPublisher)
	service := services.NewUserService(mockRepo, mockMQ)

	input := schemas.UserCreate{Name: "tester", Age: 30}

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 7
	}).Return(nil).Once()
	mockMQ.On("Publish", "user.created", mock.Anything).Return(nil).Once()

	user, err := service.CreateUser(input)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "tester", user.Name)
	assert.Equal(t, 30, user.Age)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestUserService_CreateUser_StorageFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMQ := new(MockEventPublisher)
	service := services.NewUserService(mockRepo, mockMQ)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("database error")).Once()

	user, err := service.CreateUser(schemas.UserCreate{Name: "tester", Age: 30})

	assert.Error(t, err)
	assert.Nil(t, user)
	// no event is published for a failed write
	mockMQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_NoPublisher(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := service.CreateUser(schemas.UserCreate{Name: "tester", Age: 30})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	patch := schemas.UserUpdate{Age: intPtr(31)}
	updated := &models.User{ID: 1, Name: "tester", Age: 31}

	mockRepo.On("Update", uint(1), patch).Return(updated, nil).Once()
	user, err := service.UpdateUser(1, patch)
	assert.NoError(t, err)
	assert.Equal(t, updated, user)
	mockRepo.AssertExpectations(t)

	// Test update of a missing user
	mockRepo.On("Update", uint(99), patch).Return(nil, repositories.ErrNotFound).Once()
	user, err = service.UpdateUser(99, patch)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMQ := new(MockEventPublisher)
	service := services.NewUserService(mockRepo, mockMQ)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	mockMQ.On("Publish", "user.deleted", mock.Anything).Return(nil).Once()

	assert.NoError(t, service.DeleteUser(1))
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)

	// Test deletion of a missing user
	mockRepo.On("Delete", uint(99)).Return(repositories.ErrNotFound).Once()
	err := service.DeleteUser(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockMQ.AssertNumberOfCalls(t, "Publish", 1)
	mockRepo.AssertExpectations(t)
}

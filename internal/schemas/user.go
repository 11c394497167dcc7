package schemas

import "userhub/internal/models"

// UserCreate is the request body for creating a user.
type UserCreate struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Age  int    `json:"age" validate:"required,gt=0,lt=150"`
}

// NewUser builds a User entity from a validated create payload.
func (u UserCreate) NewUser() *models.User {
	return &models.User{
		Name: u.Name,
		Age:  u.Age,
	}
}

// UserUpdate is the request body for a partial user update.
// Nil fields are absent from the payload and leave the stored value untouched.
type UserUpdate struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Age  *int    `json:"age" validate:"omitempty,gt=0,lt=150"`
}

// ApplyTo copies the present fields onto an existing user.
func (u UserUpdate) ApplyTo(user *models.User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Age != nil {
		user.Age = *u.Age
	}
}

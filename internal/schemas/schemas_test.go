package schemas_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"userhub/internal/models"
	"userhub/internal/schemas"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func TestUserCreateValidation(t *testing.T) {
	validate := validator.New()

	valid := schemas.UserCreate{Name: "tester", Age: 30}
	assert.NoError(t, validate.Struct(valid))

	// boundary ages
	assert.NoError(t, validate.Struct(schemas.UserCreate{Name: "a", Age: 1}))
	assert.NoError(t, validate.Struct(schemas.UserCreate{Name: "a", Age: 149}))

	cases := map[string]schemas.UserCreate{
		"empty name":    {Name: "", Age: 30},
		"name too long": {Name: string(make([]byte, 101)), Age: 30},
		"zero age":      {Name: "tester", Age: 0},
		"age too high":  {Name: "tester", Age: 150},
		"negative age":  {Name: "tester", Age: -5},
	}
	for name, input := range cases {
		assert.Error(t, validate.Struct(input), name)
	}
}

func TestUserUpdateValidation(t *testing.T) {
	validate := validator.New()

	// all fields absent is a legal no-op payload
	assert.NoError(t, validate.Struct(schemas.UserUpdate{}))

	assert.NoError(t, validate.Struct(schemas.UserUpdate{Name: strPtr("renamed")}))
	assert.NoError(t, validate.Struct(schemas.UserUpdate{Age: intPtr(42)}))

	assert.Error(t, validate.Struct(schemas.UserUpdate{Name: strPtr("")}))
	assert.Error(t, validate.Struct(schemas.UserUpdate{Age: intPtr(150)}))
	assert.Error(t, validate.Struct(schemas.UserUpdate{Age: intPtr(0)}))
}

func TestUserUpdateApplyTo(t *testing.T) {
	user := models.User{ID: 7, Name: "tester", Age: 30}

	patch := schemas.UserUpdate{Age: intPtr(31)}
	patch.ApplyTo(&user)
	assert.Equal(t, "tester", user.Name)
	assert.Equal(t, 31, user.Age)

	// applying the same patch twice yields the same final state
	patch.ApplyTo(&user)
	assert.Equal(t, "tester", user.Name)
	assert.Equal(t, 31, user.Age)

	empty := schemas.UserUpdate{}
	empty.ApplyTo(&user)
	assert.Equal(t, "tester", user.Name)
	assert.Equal(t, 31, user.Age)
}

func TestItemCreateValidation(t *testing.T) {
	validate := validator.New()

	valid := schemas.ItemCreate{Title: "Sample Item", Price: floatPtr(9.99), OwnerID: 1}
	assert.NoError(t, validate.Struct(valid))

	// a free item is legal, a missing price is not
	assert.NoError(t, validate.Struct(schemas.ItemCreate{Title: "Free", Price: floatPtr(0), OwnerID: 1}))
	assert.Error(t, validate.Struct(schemas.ItemCreate{Title: "No price", OwnerID: 1}))

	cases := map[string]schemas.ItemCreate{
		"empty title":          {Title: "", Price: floatPtr(1), OwnerID: 1},
		"title too long":       {Title: string(make([]byte, 201)), Price: floatPtr(1), OwnerID: 1},
		"negative price":       {Title: "x", Price: floatPtr(-0.01), OwnerID: 1},
		"missing owner":        {Title: "x", Price: floatPtr(1)},
		"description too long": {Title: "x", Price: floatPtr(1), OwnerID: 1, Description: strPtr(string(make([]byte, 1001)))},
	}
	for name, input := range cases {
		assert.Error(t, validate.Struct(input), name)
	}
}

func TestItemCreateNewItem(t *testing.T) {
	input := schemas.ItemCreate{Title: "Sample Item", Price: floatPtr(9.99), OwnerID: 3}
	item := input.NewItem()
	assert.Equal(t, "Sample Item", item.Title)
	assert.Equal(t, 9.99, item.Price)
	assert.Equal(t, uint(3), item.OwnerID)
	assert.Nil(t, item.Description)
	assert.True(t, item.IsActive, "is_active should default to true when absent")

	inactive := schemas.ItemCreate{Title: "Off", Price: floatPtr(1), OwnerID: 3, IsActive: boolPtr(false)}
	assert.False(t, inactive.NewItem().IsActive)
}

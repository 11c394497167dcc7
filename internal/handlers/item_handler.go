package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"userhub/internal/repositories"
	"userhub/internal/schemas"
	"userhub/internal/services"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service  *services.ItemService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the item routes with the Fiber app.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleListItems)
	itemRoutes.Get("/:id", h.HandleGetItem)
	itemRoutes.Post("/", h.HandleCreateItem)
	itemRoutes.Delete("/:id", h.HandleDeleteItem)
}

// HandleListItems retrieves items with skip/limit pagination.
func (h *ItemHandler) HandleListItems(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	items, err := h.service.ListItems(skip, limit)
	if err != nil {
		log.Printf("Error listing items: %v", err)
		return serviceUnavailable(c)
	}
	return c.JSON(items)
}

// HandleGetItem retrieves a single item by ID.
func (h *ItemHandler) HandleGetItem(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid item id",
		})
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Item with id %d not found", id),
			})
		}
		log.Printf("Error getting item %d: %v", id, err)
		return serviceUnavailable(c)
	}
	return c.JSON(item)
}

// HandleCreateItem creates a new item after verifying its owner exists.
// A nonexistent owner is a bad request, not a not-found: the missing
// entity is referenced by the payload, not addressed by the URL.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var input schemas.ItemCreate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	item, err := h.service.CreateItem(input)
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Owner with id %d does not exist", input.OwnerID),
			})
		}
		log.Printf("Error creating item: %v", err)
		return serviceUnavailable(c)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleDeleteItem deletes an item by ID.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid item id",
		})
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Item with id %d not found", id),
			})
		}
		log.Printf("Error deleting item %d: %v", id, err)
		return serviceUnavailable(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

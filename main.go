package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"userhub/internal/config"
	"userhub/internal/database"
	"userhub/internal/handlers"
	"userhub/internal/models"
	"userhub/internal/repositories"
	"userhub/internal/services"
	"userhub/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Startup initialization runs under a bounded timeout. A database
	// that is cold or unreachable here is not fatal: every write path
	// re-checks the schema, so the store heals on first use.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StartupTimeout)
	if err := initDatabase(ctx, db); err != nil {
		log.Printf("Warning: database initialization failed: %v", err)
		log.Printf("Tables will be created on first write")
	}
	cancel()

	// --- RabbitMQ (optional) ---
	// Lifecycle events are best-effort; a missing broker disables them
	// without taking the service down.
	var publisher services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, entity events disabled: %v", err)
	} else {
		defer mqClient.Close()
		publisher = mqClient

		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received entity event %s: %s", msg.Type, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeEntityEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	itemRepo := repositories.NewGORMItemRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, publisher)
	itemService := services.NewItemService(itemRepo, userRepo, publisher)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	itemHandler := handlers.NewItemHandler(itemService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to User Management API",
			"version": "1.0.0",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	userHandler.RegisterRoutes(app)
	itemHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// initDatabase creates the tables and seeds a few sample users when
// the users table is empty.
func initDatabase(ctx context.Context, db *gorm.DB) error {
	session := db.WithContext(ctx)
	if err := repositories.EnsureSchema(session); err != nil {
		return err
	}
	return seedUsers(session)
}

// seedUsers adds sample users on a fresh database so list endpoints
// have something to return out of the box.
func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sampleUsers := []models.User{
		{Name: "Alice", Age: 25},
		{Name: "Bob", Age: 30},
		{Name: "Charlie", Age: 35},
	}
	if err := db.Create(&sampleUsers).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d sample users", len(sampleUsers))
	return nil
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/amitxthedev/Zenox-Dev-Apis/config"
	"github.com/amitxthedev/Zenox-Dev-Apis/database"
	"github.com/amitxthedev/Zenox-Dev-Apis/handlers"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
	"github.com/amitxthedev/Zenox-Dev-Apis/routes"
	"github.com/amitxthedev/Zenox-Dev-Apis/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userStore := repositories.NewGormUserStore(db)
	leadStore := repositories.NewGormLeadStore(db)

	authService := services.NewAuthService(userStore, cfg.JWTSecret, cfg.JWTExpiryHours)
	leadService := services.NewLeadService(leadStore)
	analyticsService := services.NewAnalyticsService(leadStore)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.SetupRoutes(app,
		handlers.NewAuthHandler(authService),
		handlers.NewLeadHandler(leadService, analyticsService),
		cfg.JWTSecret,
	)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

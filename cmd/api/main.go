package main

import (
	"log"
	"os"
	"time"

	"github.com/DOXOPOKC/checklists/internal/infrastructure/cache"
	"github.com/DOXOPOKC/checklists/internal/infrastructure/database"
	"github.com/DOXOPOKC/checklists/internal/infrastructure/storage"
	"github.com/DOXOPOKC/checklists/internal/interfaces/http/middleware"
	"github.com/DOXOPOKC/checklists/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Initialize photo storage
	photoStorage, err := storage.Setup()
	if err != nil {
		log.Fatalf("❌ Error setting up photo storage: %v", err)
	}

	// Cache de documentos de relatório montados
	reportCache := cache.New(time.Minute)

	// Configure Fiber
	app := fiber.New(fiber.Config{
		// Body limit raised for photo upload
		BodyLimit:    25 * 1024 * 1024, // 25MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, photoStorage, reportCache)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

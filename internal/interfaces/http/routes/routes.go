package routes

import (
	"log"
	"os"

	"github.com/DOXOPOKC/checklists/internal/application/usecases"
	"github.com/DOXOPOKC/checklists/internal/domain/repositories"
	"github.com/DOXOPOKC/checklists/internal/infrastructure/cache"
	"github.com/DOXOPOKC/checklists/internal/infrastructure/storage"
	"github.com/DOXOPOKC/checklists/internal/interfaces/http/handlers"
	"github.com/DOXOPOKC/checklists/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, photoStorage *storage.PhotoStorage, reportCache *cache.ReportCache) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Request timing for the report and collection routes
	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	surveyRepo := repositories.NewSurveyRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Use Cases
	surveyUseCase := usecases.NewSurveyUseCase(surveyRepo)
	responseUseCase := usecases.NewResponseUseCase(responseRepo, surveyRepo, photoStorage)
	reportUseCase := usecases.NewReportUseCase(reportRepo, responseRepo, photoStorage)

	// Handlers
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	responseHandler := handlers.NewResponseHandler(responseUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase, reportCache)
	userHandler := handlers.NewUserHandler(userRepo)

	authMiddleware := middleware.RequireAuth(os.Getenv("JWT_SECRET"))
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET não definido, rotas administrativas rejeitarão qualquer token")
	}

	// Routes
	groups := middleware.SetupRouteGroups(app, authMiddleware)

	// Rotas de checklists
	groups.Public.Get("/surveys", surveyHandler.GetSurveys)
	groups.Public.Get("/surveys/:id", surveyHandler.GetSurvey)
	groups.Admin.Post("/surveys", surveyHandler.CreateSurvey)
	groups.Admin.Put("/surveys/:id", surveyHandler.UpdateSurvey)
	groups.Admin.Delete("/surveys/:id", surveyHandler.DeleteSurvey)
	groups.Admin.Post("/surveys/:id/questions", surveyHandler.CreateQuestion)
	groups.Admin.Put("/questions/:id", surveyHandler.UpdateQuestion)
	groups.Admin.Delete("/questions/:id", surveyHandler.DeleteQuestion)

	// Rotas de coletas de campo
	groups.Public.Get("/responses", responseHandler.GetResponses)
	groups.Public.Get("/responses/:id", responseHandler.GetResponse)
	groups.Public.Post("/responses", responseHandler.SubmitResponse)
	groups.Public.Post("/responses/:id/photos", responseHandler.AttachPhoto)

	// Rotas de relatórios
	groups.Public.Get("/reports", reportHandler.GetReports)
	groups.Public.Get("/reports/:id", reportHandler.GetReport)
	groups.Public.Get("/reports/:id/document", reportHandler.GetReportDocument)
	groups.Admin.Post("/reports", reportHandler.CreateReport)
	groups.Admin.Delete("/reports/:id", reportHandler.DeleteReport)

	// Rotas de operadores
	groups.Admin.Get("/users", userHandler.GetUsers)
	groups.Admin.Get("/users/:id", userHandler.GetUser)
}

package routes

import (
	"log"

	"github.com/factorymaster/mission-control/backend/controllers"
	"github.com/factorymaster/mission-control/backend/gateway"
	"github.com/factorymaster/mission-control/backend/middleware"
	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/progress"
	"github.com/factorymaster/mission-control/backend/resources"
	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps is everything the HTTP layer needs; main wires it once at startup.
type Deps struct {
	Catalog   models.Catalog
	Progress  *progress.Store
	Resources *resources.Store
	Gateway   *gateway.Gateway
	Logger    *log.Logger
}

// NewApp creates the Fiber app with middleware and all routes mounted.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())
	app.Use(middleware.LoggingMiddleware(deps.Logger))
	app.Use(recover.New())

	SetupRoutes(app, deps)

	return app
}

func SetupRoutes(app *fiber.App, deps Deps) {
	// AI gateway routes
	aiController := controllers.NewAIController(deps.Gateway)
	app.Post(gateway.Chat.Path(), aiController.Chat)
	app.Post(gateway.Translate.Path(), aiController.Translate)
	app.Post(gateway.DraftEmail.Path(), aiController.DraftEmail)

	api := app.Group("/api")

	// Progress routes
	progressController := controllers.NewProgressController(deps.Progress, deps.Catalog)
	api.Get("/catalog", progressController.GetCatalog)
	api.Get("/progress", progressController.GetProgress)
	api.Get("/progress/completed", progressController.GetCompleted)
	api.Get("/progress/upcoming", progressController.GetUpcoming)
	api.Post("/progress/toggle", progressController.ToggleActivity)
	api.Post("/progress/reset", progressController.ResetProgress)

	// Resource links routes
	resourcesController := controllers.NewResourcesController(deps.Resources)
	api.Get("/resources", resourcesController.GetLinks)
	api.Post("/resources", resourcesController.SaveLinks)

	api.Get("/health", controllers.Health(deps.Gateway))
}

// file: internals/route/index.go
package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"blackbear_backend/internals/configs"
	adminController "blackbear_backend/internals/features/admin/controller"
	adminRoute "blackbear_backend/internals/features/admin/route"
	adminService "blackbear_backend/internals/features/admin/service"
	eventController "blackbear_backend/internals/features/events/controller"
	eventRoute "blackbear_backend/internals/features/events/route"
	eventService "blackbear_backend/internals/features/events/service"
	galleryController "blackbear_backend/internals/features/gallery/controller"
	galleryRoute "blackbear_backend/internals/features/gallery/route"
	galleryService "blackbear_backend/internals/features/gallery/service"
	performerController "blackbear_backend/internals/features/performers/controller"
	performerRoute "blackbear_backend/internals/features/performers/route"
	performerService "blackbear_backend/internals/features/performers/service"
	helper "blackbear_backend/internals/helpers"
	"blackbear_backend/internals/middlewares"
	authMiddleware "blackbear_backend/internals/middlewares/auth"
)

// Deps carries the service layer into the HTTP layer. Everything is
// constructed in main and injected; no package-level singletons.
type Deps struct {
	Sessions   *adminService.SessionService
	Events     *eventService.EventService
	Gallery    *galleryService.GalleryService
	Performers *performerService.PerformerService
}

// NewApp builds the Fiber app: codec, error mapping, middleware stack,
// API routes, static pages, and the JSON 404 fallback.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             8 * 1024 * 1024,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestID())
	app.Use(middlewares.LoggerMiddleware())
	app.Use(middlewares.CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	SetupRoutes(app, deps)

	// Page shells and uploaded images; anything still unmatched gets a
	// structured 404 via the error handler.
	app.Static("/", configs.PublicDir)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

// SetupRoutes mounts the API under /api.
func SetupRoutes(app *fiber.App, deps Deps) {
	requireAdmin := authMiddleware.RequireAdmin(deps.Sessions)
	api := app.Group("/api")

	adminRoute.AdminRoutes(api, adminController.NewAuthController(deps.Sessions), requireAdmin)
	eventRoute.EventRoutes(api, eventController.NewEventController(deps.Events), requireAdmin)
	galleryRoute.GalleryRoutes(api, galleryController.NewGalleryController(deps.Gallery, configs.UploadsDir), requireAdmin)
	performerRoute.PerformerRoutes(api, performerController.NewPerformerController(deps.Performers), requireAdmin)

	BaseRoutes(app)
}

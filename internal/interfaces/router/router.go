package router

import (
	"vastgoed-sync/internal/app"
	"vastgoed-sync/internal/config"
	healthhandler "vastgoed-sync/internal/interfaces/handlers/health"
	prophandler "vastgoed-sync/internal/interfaces/handlers/properties"
	subhandler "vastgoed-sync/internal/interfaces/handlers/subscribers"
	"vastgoed-sync/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateApp opens every connection from cfg and mounts the routes.
func CreateApp(cfg *config.Config) (*fiber.App, *app.Container, error) {
	c, err := app.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c, nil
}

// New mounts the routes on an already built container.
func New(c *app.Container) *fiber.App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	f.Use(middleware.Tracing())
	f.Use(middleware.RouteLogger())
	f.Use(middleware.HealthMarker(c.Redis))
	f.Use(middleware.CORS(cfg.BaseURL))

	admin := middleware.RequireAPIKey(cfg.AdminAPIKey)

	healthHandlers := &healthhandler.Handlers{Rdb: c.Redis, Collector: c.Health}
	f.Get("/health/json", healthHandlers.JSON)
	f.Get("/health/errors", healthHandlers.Errors)
	f.Post("/health/reset", admin, healthHandlers.Reset)

	api := f.Group("/api/v1")

	props := &prophandler.Handlers{Listings: c.Listings, Jobs: c.Runner}
	pg := api.Group("/properties")
	pg.Get("/", props.Get)
	pg.Get("/scrape", props.Scrape)
	pg.Get("/fetch-coordinates", admin, props.FetchCoordinates)
	pg.Get("/mail", props.Mail)
	pg.Get("/:marketplace", props.Publish)
	pg.Get("/:marketplace/resetstatus", admin, props.ResetStatus)
	pg.Get("/:marketplace/suspend/all", admin, props.SuspendAll)
	pg.Get("/:marketplace/suspend", admin, props.Suspend)
	pg.Post("/:marketplace/purge", admin, props.Purge)

	subs := &subhandler.Handlers{Service: c.Subscribers}
	sg := api.Group("/subscribers")
	sg.Get("/", subs.Count)
	sg.Post("/add", subs.Add)
	sg.Post("/delete", subs.Delete)

	return f
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amitxthedev/Zenox-Dev-Apis/handlers"
	"github.com/amitxthedev/Zenox-Dev-Apis/middleware"
)

// SetupRoutes wires the handlers into the fiber app. Every /api/leads route
// sits behind the JWT middleware; stats and chart-data are registered before
// /:id so they are not swallowed by the id parameter.
func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, leads *handlers.LeadHandler, jwtSecret string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Post("/api/auth/register", auth.Register)
	app.Post("/api/auth/login", auth.Login)
	app.Get("/api/auth/me", middleware.JwtAuthMiddleware(jwtSecret), auth.Me)

	api := app.Group("/api/leads", middleware.JwtAuthMiddleware(jwtSecret))
	api.Get("/stats", leads.Stats)
	api.Get("/chart-data", leads.ChartData)
	api.Get("/", leads.List)
	api.Post("/", leads.Create)
	api.Get("/:id", leads.Get)
	api.Put("/:id/status", leads.UpdateStatus)
	api.Put("/:id", leads.Update)
	api.Delete("/:id", leads.Delete)
}

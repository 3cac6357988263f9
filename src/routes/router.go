package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	TrackRoutes(app)
	DraftRoutes(app)
	OrderRoutes(app)
	SessionRoutes(app)
	AuthRoutes(app)

	// Health check for deploys.
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

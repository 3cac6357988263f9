package routes

import (
	"Backend-Adventura-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// TrackRoutes wires the collection endpoint. One POST route takes every
// payload shape; the GET route is the visitor ping.
func TrackRoutes(app *fiber.App) {
	app.Post("/track", controllers.TrackEvent)
	app.Get("/track", controllers.VisitorPing)
}

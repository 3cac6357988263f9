package routes

import (
	"Backend-Adventura-001/src/controllers"
	"Backend-Adventura-001/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// SessionRoutes exposes the aggregated session rows to the backoffice.
func SessionRoutes(app *fiber.App) {
	sessionRoutes := app.Group("/sessions", middleware.AuthJWT)
	sessionRoutes.Get("/", controllers.GetSessions)
	sessionRoutes.Get("/:sessionId", controllers.GetSessionByID)
}

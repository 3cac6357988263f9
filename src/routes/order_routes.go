package routes

import (
	"Backend-Adventura-001/src/controllers"
	"Backend-Adventura-001/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// OrderRoutes wires checkout and the admin order views.
func OrderRoutes(app *fiber.App) {
	orderRoutes := app.Group("/orders")
	orderRoutes.Post("/", controllers.CreateOrder) // checkout

	orderRoutes.Get("/", middleware.AuthJWT, controllers.GetOrders)
	orderRoutes.Get("/:id", middleware.AuthJWT, controllers.GetOrderByID)
}

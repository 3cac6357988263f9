package routes

import (
	"Backend-Adventura-001/src/controllers"
	"Backend-Adventura-001/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	authRoutes := app.Group("/auth")
	authRoutes.Post("/login", controllers.Login)
	authRoutes.Post("/refresh", controllers.Refresh)
	authRoutes.Post("/logout", middleware.AuthJWT, controllers.Logout)
}

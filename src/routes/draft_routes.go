package routes

import (
	"Backend-Adventura-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// DraftRoutes wires draft sync. Scoped by the X-Client-ID header, not by a
// login: the storefront has no accounts.
func DraftRoutes(app *fiber.App) {
	draftRoutes := app.Group("/drafts")
	draftRoutes.Post("/", controllers.SaveDraft)
	draftRoutes.Get("/", controllers.GetDrafts)
	draftRoutes.Get("/current", controllers.GetDraft)
	draftRoutes.Delete("/:id", controllers.DeleteDraft)
}

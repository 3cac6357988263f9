package controllers

import (
	"context"
	"time"

	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/services/drafts"
	"Backend-Adventura-001/src/utils"

	"github.com/gofiber/fiber/v2"
)

// clientID scopes draft sync to one browser install. The client sends the
// same opaque id it uses for tracking.
func clientID(c *fiber.Ctx) string {
	return c.Get("X-Client-ID")
}

// SaveDraft godoc
// @Summary      Save the current form draft for a client
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body body models.FormDraft true "Draft"
// @Success      200  {object}  models.FormDraft
// @Failure      400  {object}  models.ErrorResponse
// @Router       /drafts [post]
func SaveDraft(c *fiber.Ctx) error {
	id := clientID(c)
	if id == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "X-Client-ID header is required")
	}

	var draft models.FormDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	saved, err := drafts.SaveDraft(ctx, id, &draft)
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(saved)
}

// GetDraft godoc
// @Summary      Load the current form draft for a client
// @Tags         drafts
// @Produce      json
// @Success      200  {object}  models.FormDraft
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drafts/current [get]
func GetDraft(c *fiber.Ctx) error {
	id := clientID(c)
	if id == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "X-Client-ID header is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	draft, err := drafts.LoadDraft(ctx, id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	if draft == nil {
		return utils.HandleError(c, fiber.StatusNotFound, "No draft saved")
	}
	return c.JSON(draft)
}

// GetDrafts godoc
// @Summary      List all saved draft snapshots for a client
// @Tags         drafts
// @Produce      json
// @Success      200  {array}  models.FormDraft
// @Router       /drafts [get]
func GetDrafts(c *fiber.Ctx) error {
	id := clientID(c)
	if id == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "X-Client-ID header is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	list, err := drafts.ListDrafts(ctx, id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	if list == nil {
		list = []models.FormDraft{}
	}
	return c.JSON(list)
}

// DeleteDraft godoc
// @Summary      Delete one draft snapshot
// @Tags         drafts
// @Param        id path string true "Draft ID"
// @Success      204
// @Router       /drafts/{id} [delete]
func DeleteDraft(c *fiber.Ctx) error {
	id := clientID(c)
	if id == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "X-Client-ID header is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := drafts.DeleteDraft(ctx, id, c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

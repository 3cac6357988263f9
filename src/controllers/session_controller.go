package controllers

import (
	"context"
	"time"

	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/services/sessions"
	"Backend-Adventura-001/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSessions godoc
// @Summary      List session rows with pagination, search, and sorting
// @Tags         sessions
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Session id substring"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /sessions [get]
func GetSessions(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := sessions.GetAllSessionRows(ctx, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching sessions")
	}
	return c.JSON(result)
}

// GetSessionByID godoc
// @Summary      Get one session row by session id
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200  {object}  models.SessionRow
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId} [get]
func GetSessionByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := sessions.GetSessionRow(ctx, c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
	}
	return c.JSON(row)
}

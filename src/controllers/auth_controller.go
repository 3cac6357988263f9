package controllers

import (
	"context"
	"time"

	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/services"
	"Backend-Adventura-001/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Backoffice login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "Credentials"
// @Success      200
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := services.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	refreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

type refreshRequest struct {
	UserID       string `json:"userId"`
	RefreshToken string `json:"refreshToken"`
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body refreshRequest true "Refresh token"
// @Success      200
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ok, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if u, err := services.FindUserByID(ctx, req.UserID); err == nil {
		user = *u
	} else {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unknown user")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(fiber.Map{"token": token})
}

// Logout godoc
// @Summary      Revoke the current access token
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if len(authHeader) > 7 {
		token := authHeader[7:]
		if err := utils.BlacklistToken(token, 24*time.Hour); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to revoke token")
		}
	}

	if userID, ok := c.Locals("userId").(string); ok && userID != "" {
		_ = utils.DeleteRefreshToken(userID)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

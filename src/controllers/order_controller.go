package controllers

import (
	"context"
	"time"

	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/services/orders"
	"Backend-Adventura-001/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder godoc
// @Summary      Submit a completed book order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body body models.BookOrder true "Order"
// @Success      201  {object}  models.BookOrder
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /orders [post]
func CreateOrder(c *fiber.Ctx) error {
	var order models.BookOrder
	if err := c.BodyParser(&order); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recorded, err := orders.CreateOrder(ctx, &order)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"data":    recorded,
	})
}

// GetOrders godoc
// @Summary      List orders with pagination, search, and sorting
// @Tags         orders
// @Produce      json
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /orders [get]
func GetOrders(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := orders.GetAllOrders(ctx, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching orders")
	}
	return c.JSON(result)
}

// GetOrderByID godoc
// @Summary      Get an order by its human-facing id
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID (ORD-00042)"
// @Success      200  {object}  models.BookOrder
// @Failure      404  {object}  models.ErrorResponse
// @Router       /orders/{id} [get]
func GetOrderByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := orders.GetOrderByID(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Order not found")
	}
	return c.JSON(order)
}

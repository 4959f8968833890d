package api

import (
	"fmt"
	"time"

	"cornerstore-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/orders?orderDate=2024-12-05
func ListOrdersHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var day *time.Time
		if raw := c.Query("orderDate"); raw != "" {
			d, err := store.ParseDay(raw)
			if err != nil {
				return err
			}
			day = &d
		}

		orders, err := svc.ListOrders(c.UserContext(), day)
		if err != nil {
			return err
		}
		return c.JSON(orders)
	}
}

// GET /api/orders/:id
func GetOrderHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		order, err := svc.GetOrder(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(order)
	}
}

// POST /api/orders
func CreateOrderHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body store.OrderInput
		if err := parseBody(c, &body); err != nil {
			return err
		}

		order, err := svc.CreateOrder(c.UserContext(), body)
		if err != nil {
			return err
		}

		c.Location(fmt.Sprintf("/api/orders/%d", order.ID))
		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		if err := svc.DeleteOrder(c.UserContext(), id); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Order with ID %d deleted.", id)})
	}
}

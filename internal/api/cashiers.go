package api

import (
	"fmt"

	"cornerstore-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/cashiers/:id
func GetCashierHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		cashier, err := svc.GetCashier(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(cashier)
	}
}

// POST /api/cashiers
func CreateCashierHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body store.CashierInput
		if err := parseBody(c, &body); err != nil {
			return err
		}

		cashier, err := svc.CreateCashier(c.UserContext(), body)
		if err != nil {
			return err
		}

		c.Location(fmt.Sprintf("/api/cashiers/%d", cashier.ID))
		return c.Status(fiber.StatusCreated).JSON(cashier)
	}
}

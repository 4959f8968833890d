package api

import (
	"fmt"

	"cornerstore-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/categories
func ListCategoriesHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := svc.ListCategories(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(categories)
	}
}

// POST /api/categories
func CreateCategoryHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body store.CategoryInput
		if err := parseBody(c, &body); err != nil {
			return err
		}

		category, err := svc.CreateCategory(c.UserContext(), body)
		if err != nil {
			return err
		}

		c.Location(fmt.Sprintf("/api/categories/%d", category.ID))
		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

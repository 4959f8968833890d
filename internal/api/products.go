package api

import (
	"fmt"

	"cornerstore-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/products?search=choc
func ListProductsHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.ListProducts(c.UserContext(), c.Query("search"))
		if err != nil {
			return err
		}
		return c.JSON(products)
	}
}

// GET /api/products/:id
func GetProductHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		product, err := svc.GetProduct(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(product)
	}
}

// POST /api/products
func CreateProductHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body store.ProductInput
		if err := parseBody(c, &body); err != nil {
			return err
		}

		product, err := svc.CreateProduct(c.UserContext(), body)
		if err != nil {
			return err
		}

		c.Location(fmt.Sprintf("/api/products/%d", product.ID))
		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// PUT /api/products/:id
func UpdateProductHandler(svc *store.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		var body store.ProductInput
		if err := parseBody(c, &body); err != nil {
			return err
		}

		product, err := svc.UpdateProduct(c.UserContext(), id, body)
		if err != nil {
			return err
		}
		return c.JSON(product)
	}
}

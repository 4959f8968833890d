// Package api exposes the store over HTTP with fiber handlers.
package api

import (
	"cornerstore-backend/internal/audit"
	"cornerstore-backend/internal/database"
	"cornerstore-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(app *fiber.App, svc *store.Service, db *gorm.DB) {
	app.Get("/healthz", HealthHandler(db))

	api := app.Group("/api")

	api.Get("/cashiers/:id", GetCashierHandler(svc))
	api.Post("/cashiers", CreateCashierHandler(svc))

	api.Get("/categories", ListCategoriesHandler(svc))
	api.Post("/categories", CreateCategoryHandler(svc))

	api.Get("/products", ListProductsHandler(svc))
	api.Get("/products/:id", GetProductHandler(svc))
	api.Post("/products", CreateProductHandler(svc))
	api.Put("/products/:id", UpdateProductHandler(svc))

	api.Get("/orders", ListOrdersHandler(svc))
	api.Get("/orders/:id", GetOrderHandler(svc))
	api.Post("/orders", CreateOrderHandler(svc))
	api.Delete("/orders/:id", DeleteOrderHandler(svc))

	api.Get("/audit-logs", audit.ListAuditLogsHandler(db))
}

// GET /healthz
func HealthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.Ping(c.UserContext(), db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "message": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

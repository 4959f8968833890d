package api

import (
	"errors"

	"cornerstore-backend/internal/applog"
	"cornerstore-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler renders every error as {"message": ...}. Store errors carry their own client
// message; anything unrecognised becomes a logged 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	e := toHTTPError(err)
	if e.Code >= fiber.StatusInternalServerError {
		applog.Error(c, "request_failed", err, nil)
		e = fiber.NewError(e.Code, internalErrorMessage)
	}
	return c.Status(e.Code).JSON(fiber.Map{"message": e.Message})
}

func toHTTPError(err error) *fiber.Error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	var nf *store.NotFoundError
	switch {
	case errors.As(err, &nf):
		return fiber.NewError(fiber.StatusNotFound, nf.Error())
	case errors.Is(err, store.ErrBadRequest):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.ErrInternalServerError
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Id must be a positive integer.")
	}
	return int64(id), nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}
	return nil
}

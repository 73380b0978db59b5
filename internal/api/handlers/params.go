package handlers

import (
	"errors"

	"support-kb/internal/dto"
	"support-kb/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// parseLookup reads lookup parameters from the JSON body of a POST or from
// the query string otherwise.
func parseLookup(c *fiber.Ctx) (*dto.LookupRequest, error) {
	var req dto.LookupRequest
	if c.Method() == fiber.MethodPost {
		if len(c.Body()) == 0 {
			return &req, nil
		}
		if err := c.BodyParser(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}
	if err := c.QueryParser(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

// lookupError maps a support service error to a response.
func lookupError(c *fiber.Ctx, logger *zap.Logger, query string, err error) error {
	switch {
	case errors.Is(err, service.ErrProductQueryRequired):
		return badRequest(c, "Missing sku or model parameter")
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Product not found",
			Query: query,
		})
	default:
		logger.Error("Knowledge lookup failed", zap.String("query", query), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Knowledge base unavailable",
		})
	}
}

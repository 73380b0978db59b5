package handlers

import (
	"support-kb/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProductHandler struct {
	supportService *service.SupportService
	logger         *zap.Logger
}

func NewProductHandler(supportService *service.SupportService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		supportService: supportService,
		logger:         logger,
	}
}

// GetProduct godoc
// @Summary List products or look one up
// @Description Without a search term, lists every product. Otherwise resolves the term by SKU, model name or full name and returns the product's knowledge record.
// @Tags products
// @Produce json
// @Param sku query string false "Product SKU"
// @Param model query string false "Model name"
// @Param query query string false "Free-text product name"
// @Success 200 {object} dto.ProductListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products [get]
// @Router /products [post]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	req, err := parseLookup(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}

	term := req.SearchTerm()
	if term == "" {
		resp, err := h.supportService.ListProducts(c.Context())
		if err != nil {
			return lookupError(c, h.logger, term, err)
		}
		return c.JSON(resp)
	}

	rec, err := h.supportService.FindProduct(c.Context(), term)
	if err != nil {
		return lookupError(c, h.logger, term, err)
	}

	return c.JSON(rec)
}

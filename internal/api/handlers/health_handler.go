package handlers

import (
	"support-kb/internal/dto"
	"support-kb/internal/service"
	"support-kb/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var endpoints = map[string]string{
	"GET /api/products":                     "List all products",
	"GET /api/products?sku=93548":           "Get product by SKU",
	"GET /api/products?model=UA 2-125":      "Get product by model name",
	"POST /api/troubleshoot":                "Get troubleshooting help { sku, issue }",
	"POST /api/faq":                         "Search FAQs { sku, question }",
	"GET /api/install?sku=93548&topic=hdmi": "Get installation guide",
	"POST /api/issues":                      "Log a support issue { sku, issue, caller_info, severity, notes }",
}

type HealthHandler struct {
	supportService *service.SupportService
	store          *service.KnowledgeStore
	apiConfig      *config.APIConfig
	logger         *zap.Logger
}

func NewHealthHandler(
	supportService *service.SupportService,
	store *service.KnowledgeStore,
	apiConfig *config.APIConfig,
	logger *zap.Logger,
) *HealthHandler {
	return &HealthHandler{
		supportService: supportService,
		store:          store,
		apiConfig:      apiConfig,
		logger:         logger,
	}
}

// Info godoc
// @Summary API info and health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	count, err := h.supportService.ProductCount(c.Context())
	if err != nil {
		h.logger.Warn("Failed to count products", zap.Error(err))
	}

	return c.JSON(dto.HealthResponse{
		Name:           h.apiConfig.Name,
		Version:        h.apiConfig.Version,
		Status:         "ok",
		ProductsLoaded: count,
		Endpoints:      endpoints,
		Support: dto.SupportContact{
			Phone:   h.apiConfig.SupportPhone,
			Website: h.apiConfig.SupportWebsite,
		},
	})
}

// Reload godoc
// @Summary Reload the knowledge base
// @Tags health
// @Produce json
// @Success 200 {object} dto.ReloadResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/reload [post]
func (h *HealthHandler) Reload(c *fiber.Ctx) error {
	catalog, err := h.store.Reload(c.Context())
	if err != nil {
		h.logger.Error("Knowledge reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Knowledge reload failed",
		})
	}

	return c.JSON(dto.ReloadResponse{
		Status:         "reloaded",
		ProductsLoaded: catalog.Len(),
	})
}

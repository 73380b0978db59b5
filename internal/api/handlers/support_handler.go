package handlers

import (
	"support-kb/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SupportHandler serves the FAQ, troubleshooting and installation lookups.
type SupportHandler struct {
	supportService *service.SupportService
	logger         *zap.Logger
}

func NewSupportHandler(supportService *service.SupportService, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		logger:         logger,
	}
}

// SearchFAQ godoc
// @Summary Search a product's FAQ
// @Description Ranks the FAQ entries of the product against the question. Without a question, returns the whole FAQ. When nothing matches, answers holds every entry and matched is false.
// @Tags support
// @Accept json
// @Produce json
// @Param sku query string false "Product SKU"
// @Param model query string false "Model name"
// @Param question query string false "Question (alias: q)"
// @Success 200 {object} dto.FAQSearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /faq [get]
// @Router /faq [post]
func (h *SupportHandler) SearchFAQ(c *fiber.Ctx) error {
	req, err := parseLookup(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}

	productQuery := req.ProductQuery()
	if question := req.QuestionQuery(); question != "" {
		resp, err := h.supportService.SearchFAQ(c.Context(), productQuery, question)
		if err != nil {
			return lookupError(c, h.logger, productQuery, err)
		}
		return c.JSON(resp)
	}

	resp, err := h.supportService.ListFAQ(c.Context(), productQuery)
	if err != nil {
		return lookupError(c, h.logger, productQuery, err)
	}
	return c.JSON(resp)
}

// Troubleshoot godoc
// @Summary Troubleshoot a product issue
// @Description Ranks the troubleshooting entries of the product against the issue description. When nothing matches, every entry is returned with a general-tips message.
// @Tags support
// @Accept json
// @Produce json
// @Param sku query string false "Product SKU"
// @Param model query string false "Model name"
// @Param issue query string false "Issue description (alias: problem)"
// @Success 200 {object} dto.TroubleshootingSearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /troubleshoot [get]
// @Router /troubleshoot [post]
func (h *SupportHandler) Troubleshoot(c *fiber.Ctx) error {
	req, err := parseLookup(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}

	productQuery := req.ProductQuery()
	if issue := req.IssueQuery(); issue != "" {
		resp, err := h.supportService.Troubleshoot(c.Context(), productQuery, issue)
		if err != nil {
			return lookupError(c, h.logger, productQuery, err)
		}
		return c.JSON(resp)
	}

	resp, err := h.supportService.ListTroubleshooting(c.Context(), productQuery)
	if err != nil {
		return lookupError(c, h.logger, productQuery, err)
	}
	return c.JSON(resp)
}

// InstallationGuide godoc
// @Summary Get installation guides
// @Description Ranks the installation topics of the product against the topic. Without a topic, returns every topic with the product documents.
// @Tags support
// @Accept json
// @Produce json
// @Param sku query string false "Product SKU"
// @Param model query string false "Model name"
// @Param topic query string false "Installation topic"
// @Success 200 {object} dto.InstallationSearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /install [get]
// @Router /install [post]
func (h *SupportHandler) InstallationGuide(c *fiber.Ctx) error {
	req, err := parseLookup(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}

	productQuery := req.ProductQuery()
	if req.Topic != "" {
		resp, err := h.supportService.InstallationGuide(c.Context(), productQuery, req.Topic)
		if err != nil {
			return lookupError(c, h.logger, productQuery, err)
		}
		return c.JSON(resp)
	}

	resp, err := h.supportService.ListInstallation(c.Context(), productQuery)
	if err != nil {
		return lookupError(c, h.logger, productQuery, err)
	}
	return c.JSON(resp)
}

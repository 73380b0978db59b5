package handlers

import (
	"encoding/json"
	"errors"

	"support-kb/internal/dto"
	"support-kb/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type IssueHandler struct {
	issueService *service.IssueService
	logger       *zap.Logger
}

func NewIssueHandler(issueService *service.IssueService, logger *zap.Logger) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
		logger:       logger,
	}
}

// LogIssue godoc
// @Summary Log a support issue
// @Description Records a support issue. Accepts either a plain body or a voice-assistant tool call (message.toolCallList); tool calls are answered in-band with results[].
// @Tags issues
// @Accept json
// @Produce json
// @Param request body dto.LogIssueRequest true "Issue"
// @Success 200 {object} dto.LogIssueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /issues [post]
func (h *IssueHandler) LogIssue(c *fiber.Ctx) error {
	var env dto.IssueEnvelope
	if err := json.Unmarshal(c.Body(), &env); err != nil {
		return badRequest(c, "Invalid request body")
	}

	req := env.LogIssueRequest
	call, isToolCall := env.ToolCall()
	if isToolCall {
		req = dto.LogIssueRequest{}
		if err := call.DecodeArguments(&req); err != nil {
			h.logger.Warn("Invalid tool call arguments", zap.String("tool_call_id", call.ID), zap.Error(err))
			return h.toolResult(c, call.ID, "Failed to log issue: "+err.Error())
		}
	}

	issue, err := h.issueService.LogIssue(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrIssueRequired) {
			if isToolCall {
				return h.toolResult(c, call.ID, "Error: Issue description required")
			}
			return badRequest(c, "Issue description required")
		}

		h.logger.Error("Failed to log issue", zap.Error(err))
		msg := "Failed to log issue: " + err.Error()
		if isToolCall {
			return h.toolResult(c, call.ID, msg)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msg})
	}

	msg := service.IssueLoggedMessage(issue)
	if isToolCall {
		return h.toolResult(c, call.ID, msg)
	}
	return c.JSON(dto.LogIssueResponse{
		Success: true,
		Message: msg,
		Issue:   issue,
	})
}

// MethodNotAllowed answers every non-POST request to the issues endpoint.
func (h *IssueHandler) MethodNotAllowed(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Error: "POST required"})
}

func (h *IssueHandler) toolResult(c *fiber.Ctx, toolCallID, result string) error {
	return c.JSON(dto.ToolCallResponse{
		Results: []dto.ToolCallResult{{ToolCallID: toolCallID, Result: result}},
	})
}

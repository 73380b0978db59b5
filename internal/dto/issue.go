package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"support-kb/internal/models"
)

type LogIssueRequest struct {
	SKU        string `json:"sku"`
	Issue      string `json:"issue"`
	CallerInfo string `json:"caller_info"`
	Severity   string `json:"severity"`
	Notes      string `json:"notes"`
}

type LogIssueResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Issue   *models.SupportIssue `json:"issue"`
}

// IssueEnvelope is the body of POST /api/issues: either a plain
// LogIssueRequest or a voice-assistant tool call wrapping one.
type IssueEnvelope struct {
	LogIssueRequest
	Message *ToolMessage `json:"message,omitempty"`
}

type ToolMessage struct {
	ToolCallList []ToolCall `json:"toolCallList"`
}

type ToolCall struct {
	ID        string          `json:"id"`
	Function  *ToolFunction   `json:"function,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type ToolFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ToolCall returns the first tool call of the envelope, if any.
func (e *IssueEnvelope) ToolCall() (*ToolCall, bool) {
	if e.Message == nil || len(e.Message.ToolCallList) == 0 {
		return nil, false
	}
	return &e.Message.ToolCallList[0], true
}

// DecodeArguments decodes the tool call arguments into v. Arguments are taken
// from function.arguments, then input, then arguments, and may be a JSON
// object or a string holding one.
func (tc *ToolCall) DecodeArguments(v any) error {
	candidates := []json.RawMessage{tc.Input, tc.Arguments}
	if tc.Function != nil {
		candidates = append([]json.RawMessage{tc.Function.Arguments}, candidates...)
	}

	var raw json.RawMessage
	for _, c := range candidates {
		if !isBlankJSON(c) {
			raw = c
			break
		}
	}
	if raw == nil {
		return nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("invalid tool call arguments: %w", err)
		}
		raw = json.RawMessage(s)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid tool call arguments: %w", err)
	}
	return nil
}

type ToolCallResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
}

type ToolCallResponse struct {
	Results []ToolCallResult `json:"results"`
}

func isBlankJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`))
}

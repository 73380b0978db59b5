package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(secret string) *fiber.App {
	app := fiber.New()
	app.Post("/tool", ToolSecretMiddleware(secret, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestToolSecretMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		header   string
		wantCode int
	}{
		{"disabled", "", "", http.StatusNoContent},
		{"missing header", "abc", "", http.StatusUnauthorized},
		{"wrong secret", "abc", "abd", http.StatusUnauthorized},
		{"correct secret", "abc", "abc", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/tool", nil)
			if tc.header != "" {
				req.Header.Set(ToolSecretHeader, tc.header)
			}

			resp, err := newApp(tc.secret).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}

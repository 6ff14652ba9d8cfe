package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleTestApp(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendString("through")
	})
	return app
}

func TestOnlyRoles(t *testing.T) {
	gate := OnlyRoles("Finance staff only", "admin", "bursar")

	tests := []struct {
		name        string
		role        string
		wantStatus  int
		wantMessage string
	}{
		{name: "missing role rejected", role: "", wantStatus: fiber.StatusUnauthorized, wantMessage: "Unauthorized: missing role information"},
		{name: "unlisted role rejected", role: "auditor", wantStatus: fiber.StatusForbidden, wantMessage: "Finance staff only"},
		{name: "admin passes", role: "admin", wantStatus: fiber.StatusOK},
		{name: "bursar passes", role: "bursar", wantStatus: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoleTestApp(tt.role, gate)
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if tt.wantStatus == fiber.StatusOK {
				assert.Equal(t, "through", string(body))
				return
			}

			var payload struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.False(t, payload.Success)
			assert.Equal(t, tt.wantMessage, payload.Message)
		})
	}
}

func TestRoleMiddlewareDefaultMessage(t *testing.T) {
	gate := RoleMiddlewareWithCustomError([]string{"admin"}, "")
	app := newRoleTestApp("auditor", gate)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Forbidden: you are not authorized to access this resource")
}

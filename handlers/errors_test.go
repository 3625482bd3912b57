package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"festhub/services"

	"github.com/gofiber/fiber/v2"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"team not found", services.ErrTeamNotFound, 404, "TEAM_NOT_FOUND"},
		{"team full", services.ErrTeamFull, 409, "TEAM_FULL"},
		{"forbidden", services.ErrForbidden, 403, "FORBIDDEN"},
		{"already registered", services.ErrAlreadyRegistered, 409, "ALREADY_REGISTERED"},
		{"code space exhausted", services.ErrCodeSpaceExhausted, 500, "SLUG_COLLISION_RETRY_EXHAUSTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondServiceError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body, _ := io.ReadAll(resp.Body)
			var payload map[string]interface{}
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if payload["code"] != tt.wantCode {
				t.Errorf("code = %v, want %q", payload["code"], tt.wantCode)
			}
			if payload["success"] != false {
				t.Errorf("success = %v, want false", payload["success"])
			}
		})
	}
}

func TestRespondServiceErrorUnknown(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondServiceError(c, errors.New("connection reset"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Internal detail must not leak to the caller.
	if payload["error"] != "Internal server error" {
		t.Errorf("error = %v, want generic message", payload["error"])
	}
}

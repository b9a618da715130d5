package apierrors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteshare/internal/noteshare/adapters/http/apierrors"
	"noteshare/internal/noteshare/domain/apperrors"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation maps to 400", apperrors.New(apperrors.Validation, "Friend email is required"), fiber.StatusBadRequest},
		{"authorization maps to 403", apperrors.New(apperrors.Authorization, "User usr_1 is not the owner of note not_1"), fiber.StatusForbidden},
		{"record not found maps to 404", apperrors.New(apperrors.RecordNotFound, "Note not_1 not found"), fiber.StatusNotFound},
		{"fetch maps to 500", apperrors.New(apperrors.Fetch, "Failed to fetch user with access token"), fiber.StatusInternalServerError},
		{"database maps to 500", apperrors.New(apperrors.Database, "error creating invite"), fiber.StatusInternalServerError},
		{"untagged maps to 500", errors.New("boom"), fiber.StatusInternalServerError},
		{"wrapped tagged error keeps its status", fmt.Errorf("failed: %w", apperrors.New(apperrors.Validation, "bad")), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, apierrors.Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	newApp := func(err error) *fiber.App {
		app := fiber.New()
		app.Get("/boom", func(c fiber.Ctx) error {
			return apierrors.Respond(c, err)
		})
		return app
	}

	doRequest := func(t *testing.T, app *fiber.App) (int, map[string]string) {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		return resp.StatusCode, payload
	}

	t.Run("tagged error surfaces its message", func(t *testing.T) {
		status, payload := doRequest(t, newApp(apperrors.New(apperrors.RecordNotFound, "Note not_9 not found")))
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Note not_9 not found", payload["message"])
	})

	t.Run("untagged error never leaks details", func(t *testing.T) {
		status, payload := doRequest(t, newApp(errors.New("pq: relation notes does not exist")))
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error", payload["message"])
	})
}

package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sgo/auth"
	"sgo/models"
	"sgo/repository"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("models.Category with key 3: %w", repository.ErrNotFound), http.StatusNotFound},
		{"validation", models.ValidationErrors{{Field: "name", Errors: []string{"is required"}}}, http.StatusBadRequest},
		{"fiber error", fiber.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate email", auth.ErrDuplicateEmail, http.StatusBadRequest},
		{"long password", fmt.Errorf("hash password: %w", auth.ErrPasswordTooLong), http.StatusBadRequest},
		{"duplicate key", fmt.Errorf("add: %w", gorm.ErrDuplicatedKey), http.StatusConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusConflict},
		{"missing where", gorm.ErrMissingWhereClause, http.StatusBadRequest},
		{"invalid data", gorm.ErrInvalidData, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate(tt.err).StatusCode)
		})
	}
}

func TestErrorHandler_DetailOnlyInDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(quietLogger(), debug)})
		app.Get("/", func(c *fiber.Ctx) error { return errors.New("disk on fire") })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
		assert.Equal(t, "Internal server error", got.Message)
		if debug {
			assert.Equal(t, "disk on fire", got.DetailedError)
		} else {
			assert.Empty(t, got.DetailedError)
		}
	}
}

package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sgo/auth"
	"sgo/models"
	"sgo/repository"
)

// ErrorResponse is the body of every error translated by ErrorHandler.
type ErrorResponse struct {
	StatusCode    int                 `json:"status_code"`
	Message       string              `json:"message"`
	Errors        []models.FieldError `json:"errors,omitempty"`
	DetailedError string              `json:"detailed_error,omitempty"`
}

// ErrorHandler translates handler errors into status codes and JSON bodies.
// The raw error text is only exposed when debug is set.
func ErrorHandler(logger *log.Entry, debug bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := translate(err)
		if debug {
			resp.DetailedError = err.Error()
		}

		entry := logger.WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": resp.StatusCode,
		}).WithError(err)
		if resp.StatusCode >= fiber.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}

		return c.Status(resp.StatusCode).JSON(resp)
	}
}

func translate(err error) ErrorResponse {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrorResponse{StatusCode: fiber.StatusBadRequest, Message: "Validation failed", Errors: verrs}
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ErrorResponse{StatusCode: ferr.Code, Message: ferr.Message}
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrorResponse{StatusCode: fiber.StatusNotFound, Message: "Resource not found"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return ErrorResponse{StatusCode: fiber.StatusUnauthorized, Message: "Invalid credentials"}
	case errors.Is(err, auth.ErrDuplicateEmail):
		return ErrorResponse{StatusCode: fiber.StatusBadRequest, Message: "Email is already registered"}
	case errors.Is(err, auth.ErrPasswordTooLong):
		return ErrorResponse{StatusCode: fiber.StatusBadRequest, Message: auth.ErrPasswordTooLong.Error()}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrorResponse{StatusCode: fiber.StatusConflict, Message: "Key already exists"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrorResponse{StatusCode: fiber.StatusConflict, Message: "Related record constraint violated"}
	case errors.Is(err, gorm.ErrMissingWhereClause), errors.Is(err, gorm.ErrInvalidData):
		return ErrorResponse{StatusCode: fiber.StatusBadRequest, Message: "Invalid data"}
	default:
		return ErrorResponse{StatusCode: fiber.StatusInternalServerError, Message: "Internal server error"}
	}
}

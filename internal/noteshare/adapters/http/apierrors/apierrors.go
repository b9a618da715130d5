// Package apierrors translates service failures into HTTP responses.
package apierrors

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"noteshare/internal/noteshare/domain/apperrors"
)

// genericServerError is the message body for untagged failures.
const genericServerError = "Internal server error"

// statusForKind is the error-kind to HTTP-status table. The mapping is part
// of the API contract and must not change.
var statusForKind = map[apperrors.Kind]int{
	apperrors.Validation:     fiber.StatusBadRequest,
	apperrors.Authorization:  fiber.StatusForbidden,
	apperrors.RecordNotFound: fiber.StatusNotFound,
	apperrors.Fetch:          fiber.StatusInternalServerError,
	apperrors.Database:       fiber.StatusInternalServerError,
}

// Status returns the HTTP status for an error chain. Untagged errors and
// unknown kinds map to 500.
func Status(err error) int {
	var tagged *apperrors.Error
	if errors.As(err, &tagged) {
		if status, ok := statusForKind[tagged.Kind]; ok {
			return status
		}
	}
	return fiber.StatusInternalServerError
}

// Respond writes the status and JSON {"message": ...} body for a service
// failure. Tagged errors keep their message; untagged failures get a
// generic message so internal details never leak.
func Respond(ctx fiber.Ctx, err error) error {
	var tagged *apperrors.Error
	if errors.As(err, &tagged) {
		return ctx.Status(Status(err)).JSON(fiber.Map{"message": tagged.Message})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": genericServerError})
}

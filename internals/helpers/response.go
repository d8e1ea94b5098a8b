package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationFieldErrors memetakan validator.ValidationErrors → {field: [tag...]}.
// Error selain ValidationErrors dikembalikan sebagai nil.
func ValidationFieldErrors(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fe.Tag())
	}
	return out
}

// ValidationError mengirim 400 dengan detail field kalau ada.
func ValidationError(c *fiber.Ctx, message string, err error) error {
	if fields := ValidationFieldErrors(err); fields != nil {
		return JsonValidationError(c, message, fields)
	}
	return JsonError(c, fiber.StatusBadRequest, message)
}

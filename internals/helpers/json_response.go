// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope standar:
   { success, error?, message, data? }
=================================*/

type ErrorResponse struct {
	Success bool                `json:"success"`
	Error   bool                `json:"error"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// JsonError: error generic, data tidak ikut dikirim.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
		if status < 500 {
			message = fiber.ErrBadRequest.Message
		}
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   true,
		Message: message,
	})
}

// JsonErrorDebug: error + payload diagnostik (dipakai hanya untuk 503 layanan AI).
func JsonErrorDebug(c *fiber.Ctx, status int, message string, debug any) error {
	return c.Status(status).JSON(fiber.Map{
		"success":    false,
		"error":      true,
		"message":    message,
		"data_debug": debug,
	})
}

// JsonValidationError: error validasi field (400).
func JsonValidationError(c *fiber.Ctx, message string, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false,
		Error:   true,
		Message: message,
		Errors:  fieldErrors,
	})
}

/* ===============================
   JSON responses (sukses)
=================================*/

// JsonOK: response sukses generic.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"error":   false,
		"message": message,
		"data":    data,
	})
}

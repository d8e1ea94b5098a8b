package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error (biasanya *fiber.Error dari middleware)
// menjadi envelope JSON yang konsisten. Dipasang sebagai fiber.Config.ErrorHandler.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	// error non-fiber tidak dikirim mentah ke client
	return JsonError(c, fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message)
}

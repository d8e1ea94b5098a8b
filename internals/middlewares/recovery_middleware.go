package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"mahasiswa_backend/internals/helpers/logger"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500
func RecoveryMiddleware(log logger.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered", map[string]interface{}{
				"panic":  fmt.Sprint(e),
				"method": c.Method(),
				"path":   c.Path(),
				"stack":  string(debug.Stack()),
			})
		},
	})
}

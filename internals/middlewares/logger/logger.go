package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	applog "mahasiswa_backend/internals/helpers/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocRequestID    = "reqid"
)

// LoggerMiddleware mencatat semua request lewat logger terstruktur dan
// memastikan setiap request punya X-Request-ID.
func LoggerMiddleware(log applog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocRequestID, id)

		start := time.Now()
		err := c.Next()
		if err != nil {
			// biar status yang tercatat sama dengan yang dikirim ke client
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := map[string]interface{}{
			"request_id": id,
			"method":     c.Method(),
			"path":       c.OriginalURL(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
		}
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			log.Warn("[REQ]", fields)
		} else {
			log.Info("[REQ]", fields)
		}
		return nil
	}
}

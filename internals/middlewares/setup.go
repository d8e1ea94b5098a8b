package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mahasiswa_backend/internals/configs"
	"mahasiswa_backend/internals/helpers/logger"
	reqLogger "mahasiswa_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan: recover → request log → CORS → limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log logger.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(reqLogger.LoggerMiddleware(log))
	app.Use(CorsMiddleware(cfg.FrontendURL))
	app.Use(GlobalRateLimiter())
}

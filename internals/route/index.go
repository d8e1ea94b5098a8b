// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	rateLimiter "mahasiswa_backend/internals/middlewares"
	authMiddleware "mahasiswa_backend/internals/middlewares/auth"
	routeDetails "mahasiswa_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d routeDetails.Deps) {
	startTime = time.Now()

	d.Log.Info("[INFO] Setting up BaseRoutes...", nil)
	BaseRoutes(app, d)

	d.Log.Info("[INFO] Setting up AuthRoutes...", nil)
	routeDetails.StudentAuthRoutes(app, d)

	// ===================== PRIVATE (MAHASISWA) =====================
	d.Log.Info("[INFO] Setting up PRIVATE group...", nil)
	private := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              d.Config.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	d.Log.Info("[INFO] Mounting Student routes...", nil)
	routeDetails.StudentPrivateRoutes(private, d)

	d.Log.Info("[INFO] Mounting Course routes...", nil)
	routeDetails.CourseRoutes(private, d)

	d.Log.Info("[INFO] Mounting Interest routes...", nil)
	private.Use("/interests/recommend", rateLimiter.RecommendRateLimiter())
	routeDetails.InterestRoutes(private, d)
}

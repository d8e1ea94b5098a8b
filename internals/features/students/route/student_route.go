package route

import (
	"github.com/gofiber/fiber/v2"

	"mahasiswa_backend/internals/features/students/controller"
	rateLimiter "mahasiswa_backend/internals/middlewares"
)

// AuthRoutes: login publik, tanpa JWT.
func AuthRoutes(app *fiber.App, ctl *controller.AuthController) {
	auth := app.Group("/api/auth")
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
}

// MenuRoutes dipasang di group private.
func MenuRoutes(r fiber.Router, ctl *controller.MenuController) {
	r.Get("/menu", ctl.GetMainMenu)
}

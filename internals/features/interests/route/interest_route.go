package route

import (
	"github.com/gofiber/fiber/v2"

	"mahasiswa_backend/internals/features/interests/controller"
)

// InterestRoutes dipasang di group yang sudah melewati AuthJWT.
func InterestRoutes(r fiber.Router, ctl *controller.InterestController) {
	interests := r.Group("/interests")
	interests.Get("/", ctl.GetInterests)
	interests.Post("/", ctl.UpdateInterests)
	interests.Post("/recommend", ctl.Recommend)
}

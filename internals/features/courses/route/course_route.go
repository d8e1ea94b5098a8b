package route

import (
	"github.com/gofiber/fiber/v2"

	"mahasiswa_backend/internals/features/courses/controller"
)

// CourseRoutes dipasang di group private.
func CourseRoutes(r fiber.Router, ctl *controller.CourseController) {
	r.Get("/courses", ctl.ListCourses)
}

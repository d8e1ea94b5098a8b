package details

import (
	"github.com/gofiber/fiber/v2"

	courseController "mahasiswa_backend/internals/features/courses/controller"
	courseRoute "mahasiswa_backend/internals/features/courses/route"
)

func CourseRoutes(private fiber.Router, d Deps) {
	courseRoute.CourseRoutes(private, courseController.NewCourseController(d.Catalog, d.Log))
}

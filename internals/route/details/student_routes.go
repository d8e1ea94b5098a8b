package details

import (
	"github.com/gofiber/fiber/v2"

	studentController "mahasiswa_backend/internals/features/students/controller"
	studentRepo "mahasiswa_backend/internals/features/students/repository"
	studentRoute "mahasiswa_backend/internals/features/students/route"
)

func StudentAuthRoutes(app *fiber.App, d Deps) {
	repo := studentRepo.NewStudentRepository(d.DB)
	ctl := studentController.NewAuthController(repo, d.Config.JWTSecret, d.Config.JWTTTL, d.Log)
	studentRoute.AuthRoutes(app, ctl)
}

func StudentPrivateRoutes(private fiber.Router, d Deps) {
	repo := studentRepo.NewStudentRepository(d.DB)
	studentRoute.MenuRoutes(private, studentController.NewMenuController(repo, d.Log))
}

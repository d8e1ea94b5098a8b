package details

import (
	"github.com/gofiber/fiber/v2"

	interestController "mahasiswa_backend/internals/features/interests/controller"
	interestRoute "mahasiswa_backend/internals/features/interests/route"
	studentRepo "mahasiswa_backend/internals/features/students/repository"
)

func InterestRoutes(private fiber.Router, d Deps) {
	repo := studentRepo.NewStudentRepository(d.DB)
	ctl := interestController.NewInterestController(repo, d.Catalog, d.Engine, d.Log)
	interestRoute.InterestRoutes(private, ctl)
}

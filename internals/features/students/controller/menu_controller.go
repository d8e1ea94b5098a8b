package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mahasiswa_backend/internals/features/interests/recommendation"
	"mahasiswa_backend/internals/features/students/dto"
	"mahasiswa_backend/internals/features/students/model"
	"mahasiswa_backend/internals/features/students/repository"
	helper "mahasiswa_backend/internals/helpers"
	"mahasiswa_backend/internals/helpers/logger"
)

type ProfileStore interface {
	FindStudentByID(ctx context.Context, id uuid.UUID) (*model.StudentModel, error)
	FindGradesByStudent(ctx context.Context, studentID uuid.UUID) ([]model.GradeModel, error)
}

type MenuController struct {
	Store ProfileStore
	Log   logger.Logger
}

func NewMenuController(store ProfileStore, log logger.Logger) *MenuController {
	return &MenuController{Store: store, Log: log.With(map[string]interface{}{"component": "menu"})}
}

// GET /api/menu
func (mc *MenuController) GetMainMenu(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	student, err := mc.Store.FindStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data mahasiswa tidak ditemukan")
		}
		mc.Log.Error("Gagal mengambil profil", map[string]interface{}{"error": err.Error()})
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mahasiswa")
	}
	grades, err := mc.Store.FindGradesByStudent(ctx, studentID)
	if err != nil {
		mc.Log.Error("Gagal mengambil riwayat nilai", map[string]interface{}{"error": err.Error()})
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mahasiswa")
	}

	return helper.JsonOK(c, "Menu utama berhasil dimuat.", dto.MainMenuResponse{
		Profile: dto.ToProfileResponse(student, currentSemester(grades)),
		Menus:   dto.MainMenus(),
	})
}

// gradeLabels mengambil label semester dari riwayat nilai.
func gradeLabels(grades []model.GradeModel) []string {
	labels := make([]string, 0, len(grades))
	for _, g := range grades {
		labels = append(labels, g.Semester)
	}
	return labels
}

func currentSemester(grades []model.GradeModel) int {
	return recommendation.InferCurrentPeriod(gradeLabels(grades))
}

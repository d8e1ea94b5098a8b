package controller

import (
	"github.com/gofiber/fiber/v2"

	"mahasiswa_backend/internals/features/interests/catalog"
	helper "mahasiswa_backend/internals/helpers"
	"mahasiswa_backend/internals/helpers/logger"
)

const (
	MsgCoursesFetched = "Data mata kuliah berhasil diambil."
	MsgInvalidTingkat = "Parameter tingkat tidak valid."
)

type CourseLister interface {
	Courses() []catalog.Course
}

type CourseController struct {
	Catalog CourseLister
	Log     logger.Logger
}

func NewCourseController(c CourseLister, log logger.Logger) *CourseController {
	return &CourseController{Catalog: c, Log: log.With(map[string]interface{}{"component": "courses"})}
}

// GET /api/courses?tingkat=2
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	courses := ctl.Catalog.Courses()

	raw := c.Query("tingkat")
	if raw == "" {
		return helper.JsonOK(c, MsgCoursesFetched, courses)
	}
	level, ok := catalog.ParseTingkat(raw)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, MsgInvalidTingkat)
	}

	filtered := make([]catalog.Course, 0, len(courses))
	for _, mk := range courses {
		if mk.Tingkat == level {
			filtered = append(filtered, mk)
		}
	}
	return helper.JsonOK(c, MsgCoursesFetched, filtered)
}

package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocStudentID adalah key c.Locals yang diisi middleware JWT.
const LocStudentID = "student_id"

// Ambil student_id dari c.Locals("student_id").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocStudentID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Mahasiswa belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Mahasiswa belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Mahasiswa belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Student ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Student ID pada token tidak valid")
	}
}

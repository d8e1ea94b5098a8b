package controller

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mahasiswa_backend/internals/features/students/dto"
	"mahasiswa_backend/internals/features/students/model"
	"mahasiswa_backend/internals/features/students/repository"
	"mahasiswa_backend/internals/features/students/service"
	helper "mahasiswa_backend/internals/helpers"
	"mahasiswa_backend/internals/helpers/logger"
)

type StudentLookup interface {
	FindStudentByNIM(ctx context.Context, nim string) (*model.StudentModel, error)
}

type AuthController struct {
	Store     StudentLookup
	Secret    string
	TTL       time.Duration
	Validator *validator.Validate
	Log       logger.Logger
	now       func() time.Time
}

func NewAuthController(store StudentLookup, secret string, ttl time.Duration, log logger.Logger) *AuthController {
	return &AuthController{
		Store:     store,
		Secret:    secret,
		TTL:       ttl,
		Validator: validator.New(),
		Log:       log.With(map[string]interface{}{"component": "auth"}),
		now:       time.Now,
	}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.NIM = strings.TrimSpace(req.NIM)
	if err := ac.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, "NIM dan password wajib diisi", err)
	}

	student, err := ac.Store.FindStudentByNIM(c.UserContext(), req.NIM)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		}
		ac.Log.Error("Login gagal: query mahasiswa", map[string]interface{}{"error": err.Error()})
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	if err := service.CheckPassword(student, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	token, err := service.IssueAccessToken(ac.Secret, student, ac.now(), ac.TTL)
	if err != nil {
		ac.Log.Error("Login gagal: sign token", map[string]interface{}{"error": err.Error()})
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	ac.Log.Info("Login berhasil", map[string]interface{}{"nim": student.NIM})
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token:   token,
		Student: dto.ToStudentSummary(student),
	})
}

package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mahasiswa_backend/internals/features/interests/catalog"
	"mahasiswa_backend/internals/features/interests/dto"
	"mahasiswa_backend/internals/features/interests/recommendation"
	studentModel "mahasiswa_backend/internals/features/students/model"
	studentRepo "mahasiswa_backend/internals/features/students/repository"
	helper "mahasiswa_backend/internals/helpers"
	"mahasiswa_backend/internals/helpers/logger"
)

const (
	MsgInvalidInterests   = "Format minat tidak valid. Harap kirim array string."
	MsgInterestsFetched   = "Data minat berhasil diambil."
	MsgInterestsSaved     = "Minat berhasil disimpan."
	MsgRecommendAI        = "Rekomendasi AI berhasil dibuat."
	MsgRecommendFallback  = "Rekomendasi Fallback (AI Quota Habis)."
	MsgServiceUnavailable = "Layanan AI tidak tersedia (API Key missing)."
	MsgInvalidAIResponse  = "Gagal memproses respon AI (Invalid JSON)."
	MsgServiceFailure     = "Terjadi kesalahan pada layanan AI: "
	MsgStudentNotFound    = "Data mahasiswa tidak ditemukan"
	MsgStudentLoadFailed  = "Gagal mengambil data mahasiswa"
)

// StudentStore adalah bagian repository mahasiswa yang dipakai fitur minat.
type StudentStore interface {
	FindStudentByID(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error)
	FindGradesByStudent(ctx context.Context, studentID uuid.UUID) ([]studentModel.GradeModel, error)
	UpdateInterests(ctx context.Context, studentID uuid.UUID, hard, soft []string) error
}

type SkillSource interface {
	Skills() catalog.SkillOptions
}

type Recommender interface {
	Recommend(ctx context.Context, in recommendation.Input) (*recommendation.Outcome, error)
}

type InterestController struct {
	Store     StudentStore
	Skills    SkillSource
	Engine    Recommender
	Validator *validator.Validate
	Log       logger.Logger
}

func NewInterestController(store StudentStore, skills SkillSource, engine Recommender, log logger.Logger) *InterestController {
	return &InterestController{
		Store:     store,
		Skills:    skills,
		Engine:    engine,
		Validator: validator.New(),
		Log:       log.With(map[string]interface{}{"component": "interests"}),
	}
}

// GET /api/interests
func (ctl *InterestController) GetInterests(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	student, err := ctl.Store.FindStudentByID(c.UserContext(), studentID)
	if err != nil {
		return ctl.studentLoadError(c, err)
	}

	return helper.JsonOK(c, MsgInterestsFetched, dto.InterestsResponse{
		UserInterests:    dto.StoredInterests(student.InterestHardSkills, student.InterestSoftSkills),
		AvailableOptions: ctl.Skills.Skills(),
	})
}

// POST /api/interests
func (ctl *InterestController) UpdateInterests(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateInterestsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, MsgInvalidInterests)
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, MsgInvalidInterests, err)
	}
	profile, err := req.ToProfile()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, MsgInvalidInterests)
	}

	if err := ctl.Store.UpdateInterests(c.UserContext(), studentID, profile.HardSkills, profile.SoftSkills); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, MsgStudentNotFound)
		}
		ctl.Log.Error("Gagal menyimpan minat", map[string]interface{}{
			"student_id": studentID.String(),
			"error":      err.Error(),
		})
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan minat")
	}

	return helper.JsonOK(c, MsgInterestsSaved, profile)
}

// POST /api/interests/recommend
func (ctl *InterestController) Recommend(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	student, err := ctl.Store.FindStudentByID(ctx, studentID)
	if err != nil {
		return ctl.studentLoadError(c, err)
	}
	grades, err := ctl.Store.FindGradesByStudent(ctx, studentID)
	if err != nil {
		return ctl.studentLoadError(c, err)
	}

	out, err := ctl.Engine.Recommend(ctx, toEngineInput(student, grades))
	if err != nil {
		return recommendError(c, err)
	}

	msg := MsgRecommendAI
	if out.Fallback {
		msg = MsgRecommendFallback
	}
	return helper.JsonOK(c, msg, dto.RecommendResponse{
		Recommendations: out.Result.Recommendations,
		Fallback:        out.Fallback,
	})
}

func toEngineInput(s *studentModel.StudentModel, grades []studentModel.GradeModel) recommendation.Input {
	records := make([]recommendation.GradeRecord, 0, len(grades))
	for _, g := range grades {
		records = append(records, recommendation.GradeRecord{
			CourseName: g.NamaMK,
			Period:     g.Semester,
			Score:      g.Nilai,
		})
	}
	return recommendation.Input{
		Profile:   recommendation.StudentProfile{Jurusan: s.Jurusan, IPK: s.IPK},
		Grades:    records,
		Interests: dto.StoredInterests(s.InterestHardSkills, s.InterestSoftSkills),
	}
}

// recommendError memetakan error engine ke status HTTP.
func recommendError(c *fiber.Ctx, err error) error {
	var unavailable *recommendation.UnavailableError
	var svcErr *recommendation.ServiceError

	switch {
	case errors.Is(err, recommendation.ErrInvalidInterests):
		return helper.JsonError(c, fiber.StatusBadRequest, MsgInvalidInterests)
	case errors.As(err, &unavailable):
		return helper.JsonErrorDebug(c, fiber.StatusServiceUnavailable, MsgServiceUnavailable, unavailable.Payload)
	case errors.Is(err, recommendation.ErrAIResponseFormat):
		return helper.JsonError(c, fiber.StatusInternalServerError, MsgInvalidAIResponse)
	case errors.As(err, &svcErr):
		return helper.JsonError(c, fiber.StatusInternalServerError, MsgServiceFailure+svcErr.Message)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, MsgServiceFailure+err.Error())
	}
}

func (ctl *InterestController) studentLoadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, studentRepo.ErrStudentNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, MsgStudentNotFound)
	}
	ctl.Log.Error(MsgStudentLoadFailed, map[string]interface{}{"error": err.Error()})
	return helper.JsonError(c, fiber.StatusInternalServerError, MsgStudentLoadFailed)
}

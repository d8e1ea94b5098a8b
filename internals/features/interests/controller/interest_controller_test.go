package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahasiswa_backend/internals/features/interests/catalog"
	"mahasiswa_backend/internals/features/interests/recommendation"
	studentModel "mahasiswa_backend/internals/features/students/model"
	studentRepo "mahasiswa_backend/internals/features/students/repository"
	helper "mahasiswa_backend/internals/helpers"
	"mahasiswa_backend/internals/helpers/logger"
)

/* ---------- fakes ---------- */

type fakeStore struct {
	student   *studentModel.StudentModel
	grades    []studentModel.GradeModel
	findErr   error
	updateErr error

	updated     bool
	updatedHard []string
	updatedSoft []string
}

func (f *fakeStore) FindStudentByID(_ context.Context, _ uuid.UUID) (*studentModel.StudentModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.student, nil
}

func (f *fakeStore) FindGradesByStudent(_ context.Context, _ uuid.UUID) ([]studentModel.GradeModel, error) {
	return f.grades, nil
}

func (f *fakeStore) UpdateInterests(_ context.Context, _ uuid.UUID, hard, soft []string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = true
	f.updatedHard, f.updatedSoft = hard, soft
	return nil
}

type fakeSkills struct{}

func (fakeSkills) Skills() catalog.SkillOptions {
	return catalog.SkillOptions{HardSkills: []string{"Machine Learning", "Go"}, SoftSkills: []string{"Komunikasi"}}
}

type courseList []string

func (c courseList) CourseNames() []string { return c }

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.text, g.err
}

type quotaErr struct{}

func (quotaErr) Error() string   { return "Error 429, Message: Quota exceeded for metric" }
func (quotaErr) StatusCode() int { return 429 }

/* ---------- helpers ---------- */

func newStudent() *studentModel.StudentModel {
	return &studentModel.StudentModel{
		ID:                 uuid.New(),
		NIM:                "1301221234",
		Jurusan:            "S1 Informatika",
		IPK:                3.42,
		InterestHardSkills: pq.StringArray{"Machine Learning"},
		InterestSoftSkills: pq.StringArray{"Komunikasi"},
	}
}

func newTestApp(t *testing.T, store *fakeStore, cred string, gen recommendation.Generator) *fiber.App {
	t.Helper()
	log := logger.NewTestLogger(t)
	engine := recommendation.NewEngine(
		courseList{"Deep Learning", "Cloud Computing", "Network Security"},
		recommendation.NewInvoker(cred, gen, time.Second),
		log,
	)
	ctl := NewInterestController(store, fakeSkills{}, engine, log)

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		if id := c.Get("X-Test-Student"); id != "" {
			c.Locals(helper.LocStudentID, id)
		}
		return c.Next()
	})
	app.Get("/api/interests", ctl.GetInterests)
	app.Post("/api/interests", ctl.UpdateInterests)
	app.Post("/api/interests/recommend", ctl.Recommend)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Student", uuid.NewString())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

/* ---------- GET /interests ---------- */

func TestGetInterests(t *testing.T) {
	store := &fakeStore{student: newStudent()}
	app := newTestApp(t, store, "real-key", &stubGenerator{})

	status, body := doRequest(t, app, http.MethodGet, "/api/interests", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MsgInterestsFetched, body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"Machine Learning"}, data["user_interests"].(map[string]any)["hard_skills"])
	assert.Equal(t, []any{"Machine Learning", "Go"}, data["available_options"].(map[string]any)["hard_skills"])
}

func TestGetInterests_NullColumnsAreEmptyLists(t *testing.T) {
	s := newStudent()
	s.InterestHardSkills, s.InterestSoftSkills = nil, nil
	app := newTestApp(t, &fakeStore{student: s}, "real-key", &stubGenerator{})

	_, body := doRequest(t, app, http.MethodGet, "/api/interests", "")

	interests := body["data"].(map[string]any)["user_interests"].(map[string]any)
	assert.Equal(t, []any{}, interests["hard_skills"])
	assert.Equal(t, []any{}, interests["soft_skills"])
}

func TestGetInterests_RepeatedReadsMatch(t *testing.T) {
	store := &fakeStore{student: newStudent()}
	app := newTestApp(t, store, "real-key", &stubGenerator{})

	firstStatus, first := doRequest(t, app, http.MethodGet, "/api/interests", "")
	secondStatus, second := doRequest(t, app, http.MethodGet, "/api/interests", "")

	require.Equal(t, fiber.StatusOK, firstStatus)
	require.Equal(t, fiber.StatusOK, secondStatus)
	assert.Equal(t,
		first["data"].(map[string]any)["user_interests"],
		second["data"].(map[string]any)["user_interests"])
	assert.False(t, store.updated)
}

func TestGetInterests_Unauthenticated(t *testing.T) {
	app := newTestApp(t, &fakeStore{student: newStudent()}, "real-key", &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/interests", nil)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

/* ---------- POST /interests ---------- */

func TestUpdateInterests(t *testing.T) {
	store := &fakeStore{student: newStudent()}
	app := newTestApp(t, store, "real-key", &stubGenerator{})

	status, body := doRequest(t, app, http.MethodPost, "/api/interests",
		`{"hard_skills":["Go","SQL"],"soft_skills":[]}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MsgInterestsSaved, body["message"])
	assert.True(t, store.updated)
	assert.Equal(t, []string{"Go", "SQL"}, store.updatedHard)
	assert.Equal(t, []string{}, store.updatedSoft)
}

func TestUpdateInterests_RejectsMalformedWithoutMutation(t *testing.T) {
	cases := map[string]string{
		"string instead of array": `{"hard_skills":"Go","soft_skills":[]}`,
		"numbers in array":        `{"hard_skills":[1,2],"soft_skills":[]}`,
		"missing soft skills":     `{"hard_skills":["Go"]}`,
		"null hard skills":        `{"hard_skills":null,"soft_skills":[]}`,
		"null item in hard":       `{"hard_skills":[null],"soft_skills":[]}`,
		"null item among strings": `{"hard_skills":["Go"],"soft_skills":["Leadership",null]}`,
		"not json":                `hard_skills=Go`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{student: newStudent()}
			app := newTestApp(t, store, "real-key", &stubGenerator{})

			status, body := doRequest(t, app, http.MethodPost, "/api/interests", payload)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, MsgInvalidInterests, body["message"])
			assert.Equal(t, true, body["error"])
			assert.False(t, store.updated)
		})
	}
}

func TestUpdateInterests_UnknownStudent(t *testing.T) {
	store := &fakeStore{updateErr: studentRepo.ErrStudentNotFound}
	app := newTestApp(t, store, "real-key", &stubGenerator{})

	status, _ := doRequest(t, app, http.MethodPost, "/api/interests", `{"hard_skills":[],"soft_skills":[]}`)

	assert.Equal(t, fiber.StatusNotFound, status)
}

/* ---------- POST /interests/recommend ---------- */

func TestRecommend_AI(t *testing.T) {
	gen := &stubGenerator{text: `{"recommendations":[
		{"name":"Deep Learning","type":"Course","reason":"Minat Machine Learning"},
		{"name":"Cloud Computing","type":"Course","reason":"r2"},
		{"name":"Network Security","type":"Course","reason":"r3"}]}`}
	store := &fakeStore{
		student: newStudent(),
		grades:  []studentModel.GradeModel{{NamaMK: "Basis Data", Semester: "2", Nilai: "A"}},
	}
	app := newTestApp(t, store, "real-key", gen)

	status, body := doRequest(t, app, http.MethodPost, "/api/interests/recommend", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MsgRecommendAI, body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["fallback"])
	assert.Len(t, data["recommendations"], 3)
	assert.Equal(t, 1, gen.calls)
}

func TestRecommend_QuotaFallback(t *testing.T) {
	app := newTestApp(t, &fakeStore{student: newStudent()}, "real-key", &stubGenerator{err: quotaErr{}})

	status, body := doRequest(t, app, http.MethodPost, "/api/interests/recommend", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MsgRecommendFallback, body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["fallback"])
	recs := data["recommendations"].([]any)
	require.Len(t, recs, 3)
	assert.Equal(t, "Deep Learning", recs[0].(map[string]any)["name"])
}

func TestRecommend_MissingKeyIs503WithDebug(t *testing.T) {
	gen := &stubGenerator{}
	app := newTestApp(t, &fakeStore{student: newStudent()}, "", gen)

	status, body := doRequest(t, app, http.MethodPost, "/api/interests/recommend", "")

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, MsgServiceUnavailable, body["message"])
	debug := body["data_debug"].(map[string]any)
	assert.Contains(t, debug, "available_courses")
	assert.Equal(t, 0, gen.calls)
}

func TestRecommend_InvalidJSONIs500(t *testing.T) {
	app := newTestApp(t, &fakeStore{student: newStudent()}, "real-key", &stubGenerator{text: "Berikut rekomendasinya: ..."})

	status, body := doRequest(t, app, http.MethodPost, "/api/interests/recommend", "")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, MsgInvalidAIResponse, body["message"])
	assert.NotContains(t, body, "data")
}

func TestRecommend_GenericFailureDoesNotLeakRaw(t *testing.T) {
	app := newTestApp(t, &fakeStore{student: newStudent()}, "real-key", &stubGenerator{err: errors.New("API key not valid")})

	status, body := doRequest(t, app, http.MethodPost, "/api/interests/recommend", "")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, MsgServiceFailure+"API key not valid", body["message"])
	assert.NotContains(t, body, "data_debug")
}

func TestRecommend_StudentNotFound(t *testing.T) {
	gen := &stubGenerator{}
	app := newTestApp(t, &fakeStore{findErr: studentRepo.ErrStudentNotFound}, "real-key", gen)

	status, _ := doRequest(t, app, http.MethodPost, "/api/interests/recommend", "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, 0, gen.calls)
}

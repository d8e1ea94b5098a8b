package recommendation

import (
	"context"
	"errors"

	"mahasiswa_backend/internals/helpers/logger"
	"mahasiswa_backend/internals/metrics"
)

// CourseSource memberi snapshot nama mata kuliah untuk satu request.
type CourseSource interface {
	CourseNames() []string
}

type Input struct {
	Profile   StudentProfile
	Grades    []GradeRecord
	Interests InterestProfile
}

type Outcome struct {
	Result   Result
	Fallback bool
	Period   int
}

type Engine struct {
	courses CourseSource
	invoker *Invoker
	log     logger.Logger
}

func NewEngine(courses CourseSource, invoker *Invoker, log logger.Logger) *Engine {
	return &Engine{
		courses: courses,
		invoker: invoker,
		log:     log.With(map[string]interface{}{"component": "recommendation"}),
	}
}

// Recommend menjalankan alur lengkap: semester → komposisi → satu panggilan
// model → validasi. Kegagalan pemanggilan dengan kelas kuota diganti set
// fallback; selain itu dikembalikan sebagai error.
func (e *Engine) Recommend(ctx context.Context, in Input) (*Outcome, error) {
	labels := make([]string, 0, len(in.Grades))
	for _, g := range in.Grades {
		labels = append(labels, g.Period)
	}
	period := InferCurrentPeriod(labels)
	courses := e.courses.CourseNames()

	req, prompt, err := Compose(ComposeInput{
		Profile:   in.Profile,
		Grades:    in.Grades,
		Interests: in.Interests,
		Period:    period,
		Courses:   courses,
	})
	if err != nil {
		metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, err
	}

	raw, err := e.invoker.Invoke(ctx, req, prompt)
	if err != nil {
		return e.handleFailure(err, period)
	}

	result, err := ValidateResponse(raw, courses)
	if err != nil {
		metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeFormatError).Inc()
		e.log.Error("AI JSON Parse Error", map[string]interface{}{
			"error": err.Error(),
			"raw":   raw,
		})
		return nil, err
	}

	metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeAI).Inc()
	return &Outcome{Result: *result, Period: period}, nil
}

func (e *Engine) handleFailure(err error, period int) (*Outcome, error) {
	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		e.log.Warn("Layanan AI tidak tersedia (API Key missing)", nil)
		return nil, err
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Timeout {
		metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeServiceError).Inc()
		e.log.Error("Gemini Error", map[string]interface{}{
			"error":          err.Error(),
			"classification": "timeout",
		})
		return nil, svcErr
	}

	rec := NormalizeFailure(err)
	class := Classify(rec)
	e.log.Error("Gemini Error", map[string]interface{}{
		"failure":        rec,
		"classification": class.String(),
	})

	if class == ClassQuotaExceeded {
		metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeFallback).Inc()
		return &Outcome{
			Result:   Result{Recommendations: FallbackRecommendations()},
			Fallback: true,
			Period:   period,
		}, nil
	}

	metrics.RecommendationOutcomes.WithLabelValues(metrics.OutcomeServiceError).Inc()
	return nil, &ServiceError{Message: rec.Message, Class: class, Err: err}
}

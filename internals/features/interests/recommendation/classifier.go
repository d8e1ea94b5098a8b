package recommendation

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
)

const (
	quotaStatusCode   = 429
	quotaStatusText   = "429"
	quotaExceededText = "Quota exceeded"
)

type FailureClass int

const (
	ClassOther FailureClass = iota
	ClassQuotaExceeded
)

func (c FailureClass) String() string {
	if c == ClassQuotaExceeded {
		return "quota_exceeded"
	}
	return "other"
}

// FailureRecord adalah bentuk ternormalisasi dari error pemanggilan model.
type FailureRecord struct {
	Status  *int   `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

// StatusCoder diimplementasikan error dari adapter layanan yang membawa kode HTTP.
type StatusCoder interface {
	StatusCode() int
}

// RawDetailer memberi bentuk serial error (setara JSON error asli dari layanan).
type RawDetailer interface {
	RawDetail() string
}

// NormalizeFailure mengumpulkan field yang tersedia dari sebuah error.
func NormalizeFailure(err error) FailureRecord {
	if err == nil {
		return FailureRecord{}
	}
	rec := FailureRecord{Message: err.Error()}

	var sc StatusCoder
	if errors.As(err, &sc) {
		code := sc.StatusCode()
		rec.Status = &code
	}

	var rd RawDetailer
	if errors.As(err, &rd) {
		rec.Raw = rd.RawDetail()
	} else if raw, mErr := sonic.MarshalString(err); mErr == nil {
		rec.Raw = raw
	}
	return rec
}

func statusIsQuota(f FailureRecord) bool {
	return f.Status != nil && *f.Status == quotaStatusCode
}

func messageHasQuotaStatus(f FailureRecord) bool {
	return strings.Contains(f.Message, quotaStatusText)
}

func messageHasQuotaExceeded(f FailureRecord) bool {
	return strings.Contains(f.Message, quotaExceededText)
}

func rawHasQuotaStatus(f FailureRecord) bool {
	return strings.Contains(f.Raw, quotaStatusText)
}

func rawHasQuotaExceeded(f FailureRecord) bool {
	return strings.Contains(f.Raw, quotaExceededText)
}

var quotaPredicates = []func(FailureRecord) bool{
	statusIsQuota,
	messageHasQuotaStatus,
	messageHasQuotaExceeded,
	rawHasQuotaStatus,
	rawHasQuotaExceeded,
}

// Classify: cukup satu predikat yang cocok untuk dianggap kuota habis.
func Classify(f FailureRecord) FailureClass {
	for _, match := range quotaPredicates {
		if match(f) {
			return ClassQuotaExceeded
		}
	}
	return ClassOther
}

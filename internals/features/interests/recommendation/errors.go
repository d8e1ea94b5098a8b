package recommendation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInterests   = errors.New("format minat tidak valid")
	ErrServiceUnavailable = errors.New("layanan AI tidak tersedia")
	ErrAIResponseFormat   = errors.New("format respon AI tidak valid")
	ErrServiceFailure     = errors.New("layanan AI gagal")
	ErrInvocationTimeout  = errors.New("panggilan layanan AI melewati batas waktu")
)

// UnavailableError dikembalikan sebelum panggilan jaringan apa pun kalau
// kredensial belum diset. Payload berisi request yang akan dikirim.
type UnavailableError struct {
	Payload *Request
}

func (e *UnavailableError) Error() string { return ErrServiceUnavailable.Error() }
func (e *UnavailableError) Unwrap() error { return ErrServiceUnavailable }

// FormatError: respon model tidak bisa diparse atau melanggar skema/katalog.
type FormatError struct {
	Detail string
	Raw    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAIResponseFormat.Error(), e.Detail)
}

func (e *FormatError) Unwrap() error { return ErrAIResponseFormat }

// ServiceError: kegagalan pemanggilan yang bukan kuota. Message adalah pesan
// asli dari layanan, tanpa detail mentah lain.
type ServiceError struct {
	Message string
	Class   FailureClass
	Timeout bool
	Err     error
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Is(target error) bool {
	if target == ErrServiceFailure {
		return true
	}
	return e.Timeout && target == ErrInvocationTimeout
}

func (e *ServiceError) Unwrap() error { return e.Err }

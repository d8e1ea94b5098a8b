package recommendation

import (
	"context"
	"errors"
	"time"

	"mahasiswa_backend/internals/configs"
)

// Generator adalah klien model generatif yang sudah dikonfigurasi untuk
// respon JSON saja. Satu instance dipakai bersama oleh semua request.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Invoker struct {
	credential string
	gen        Generator
	timeout    time.Duration
}

// NewInvoker: timeout <= 0 berarti tanpa batas tambahan selain ctx pemanggil.
func NewInvoker(credential string, gen Generator, timeout time.Duration) *Invoker {
	return &Invoker{credential: credential, gen: gen, timeout: timeout}
}

// Invoke melakukan tepat satu panggilan ke model, tanpa retry.
// Kredensial kosong/placeholder → *UnavailableError tanpa menyentuh jaringan.
func (i *Invoker) Invoke(ctx context.Context, req *Request, prompt string) (string, error) {
	if !configs.GeminiKeyUsable(i.credential) || i.gen == nil {
		return "", &UnavailableError{Payload: req}
	}

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	text, err := i.gen.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
			return "", &ServiceError{
				Message: ErrInvocationTimeout.Error(),
				Class:   ClassOther,
				Timeout: true,
				Err:     err,
			}
		}
		return "", err
	}
	return text, nil
}

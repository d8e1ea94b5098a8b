// Package gemini membungkus klien google.golang.org/genai menjadi Generator
// yang hanya meminta respon JSON.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"google.golang.org/genai"

	"mahasiswa_backend/internals/configs"
	"mahasiswa_backend/internals/metrics"
)

const ResponseMIMEType = "application/json"

var ErrNotConfigured = errors.New("gemini: API key belum diset")

// Client dibuat sekali saat startup. Kalau API key belum diset, inner nil dan
// Generate selalu gagal; pemanggil diharapkan sudah mengecek kredensial.
type Client struct {
	model string
	inner *genai.Client
}

func NewClient(ctx context.Context, cfg configs.GeminiConfig) (*Client, error) {
	c := &Client{model: cfg.Model}
	if !configs.GeminiKeyUsable(cfg.APIKey) {
		return c, nil
	}
	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: init client: %w", err)
	}
	c.inner = inner
	return c, nil
}

func (c *Client) Model() string { return c.model }

// Generate mengirim satu prompt dan mengembalikan teks respon mentah.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.inner == nil {
		return "", ErrNotConfigured
	}

	start := time.Now()
	resp, err := c.inner.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: ResponseMIMEType,
	})
	metrics.GenerativeCallDuration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", wrapError(err)
	}
	return resp.Text(), nil
}

// APIError adalah error layanan dengan kode HTTP yang sudah dinormalisasi.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
	err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error %d, Message: %s, Status: %s", e.Code, e.Message, e.Status)
}

func (e *APIError) Unwrap() error { return e.err }

func (e *APIError) StatusCode() int { return e.Code }

// RawDetail: bentuk JSON dari error, dipakai classifier untuk mencari penanda kuota.
func (e *APIError) RawDetail() string {
	raw, err := sonic.MarshalString(e)
	if err != nil {
		return ""
	}
	return raw
}

func wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{Code: apiErr.Code, Message: apiErr.Message, Status: apiErr.Status, err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &APIError{Code: apiErrPtr.Code, Message: apiErrPtr.Message, Status: apiErrPtr.Status, err: err}
	}
	return err
}

// internals/features/students/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mahasiswa_backend/internals/features/students/model"
)

var (
	ErrInvalidCredentials = errors.New("NIM atau password salah")
	ErrMissingSecret      = errors.New("JWT_SECRET belum diset")
)

const defaultAccessTTL = 24 * time.Hour

// CheckPassword membandingkan password dengan hash bcrypt milik mahasiswa.
func CheckPassword(s *model.StudentModel, password string) error {
	if s == nil || s.Password == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// BuildAccessClaims: sub = id mahasiswa, dipakai middleware AuthJWT.
func BuildAccessClaims(s *model.StudentModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}
	return jwt.MapClaims{
		"sub": s.ID.String(),
		"nim": s.NIM,
		"typ": "access",
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"jti": uuid.NewString(),
	}
}

func IssueAccessToken(secret string, s *model.StudentModel, now time.Time, ttl time.Duration) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", ErrMissingSecret
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(s, now, ttl)).SignedString([]byte(secret))
}

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mahasiswa_backend/internals/features/students/model"
)

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	s := &model.StudentModel{Password: string(hash)}

	assert.NoError(t, CheckPassword(s, "rahasia123"))
	assert.ErrorIs(t, CheckPassword(s, "salah"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword(&model.StudentModel{}, "rahasia123"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword(nil, "x"), ErrInvalidCredentials)
}

func TestIssueAccessToken(t *testing.T) {
	s := &model.StudentModel{ID: uuid.New(), NIM: "1301221234"}
	now := time.Now()

	raw, err := IssueAccessToken("secret", s, now, time.Hour)
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte("secret"), nil })
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, s.ID.String(), claims["sub"])
	assert.Equal(t, "1301221234", claims["nim"])
	assert.Equal(t, float64(now.Add(time.Hour).Unix()), claims["exp"])
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), tok.Method.Alg())
}

func TestIssueAccessToken_RequiresSecret(t *testing.T) {
	_, err := IssueAccessToken("  ", &model.StudentModel{ID: uuid.New()}, time.Now(), 0)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

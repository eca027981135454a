package util

import (
	"quiz_progress_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", model.Student, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
}

func TestParseJWTRejects(t *testing.T) {
	expired, err := GenerateJWT("user-1", model.Student, testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, testSecret)
	assert.Error(t, err, "expired")

	valid, err := GenerateJWT("user-1", model.Student, testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(valid, "another-secret-another-secret-xx")
	assert.Error(t, err, "wrong secret")

	_, err = ParseJWT("not-a-token", testSecret)
	assert.Error(t, err, "garbage")
}

func TestParseJWTFallsBackToSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "from-sub",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := ParseJWT(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "from-sub", claims.UserID)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err = noID.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseJWT(signed, testSecret)
	assert.Error(t, err)
}

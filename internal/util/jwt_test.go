package util

import (
	"testing"
	"time"

	"kidquiz_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Role: model.Parent}
	user.ID = 42

	token, err := GenerateJWT(user, "round-trip-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "round-trip-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Parent, claims.Role)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Role: model.Kid}
	user.ID = 7

	token, err := GenerateJWT(user, "signing-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Role: model.Kid}
	user.ID = 7

	token, err := GenerateJWT(user, "signing-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "signing-secret")
	assert.Error(t, err)
}

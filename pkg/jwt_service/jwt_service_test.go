package jwtservice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	profile := &entity.Profile{ID: uuid.New(), Email: "coach@example.com", Role: entity.RoleAdmin}
	s := New("secret", time.Hour)
	token, err := s.GenerateToken(profile)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "coach@example.com", claims.Subject)
}

func TestParseTokenErrors(t *testing.T) {
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleClient}
	s := New("secret", time.Hour)
	token, err := s.GenerateToken(profile)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := New("other", time.Hour).ParseToken(token)
		assert.Error(t, err)
	})
	t.Run("expired", func(t *testing.T) {
		expired := New("secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.ParseToken(token)
		assert.Error(t, err)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestCheckSecret(t *testing.T) {
	assert.ErrorIs(t, CheckSecret(""), ErrEmptySecret)
	assert.ErrorIs(t, CheckSecret("  \t"), ErrEmptySecret)
	assert.NoError(t, CheckSecret("secret"))
}

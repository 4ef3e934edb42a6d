package auth

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	user := &models.User{ID: 42, Name: "Alice", Email: "alice@example.com", IsAdmin: true}

	t.Run("issue and verify", func(t *testing.T) {
		raw, err := tokens.Issue(user)
		assert.NoError(t, err)
		assert.NotEmpty(t, raw)

		claims, err := tokens.Verify(raw)
		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokens("test-secret", -time.Minute)
		raw, err := expired.Issue(user)
		assert.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokens("other-secret", time.Hour)
		raw, err := other.Issue(user)
		assert.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := tokens.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("zero user id rejected", func(t *testing.T) {
		raw, err := tokens.Issue(&models.User{ID: 0})
		assert.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

package services

import (
	"testing"
	"time"

	"inkwell/app/auth"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
)

func newUserService() (*UserService, *mockUserRepo) {
	repo := newMockUserRepo()
	tokens := auth.NewTokens("test-secret", time.Hour)
	return NewUserService(repo, tokens), repo
}

func TestUserServiceRegister(t *testing.T) {
	service, _ := newUserService()

	t.Run("register", func(t *testing.T) {
		user, token, err := service.Register("Alice", "Alice@Example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, "secret123", user.Password)
		assert.True(t, user.CheckPassword("secret123"))
		assert.False(t, user.IsAdmin)
	})

	t.Run("short password", func(t *testing.T) {
		_, _, err := service.Register("Bob", "bob@example.com", "short")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := service.Register("Imposter", "alice@example.com", "secret123")
		assert.ErrorIs(t, err, repositories.ErrConflict)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, _, err := service.Register("Carol", "not-an-email", "secret123")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserServiceLogin(t *testing.T) {
	service, _ := newUserService()
	_, _, err := service.Register("Alice", "alice@example.com", "secret123")
	assert.NoError(t, err)

	t.Run("login", func(t *testing.T) {
		user, token, err := service.Login("alice@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("unknown email and wrong password fail alike", func(t *testing.T) {
		_, _, unknownErr := service.Login("nobody@example.com", "secret123")
		_, _, wrongErr := service.Login("alice@example.com", "wrong")

		assert.ErrorIs(t, unknownErr, ErrUnauthenticated)
		assert.ErrorIs(t, wrongErr, ErrUnauthenticated)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestUserServiceProfile(t *testing.T) {
	service, _ := newUserService()
	registered, _, err := service.Register("Alice", "alice@example.com", "secret123")
	assert.NoError(t, err)

	t.Run("get profile", func(t *testing.T) {
		user, err := service.GetProfile(registered.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("empty fields keep prior values", func(t *testing.T) {
		user, err := service.UpdateProfile(registered.ID, "", "", "writes about Go")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "writes about Go", user.Bio)
	})

	t.Run("update name", func(t *testing.T) {
		user, err := service.UpdateProfile(registered.ID, "Alice B", "", "")
		assert.NoError(t, err)
		assert.Equal(t, "Alice B", user.Name)
		assert.Equal(t, "writes about Go", user.Bio)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := service.GetProfile(9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestUserServiceUpdatePassword(t *testing.T) {
	service, _ := newUserService()
	registered, _, err := service.Register("Alice", "alice@example.com", "secret123")
	assert.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := service.UpdatePassword(registered.ID, "wrong", "newsecret")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("short new password", func(t *testing.T) {
		err := service.UpdatePassword(registered.ID, "secret123", "short")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("update password", func(t *testing.T) {
		err := service.UpdatePassword(registered.ID, "secret123", "newsecret")
		assert.NoError(t, err)

		_, _, err = service.Login("alice@example.com", "newsecret")
		assert.NoError(t, err)
		_, _, err = service.Login("alice@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

package repositories

import (
	"fmt"
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func newUser(name, email string, createdAt time.Time) *models.User {
	return &models.User{
		Name:      name,
		Email:     email,
		Password:  "hashed",
		CreatedAt: createdAt,
	}
}

func TestUserRepository(t *testing.T) {
	db, err := Open(t.TempDir())
	assert.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := newUser("Alice", "alice@example.com", time.Now())

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", retrieved.Name)
		assert.Equal(t, "alice@example.com", retrieved.Email)
	})

	t.Run("get by email", func(t *testing.T) {
		retrieved, err := repo.GetByEmail("alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", retrieved.Name)

		// The index is case-insensitive.
		retrieved, err = repo.GetByEmail("ALICE@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", retrieved.Name)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		dup := newUser("Imposter", "Alice@Example.com", time.Now())
		err := repo.Create(dup)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update moves the email index", func(t *testing.T) {
		user := newUser("Bob", "bob@example.com", time.Now())
		assert.NoError(t, repo.Create(user))

		user.Email = "robert@example.com"
		assert.NoError(t, repo.Update(user))

		_, err := repo.GetByEmail("bob@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		retrieved, err := repo.GetByEmail("robert@example.com")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)
	})

	t.Run("update to a taken email conflicts", func(t *testing.T) {
		user, err := repo.GetByEmail("robert@example.com")
		assert.NoError(t, err)

		user.Email = "alice@example.com"
		err = repo.Update(user)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("delete removes user and index", func(t *testing.T) {
		user := newUser("Carol", "carol@example.com", time.Now())
		assert.NoError(t, repo.Create(user))

		assert.NoError(t, repo.Delete(user.ID))

		_, err := repo.GetByID(user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.GetByEmail("carol@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		// The address is free again.
		again := newUser("Carol II", "carol@example.com", time.Now())
		assert.NoError(t, repo.Create(again))
	})

	t.Run("list newest first", func(t *testing.T) {
		base := time.Now()
		for i := 0; i < 3; i++ {
			user := newUser(
				fmt.Sprintf("Lister %d", i),
				fmt.Sprintf("lister%d@example.com", i),
				base.Add(time.Duration(i)*time.Minute),
			)
			assert.NoError(t, repo.Create(user))
		}

		users, err := repo.List()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(users), 3)
		for i := 1; i < len(users); i++ {
			assert.False(t, users[i-1].CreatedAt.Before(users[i].CreatedAt))
		}
	})

	t.Run("count", func(t *testing.T) {
		users, err := repo.List()
		assert.NoError(t, err)

		count, err := repo.Count()
		assert.NoError(t, err)
		assert.Equal(t, len(users), count)
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	users map[int]*models.User
}

func (s *stubUserRepo) Create(*models.User) error { return nil }
func (s *stubUserRepo) Update(*models.User) error { return nil }
func (s *stubUserRepo) Delete(int) error          { return nil }
func (s *stubUserRepo) Count() (int, error)       { return len(s.users), nil }

func (s *stubUserRepo) List() ([]*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}
func (s *stubUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := s.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	alice := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	repo := &stubUserRepo{users: map[int]*models.User{1: alice}}

	var seen *models.User
	handler := Authenticate(tokens, repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	request := func(authorization string) *httptest.ResponseRecorder {
		seen = nil
		r := httptest.NewRequest("GET", "/api/users/profile", nil)
		if authorization != "" {
			r.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.Issue(alice)
		assert.NoError(t, err)

		w := request("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, seen)
		assert.Equal(t, 1, seen.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		w := request("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, seen)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := request("Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := request("Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		token, err := tokens.Issue(&models.User{ID: 99})
		assert.NoError(t, err)

		w := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	alice := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	root := &models.User{ID: 2, Name: "Root", Email: "root@example.com", IsAdmin: true}
	repo := &stubUserRepo{users: map[int]*models.User{1: alice, 2: root}}

	handler := Authenticate(tokens, repo)(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	request := func(user *models.User) *httptest.ResponseRecorder {
		token, err := tokens.Issue(user)
		assert.NoError(t, err)
		r := httptest.NewRequest("GET", "/api/admin/stats", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	t.Run("admin passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, request(root).Code)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, request(alice).Code)
	})

	t.Run("without authenticate it rejects", func(t *testing.T) {
		bare := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		w := httptest.NewRecorder()
		bare.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked admin loses access", func(t *testing.T) {
		token, err := tokens.Issue(root)
		assert.NoError(t, err)
		root.IsAdmin = false
		t.Cleanup(func() { root.IsAdmin = true })

		r := httptest.NewRequest("GET", "/api/admin/stats", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

package services

import (
	"sort"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == models.NormalizeEmail(user.Email) {
			return repositories.ErrConflict
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == models.NormalizeEmail(email) {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) Update(user *models.User) error {
	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(id int) error {
	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List() ([]*models.User, error) {
	var users []*models.User
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (m *mockUserRepo) Count() (int, error) {
	return len(m.users), nil
}

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	return m.listMatching(func(*models.Post) bool { return true }), nil
}

func (m *mockPostRepo) ListByAuthor(authorID int) ([]*models.Post, error) {
	return m.listMatching(func(p *models.Post) bool { return p.AuthorID == authorID }), nil
}

func (m *mockPostRepo) listMatching(keep func(*models.Post) bool) []*models.Post {
	var posts []*models.Post
	for _, post := range m.posts {
		if keep(post) {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID > posts[j].ID
	})
	return posts
}

func (m *mockPostRepo) Count() (int, error) {
	return len(m.posts), nil
}

// mockImages records which image paths were removed.
type mockImages struct {
	removed []string
}

func (m *mockImages) Remove(imagePath string) error {
	m.removed = append(m.removed, imagePath)
	return nil
}

package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// AdminService provides the read-only rollups and user moderation
// actions behind the admin endpoints.
type AdminService struct {
	users repositories.UserRepository
	posts repositories.PostRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(users repositories.UserRepository, posts repositories.PostRepository) *AdminService {
	return &AdminService{users: users, posts: posts}
}

// Stats recomputes the dashboard totals by summing over the post
// collection. No caching; this is a low-traffic admin view.
func (s *AdminService) Stats() (*models.DashboardStats, error) {
	totalUsers, err := s.users.Count()
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.List()
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalPosts: len(posts),
		TotalUsers: totalUsers,
	}
	for _, post := range posts {
		stats.TotalComments += len(post.Comments)
		stats.TotalLikes += len(post.Likes)
	}
	return stats, nil
}

// ListUsers returns all users, newest first.
func (s *AdminService) ListUsers() ([]*models.User, error) {
	return s.users.List()
}

// RecentUsers returns the n newest users.
func (s *AdminService) RecentUsers(n int) ([]*models.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	if len(users) > n {
		users = users[:n]
	}
	return users, nil
}

// DeleteUser removes an account. Admins cannot delete themselves; the
// self-deletion check is an authorization failure.
func (s *AdminService) DeleteUser(callerID, userID int) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user.ID == callerID {
		return fmt.Errorf("%w: cannot delete your own account", ErrForbidden)
	}
	return s.users.Delete(userID)
}

// SetAdmin updates a user's admin flag and returns the updated record.
func (s *AdminService) SetAdmin(userID int, isAdmin bool) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

package services

import (
	"fmt"

	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

const minPasswordLength = 6

// UserService handles registration, login and profile management.
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.Tokens
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, tokens *auth.Tokens) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a new account and returns it with an issued token.
// A taken email fails with repositories.ErrConflict; the raw password
// is never stored.
func (s *UserService) Register(name, email, password string) (*models.User, string, error) {
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	user := &models.User{
		Name:  name,
		Email: email,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, "", err
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token.
// Unknown email and wrong password fail identically.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}
	if !user.CheckPassword(password) {
		return nil, "", fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetProfile returns the user record for an authenticated identity.
func (s *UserService) GetProfile(userID int) (*models.User, error) {
	return s.users.GetByID(userID)
}

// UpdateProfile replaces only the provided fields; empty fields keep
// their prior values.
func (s *UserService) UpdateProfile(userID int, name, email, bio string) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if bio != "" {
		user.Bio = bio
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the current password before storing a new
// hash. A short new password fails with ErrValidation, a wrong current
// password with ErrUnauthenticated.
func (s *UserService) UpdatePassword(userID int, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(currentPassword) {
		return fmt.Errorf("%w: current password is incorrect", ErrUnauthenticated)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.users.Update(user)
}

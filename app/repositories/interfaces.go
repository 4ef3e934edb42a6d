package repositories

import "inkwell/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
	List() ([]*models.User, error)
	Count() (int, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	List() ([]*models.Post, error)
	ListByAuthor(authorID int) ([]*models.Post, error)
	Count() (int, error)
}

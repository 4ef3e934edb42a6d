package services

import (
	"fmt"
	"log"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ImageRemover deletes a stored image by its public path. Removal is a
// best-effort side effect: a failed delete is logged, never fatal.
type ImageRemover interface {
	Remove(imagePath string) error
}

// PostService handles business logic for blog posts, their embedded
// comments and like sets.
type PostService struct {
	posts  repositories.PostRepository
	users  repositories.UserRepository
	images ImageRemover
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository, images ImageRemover) *PostService {
	return &PostService{posts: posts, users: users, images: images}
}

// UpdatePostInput carries the fields a post update may replace. Empty
// fields keep their prior values.
type UpdatePostInput struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// CreatePost creates a post with empty comments and likes. The author
// reference is set once here and never reassigned.
func (s *PostService) CreatePost(authorID int, title, content, category, imagePath string) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		Content:  content,
		Category: category,
		Image:    imagePath,
		AuthorID: authorID,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	s.resolveAuthors(post)
	return post, nil
}

// GetPost retrieves one post with its author and comment authors
// resolved.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.resolveAuthors(post)
	return post, nil
}

// ListPosts retrieves all posts, author-resolved, newest first.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.posts.List()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		s.resolveAuthors(post)
	}
	return posts, nil
}

// ListPostsByAuthor retrieves one author's posts, newest first.
func (s *PostService) ListPostsByAuthor(authorID int) ([]*models.Post, error) {
	posts, err := s.posts.ListByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		s.resolveAuthors(post)
	}
	return posts, nil
}

// UpdatePost replaces only the provided fields. Only the author or an
// admin may update; a replaced image has its old file deleted first.
func (s *PostService) UpdatePost(id int, caller *models.User, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !isOwnerOrAdmin(caller, post.AuthorID) {
		return nil, fmt.Errorf("%w: only the author or an admin can update this post", ErrForbidden)
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.Category != "" {
		post.Category = input.Category
	}
	if input.Image != "" {
		if post.Image != "" {
			if err := s.images.Remove(post.Image); err != nil {
				log.Printf("failed to remove old image %s: %v", post.Image, err)
			}
		}
		post.Image = input.Image
	}

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	s.resolveAuthors(post)
	return post, nil
}

// DeletePost removes a post, its embedded comments and its image file
// as a unit. Only the author or an admin may delete.
func (s *PostService) DeletePost(id int, caller *models.User) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if !isOwnerOrAdmin(caller, post.AuthorID) {
		return fmt.Errorf("%w: only the author or an admin can delete this post", ErrForbidden)
	}

	if post.Image != "" {
		if err := s.images.Remove(post.Image); err != nil {
			log.Printf("failed to remove image %s: %v", post.Image, err)
		}
	}
	return s.posts.Delete(id)
}

// AddComment appends a comment to a post and returns the updated post.
func (s *PostService) AddComment(postID, authorID int, content string) (*models.Post, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", ErrValidation)
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  content,
		AuthorID: authorID,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := post.AddComment(comment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	s.resolveAuthors(post)
	return post, nil
}

// ToggleLike flips userID's membership in the post's like set and
// returns the updated post. Repeated toggling is never an error.
func (s *PostService) ToggleLike(postID, userID int) (*models.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}

	post.ToggleLike(userID)

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	s.resolveAuthors(post)
	return post, nil
}

// resolveAuthors attaches the post author and comment author names.
// A missing user (deleted account) leaves the reference unresolved.
func (s *PostService) resolveAuthors(post *models.Post) {
	if user, err := s.users.GetByID(post.AuthorID); err == nil {
		post.Author = &models.Author{ID: user.ID, Name: user.Name, Email: user.Email}
	}
	for _, comment := range post.Comments {
		if user, err := s.users.GetByID(comment.AuthorID); err == nil {
			comment.AuthorName = user.Name
		}
	}
}

// isOwnerOrAdmin implements the owner-or-admin authorization rule.
func isOwnerOrAdmin(caller *models.User, authorID int) bool {
	if caller == nil {
		return false
	}
	return caller.ID == authorID || caller.IsAdmin
}

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Categories lists the fixed set of labels a post may be filed under.
var Categories = []string{
	"Technology", "Travel", "Food", "Lifestyle", "Business",
	"Health", "Science", "Arts", "Education", "Politics", "Sports",
}

// User represents a registered account. The password field holds a
// bcrypt hash and is never serialized.
type User struct {
	ID        int       `json:"id" validate:"gte=0"`
	Name      string    `json:"name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required"`
	Bio       string    `json:"bio" validate:"max=500"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Author is the subset of a user attached to posts and comments when
// references are resolved at read time.
type Author struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Post represents a blog post with embedded comments and a like set.
type Post struct {
	ID        int        `json:"id" validate:"gte=0"`
	Title     string     `json:"title" validate:"required,max=200"`
	Content   string     `json:"content" validate:"required"`
	Category  string     `json:"category" validate:"required,oneof=Technology Travel Food Lifestyle Business Health Science Arts Education Politics Sports"`
	Image     string     `json:"image,omitempty"`
	AuthorID  int        `json:"authorId" validate:"required,gte=1"`
	Author    *Author    `json:"author,omitempty" validate:"-"`
	Comments  []*Comment `json:"comments" validate:"-"`
	Likes     []int      `json:"likes"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Comment is embedded in its post and owned by it; comments are never
// edited or deleted on their own.
type Comment struct {
	ID         int       `json:"id" validate:"gte=0"`
	Content    string    `json:"content" validate:"required,max=1000"`
	AuthorID   int       `json:"authorId" validate:"required,gte=1"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DashboardStats holds the admin rollups, recomputed per request.
type DashboardStats struct {
	TotalPosts    int `json:"totalPosts"`
	TotalUsers    int `json:"totalUsers"`
	TotalComments int `json:"totalComments"`
	TotalLikes    int `json:"totalLikes"`
}

// ValidCategory reports whether label is one of the fixed categories.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

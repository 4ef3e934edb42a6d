package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Comments == nil {
		p.Comments = []*Comment{}
	}
	if p.Likes == nil {
		p.Likes = []int{}
	}
}

// AddComment appends a comment to the post's comment sequence.
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.ID = len(p.Comments) + 1
	p.Comments = append(p.Comments, comment)
	return nil
}

// ToggleLike flips userID's membership in the like set and reports
// whether the post is liked afterwards. Repeated toggling is not an
// error; two toggles restore the original set.
func (p *Post) ToggleLike(userID int) bool {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append(p.Likes, userID)
	return true
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID int) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

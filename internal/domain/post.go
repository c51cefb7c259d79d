package domain

import (
	"strings"
	"time"
)

// Post represents a blog post. AuthorID is set once at creation and never
// reassigned. CreatedAt is server-assigned once; UpdatedAt is bumped on
// every successful content mutation.
type Post struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates an unsaved Post authored by the given user. Both
// timestamps start equal.
func NewPost(authorID int64, content string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks that the post has an author and non-blank content.
func (p *Post) Validate() error {
	if p.AuthorID == 0 {
		return NewValidationError("author", "is required", ErrValidation)
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// UpdateContent replaces the content and bumps UpdatedAt. CreatedAt is
// untouched. Blank content is rejected.
func (p *Post) UpdateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	p.Content = content
	p.UpdatedAt = time.Now().UTC()
	return nil
}

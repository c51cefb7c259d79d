package store

import (
	"context"
	"database/sql"

	"github.com/arundaon/blog-api/internal/domain"
)

// PostWithAuthor pairs a post with its author's display name, as needed by
// the read projection. Produced by listing queries with a join so the read
// path does not issue one user lookup per post.
type PostWithAuthor struct {
	Post       domain.Post
	AuthorName string
}

// PostStore defines the interface for post persistence.
type PostStore interface {
	// Create saves a new post and assigns its ID.
	// Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetWithAuthor retrieves a post joined with its author's name.
	// Returns ErrPostNotFound if the post does not exist.
	GetWithAuthor(ctx context.Context, id int64) (*PostWithAuthor, error)

	// ListWithAuthors retrieves all posts joined with author names,
	// ordered by ID.
	ListWithAuthors(ctx context.Context) ([]*PostWithAuthor, error)

	// Update persists a post's content and updated timestamp.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post permanently.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a PostStore bound to the given transaction.
	WithTx(tx *sql.Tx) PostStore
}

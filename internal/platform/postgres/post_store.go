package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/platform/logger"
	"github.com/arundaon/blog-api/internal/store"
)

// PostStore implements store.PostStore on PostgreSQL.
type PostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostStore creates a PostStore. The db may be a connection or a
// transaction; it is managed by the caller.
func NewPostStore(db store.DBTX, logger *slog.Logger) *PostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// WithTx implements store.PostStore.WithTx.
func (s *PostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostStore{db: tx, logger: s.logger}
}

// Create implements store.PostStore.Create.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO posts (content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		post.Content,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("post create references missing author",
				"author_id", post.AuthorID)
			return fmt.Errorf("%w: author %d not found", store.ErrInvalidEntity, post.AuthorID)
		}
		log.Error("failed to create post", "error", err)
		return err
	}

	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *PostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT id, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`
	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err, store.ErrPostNotFound)
	}
	return &post, nil
}

// GetWithAuthor implements store.PostStore.GetWithAuthor.
func (s *PostStore) GetWithAuthor(ctx context.Context, id int64) (*store.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.content, p.author_id, p.created_at, p.updated_at, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`
	var row store.PostWithAuthor
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.Post.ID,
		&row.Post.Content,
		&row.Post.AuthorID,
		&row.Post.CreatedAt,
		&row.Post.UpdatedAt,
		&row.AuthorName,
	)
	if err != nil {
		return nil, mapNoRows(err, store.ErrPostNotFound)
	}
	return &row, nil
}

// ListWithAuthors implements store.PostStore.ListWithAuthors.
func (s *PostStore) ListWithAuthors(ctx context.Context) ([]*store.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.content, p.author_id, p.created_at, p.updated_at, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Error("failed to close rows", "error", cerr)
		}
	}()

	var result []*store.PostWithAuthor
	for rows.Next() {
		var row store.PostWithAuthor
		if err := rows.Scan(
			&row.Post.ID,
			&row.Post.Content,
			&row.Post.AuthorID,
			&row.Post.CreatedAt,
			&row.Post.UpdatedAt,
			&row.AuthorName,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Update implements store.PostStore.Update. Only content and updated_at are
// written; created_at and author_id are immutable.
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET content = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return err
	}
	return CheckRowsAffected(result, store.ErrPostNotFound)
}

// Delete implements store.PostStore.Delete.
func (s *PostStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return CheckRowsAffected(result, store.ErrPostNotFound)
}

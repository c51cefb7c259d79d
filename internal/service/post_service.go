package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/store"
)

// PostInfo is the read projection of a post: it carries the author's
// display name instead of the author ID.
type PostInfo struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    string    `json:"author"`
}

// PostService provides CRUD over posts. Update and delete are gated by the
// ownership policy; reads require no principal.
type PostService interface {
	// List returns all posts projected to PostInfo. No authorization.
	List(ctx context.Context) ([]*PostInfo, error)

	// Get returns one post projected to PostInfo.
	// Returns store.ErrPostNotFound if the id is unknown.
	Get(ctx context.Context, id int64) (*PostInfo, error)

	// Create persists a new post authored by the principal. Content must
	// be non-blank.
	Create(ctx context.Context, principal *domain.User, content string) error

	// Update replaces a post's content and bumps its updated timestamp.
	// The post must exist (store.ErrPostNotFound) and the principal must
	// own it (ErrNotPostOwner); existence is checked before ownership.
	Update(ctx context.Context, principal *domain.User, id int64, content string) error

	// Delete removes a post permanently, under the same existence and
	// ownership rules as Update.
	Delete(ctx context.Context, principal *domain.User, id int64) error
}

// postServiceImpl implements PostService.
type postServiceImpl struct {
	postStore store.PostStore
	policy    *OwnerPolicy
	txRunner  store.TxRunner
	logger    *slog.Logger
}

// NewPostService creates a PostService.
func NewPostService(
	postStore store.PostStore,
	policy *OwnerPolicy,
	txRunner store.TxRunner,
	logger *slog.Logger,
) PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &postServiceImpl{
		postStore: postStore,
		policy:    policy,
		txRunner:  txRunner,
		logger:    logger.With(slog.String("component", "post_service")),
	}
}

// List implements PostService.List.
func (s *postServiceImpl) List(ctx context.Context) ([]*PostInfo, error) {
	rows, err := s.postStore.ListWithAuthors(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return nil, err
	}

	infos := make([]*PostInfo, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, projectPost(row))
	}
	return infos, nil
}

// Get implements PostService.Get.
func (s *postServiceImpl) Get(ctx context.Context, id int64) (*PostInfo, error) {
	row, err := s.postStore.GetWithAuthor(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrPostNotFound) {
			s.logger.Error("failed to get post", "error", err, "post_id", id)
		}
		return nil, err
	}
	return projectPost(row), nil
}

// Create implements PostService.Create.
func (s *postServiceImpl) Create(ctx context.Context, principal *domain.User, content string) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}

	post, err := domain.NewPost(principal.ID, content)
	if err != nil {
		return err
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post", "error", err, "author_id", principal.ID)
		return err
	}

	s.logger.Info("post created", "post_id", post.ID, "author_id", principal.ID)
	return nil
}

// Update implements PostService.Update. The fetch, ownership check and
// write run in one transaction so the post cannot vanish between the
// existence check and the mutation.
func (s *postServiceImpl) Update(ctx context.Context, principal *domain.User, id int64, content string) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}

	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.postStore.WithTx(tx)

		post, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.policy.Authorize(principal, post.AuthorID); err != nil {
			return err
		}

		if err := post.UpdateContent(content); err != nil {
			return err
		}

		return txStore.Update(ctx, post)
	})
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) || errors.Is(err, ErrNotPostOwner) ||
			errors.Is(err, domain.ErrEmptyContent) {
			s.logger.Debug("post update rejected",
				"error", err, "post_id", id, "user_id", principal.ID)
		} else {
			s.logger.Error("failed to update post", "error", err, "post_id", id)
		}
		return err
	}

	s.logger.Info("post updated", "post_id", id, "user_id", principal.ID)
	return nil
}

// Delete implements PostService.Delete.
func (s *postServiceImpl) Delete(ctx context.Context, principal *domain.User, id int64) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}

	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.postStore.WithTx(tx)

		post, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.policy.Authorize(principal, post.AuthorID); err != nil {
			return err
		}

		return txStore.Delete(ctx, post.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) || errors.Is(err, ErrNotPostOwner) {
			s.logger.Debug("post delete rejected",
				"error", err, "post_id", id, "user_id", principal.ID)
		} else {
			s.logger.Error("failed to delete post", "error", err, "post_id", id)
		}
		return err
	}

	s.logger.Info("post deleted", "post_id", id, "user_id", principal.ID)
	return nil
}

func projectPost(row *store.PostWithAuthor) *PostInfo {
	return &PostInfo{
		ID:        row.Post.ID,
		Content:   row.Post.Content,
		CreatedAt: row.Post.CreatedAt,
		UpdatedAt: row.Post.UpdatedAt,
		Author:    row.AuthorName,
	}
}

// Package mocks provides in-memory store implementations for tests, so the
// services and handlers can be exercised without a real database.
package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/store"
)

// MemoryStores holds the shared state behind the in-memory user and post
// stores. Posts and users share state so the author join and the
// restrict-on-delete policy behave like the real schema.
type MemoryStores struct {
	mu         sync.Mutex
	users      map[int64]*domain.User
	posts      map[int64]*domain.Post
	nextUserID int64
	nextPostID int64
}

// NewMemoryStores creates the shared state and returns the two store views.
func NewMemoryStores() (*MemoryUserStore, *MemoryPostStore) {
	s := &MemoryStores{
		users:      make(map[int64]*domain.User),
		posts:      make(map[int64]*domain.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
	return &MemoryUserStore{state: s}, &MemoryPostStore{state: s}
}

// MemoryUserStore is an in-memory store.UserStore.
type MemoryUserStore struct {
	state *MemoryStores
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// WithTx implements store.UserStore.WithTx. The in-memory store has no
// transactions; it returns itself.
func (s *MemoryUserStore) WithTx(_ *sql.Tx) store.UserStore { return s }

// Create implements store.UserStore.Create.
func (s *MemoryUserStore) Create(_ context.Context, user *domain.User) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, existing := range s.state.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.ID = s.state.nextUserID
	s.state.nextUserID++

	saved := *user
	s.state.users[user.ID] = &saved
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *MemoryUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	user, ok := s.state.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, user := range s.state.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ExistsByEmail implements store.UserStore.ExistsByEmail.
func (s *MemoryUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, user := range s.state.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Delete implements store.UserStore.Delete, honoring the restrict policy:
// a user with posts cannot be deleted.
func (s *MemoryUserStore) Delete(_ context.Context, id int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.users[id]; !ok {
		return store.ErrUserNotFound
	}
	for _, post := range s.state.posts {
		if post.AuthorID == id {
			return store.ErrUserHasPosts
		}
	}
	delete(s.state.users, id)
	return nil
}

// MemoryPostStore is an in-memory store.PostStore.
type MemoryPostStore struct {
	state *MemoryStores
}

var _ store.PostStore = (*MemoryPostStore)(nil)

// WithTx implements store.PostStore.WithTx.
func (s *MemoryPostStore) WithTx(_ *sql.Tx) store.PostStore { return s }

// Create implements store.PostStore.Create.
func (s *MemoryPostStore) Create(_ context.Context, post *domain.Post) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.users[post.AuthorID]; !ok {
		return store.ErrInvalidEntity
	}

	post.ID = s.state.nextPostID
	s.state.nextPostID++

	saved := *post
	s.state.posts[post.ID] = &saved
	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *MemoryPostStore) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post, ok := s.state.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

// GetWithAuthor implements store.PostStore.GetWithAuthor.
func (s *MemoryPostStore) GetWithAuthor(_ context.Context, id int64) (*store.PostWithAuthor, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post, ok := s.state.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return s.joinAuthorLocked(post), nil
}

// ListWithAuthors implements store.PostStore.ListWithAuthors, ordered by ID.
func (s *MemoryPostStore) ListWithAuthors(_ context.Context) ([]*store.PostWithAuthor, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	result := make([]*store.PostWithAuthor, 0, len(s.state.posts))
	for id := int64(1); id < s.state.nextPostID; id++ {
		if post, ok := s.state.posts[id]; ok {
			result = append(result, s.joinAuthorLocked(post))
		}
	}
	return result, nil
}

// Update implements store.PostStore.Update.
func (s *MemoryPostStore) Update(_ context.Context, post *domain.Post) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	existing, ok := s.state.posts[post.ID]
	if !ok {
		return store.ErrPostNotFound
	}
	existing.Content = post.Content
	existing.UpdatedAt = post.UpdatedAt
	return nil
}

// Delete implements store.PostStore.Delete.
func (s *MemoryPostStore) Delete(_ context.Context, id int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(s.state.posts, id)
	return nil
}

func (s *MemoryPostStore) joinAuthorLocked(post *domain.Post) *store.PostWithAuthor {
	copied := *post
	row := &store.PostWithAuthor{Post: copied}
	if author, ok := s.state.users[post.AuthorID]; ok {
		row.AuthorName = author.Name
	}
	return row
}

// PassthroughTxRunner is a store.TxRunner that runs the function directly
// with a nil transaction. The in-memory stores ignore WithTx, so this is
// sufficient for tests.
type PassthroughTxRunner struct{}

var _ store.TxRunner = (*PassthroughTxRunner)(nil)

// RunInTransaction implements store.TxRunner.
func (PassthroughTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

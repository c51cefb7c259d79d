package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/mocks"
	"github.com/arundaon/blog-api/internal/service"
	"github.com/arundaon/blog-api/internal/store"
)

type postServiceFixture struct {
	svc       service.PostService
	postStore *mocks.MemoryPostStore
	alice     *domain.User
	bob       *domain.User
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()

	userStore, postStore := mocks.NewMemoryStores()
	ctx := context.Background()

	alice := &domain.User{Name: "alice", Email: "alice@example.com", HashedPassword: "$2a$10$abc"}
	require.NoError(t, userStore.Create(ctx, alice))
	bob := &domain.User{Name: "bob", Email: "bob@example.com", HashedPassword: "$2a$10$abc"}
	require.NoError(t, userStore.Create(ctx, bob))

	svc := service.NewPostService(postStore, service.NewOwnerPolicy(), mocks.PassthroughTxRunner{}, nil)
	return &postServiceFixture{svc: svc, postStore: postStore, alice: alice, bob: bob}
}

// createPost creates a post for the given user and returns its projection.
func (f *postServiceFixture) createPost(t *testing.T, author *domain.User, content string) *service.PostInfo {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, f.svc.Create(ctx, author, content))

	posts, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	return posts[len(posts)-1]
}

func TestPostService_CreateAndGet(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	created := f.createPost(t, f.alice, "hello world")
	assert.Equal(t, "hello world", created.Content)
	assert.Equal(t, "alice", created.Author)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt,
		"a fresh post has identical created and updated timestamps")

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestPostService_CreateBlankContent(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\n\t"} {
		err := f.svc.Create(ctx, f.alice, content)
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
	}

	posts, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_GetMissing(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)

	_, err := f.svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_ListOrdered(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Create(ctx, f.alice, "first"))
	require.NoError(t, f.svc.Create(ctx, f.bob, "second"))
	require.NoError(t, f.svc.Create(ctx, f.alice, "third"))

	posts, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "first", posts[0].Content)
	assert.Equal(t, "second", posts[1].Content)
	assert.Equal(t, "third", posts[2].Content)
	assert.Equal(t, "bob", posts[1].Author)
}

func TestPostService_Update(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	created := f.createPost(t, f.alice, "draft")

	time.Sleep(time.Millisecond)
	require.NoError(t, f.svc.Update(ctx, f.alice, created.ID, "final"))

	updated, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "creation time never changes")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt),
		"update moves the updated timestamp forward")
}

func TestPostService_UpdateNotOwner(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	created := f.createPost(t, f.alice, "alice's post")

	err := f.svc.Update(ctx, f.bob, created.ID, "bob was here")
	assert.ErrorIs(t, err, service.ErrNotPostOwner)

	// The post is unchanged after the rejected update.
	got, getErr := f.svc.Get(ctx, created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, created, got)
}

func TestPostService_UpdateMissingPost(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)

	// Existence is checked before ownership: a missing post is not-found
	// for everyone, owner or not.
	err := f.svc.Update(context.Background(), f.bob, 999, "content")
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.NotErrorIs(t, err, service.ErrNotPostOwner)
}

func TestPostService_UpdateBlankContent(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	created := f.createPost(t, f.alice, "original")

	err := f.svc.Update(ctx, f.alice, created.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	got, getErr := f.svc.Get(ctx, created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "original", got.Content)
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	created := f.createPost(t, f.alice, "ephemeral")

	require.NoError(t, f.svc.Delete(ctx, f.alice, created.ID))

	_, err := f.svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_DeleteNotOwner(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	created := f.createPost(t, f.alice, "alice's post")

	err := f.svc.Delete(ctx, f.bob, created.ID)
	assert.ErrorIs(t, err, service.ErrNotPostOwner)

	_, getErr := f.svc.Get(ctx, created.ID)
	assert.NoError(t, getErr, "a rejected delete leaves the post in place")
}

func TestPostService_DeleteMissingPost(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)

	err := f.svc.Delete(context.Background(), f.bob, 999)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.NotErrorIs(t, err, service.ErrNotPostOwner)
}

func TestPostService_NilPrincipal(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Create(ctx, nil, "content"), domain.ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Update(ctx, nil, 1, "content"), domain.ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Delete(ctx, nil, 1), domain.ErrUnauthorized)
}

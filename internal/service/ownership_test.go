package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arundaon/blog-api/internal/domain"
)

func TestOwnerPolicy(t *testing.T) {
	t.Parallel()

	policy := NewOwnerPolicy()
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}

	assert.NoError(t, policy.Authorize(owner, 1))
	assert.ErrorIs(t, policy.Authorize(other, 1), ErrNotPostOwner)
	assert.ErrorIs(t, policy.Authorize(nil, 1), ErrNotPostOwner)
}

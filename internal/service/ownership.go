package service

import "github.com/arundaon/blog-api/internal/domain"

// OwnerPolicy decides whether a principal may mutate a post. It applies to
// update and delete only; create assigns authorship from the principal by
// construction, and reads require no principal.
type OwnerPolicy struct{}

// NewOwnerPolicy creates an OwnerPolicy.
func NewOwnerPolicy() *OwnerPolicy {
	return &OwnerPolicy{}
}

// Authorize allows the operation iff the principal is the post's author.
// Returns ErrNotPostOwner otherwise.
func (p *OwnerPolicy) Authorize(principal *domain.User, authorID int64) error {
	if principal == nil || principal.ID != authorID {
		return ErrNotPostOwner
	}
	return nil
}

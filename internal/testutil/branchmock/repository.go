package branchmock

import (
	domain "bankbase/internal/domain/branch"
	"context"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, branchID uint64) (*domain.Branch, error)
}

func (m *Repo) GetByID(ctx context.Context, branchID uint64) (*domain.Branch, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, branchID)
	}
	return nil, context.Canceled
}

package employeemock

import (
	domain "bankbase/internal/domain/employee"
	"context"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, employeeID uint64) (*domain.Employee, error)
}

func (m *Repo) GetByID(ctx context.Context, employeeID uint64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, employeeID)
	}
	return nil, context.Canceled
}

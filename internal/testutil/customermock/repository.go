package customermock

import (
	domain "bankbase/internal/domain/customer"
	"context"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; nil write funcs are no-ops, nil read funcs
// return context.Canceled.
type Repo struct {
	CreateFn             func(ctx context.Context, c *domain.Customer) error
	GetByIDFn            func(ctx context.Context, customerID uint64) (*domain.Customer, error)
	GetByMobileFn        func(ctx context.Context, mobile string) (*domain.Customer, error)
	SearchFn             func(ctx context.Context, q string) ([]domain.Customer, error)
	ListRecentByBranchFn func(ctx context.Context, branchID uint64, limit int) ([]domain.Customer, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByMobile(ctx context.Context, mobile string) (*domain.Customer, error) {
	if m.GetByMobileFn != nil {
		return m.GetByMobileFn(ctx, mobile)
	}
	return nil, context.Canceled
}

func (m *Repo) Search(ctx context.Context, q string) ([]domain.Customer, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, q)
	}
	return nil, context.Canceled
}

func (m *Repo) ListRecentByBranch(ctx context.Context, branchID uint64, limit int) ([]domain.Customer, error) {
	if m.ListRecentByBranchFn != nil {
		return m.ListRecentByBranchFn(ctx, branchID, limit)
	}
	return nil, context.Canceled
}

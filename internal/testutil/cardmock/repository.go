package cardmock

import (
	domain "bankbase/internal/domain/card"
	"context"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; nil write funcs are no-ops, nil read funcs
// return context.Canceled.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Card) error
	ListByAccountFn   func(ctx context.Context, accountID uint64) ([]domain.Card, error)
	ListByCustomerFn  func(ctx context.Context, customerID uint64) ([]domain.Card, error)
	ListByBranchFn    func(ctx context.Context, branchID uint64) ([]domain.Card, error)
	CountByCustomerFn func(ctx context.Context, customerID uint64) (int64, error)
	CountByBranchFn   func(ctx context.Context, branchID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListByAccount(ctx context.Context, accountID uint64) ([]domain.Card, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Card, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBranch(ctx context.Context, branchID uint64) ([]domain.Card, error) {
	if m.ListByBranchFn != nil {
		return m.ListByBranchFn(ctx, branchID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByCustomer(ctx context.Context, customerID uint64) (int64, error) {
	if m.CountByCustomerFn != nil {
		return m.CountByCustomerFn(ctx, customerID)
	}
	return 0, context.Canceled
}

func (m *Repo) CountByBranch(ctx context.Context, branchID uint64) (int64, error) {
	if m.CountByBranchFn != nil {
		return m.CountByBranchFn(ctx, branchID)
	}
	return 0, context.Canceled
}

package accountmock

import (
	domain "bankbase/internal/domain/account"
	"context"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; nil write funcs are no-ops, nil read funcs
// return context.Canceled.
type Repo struct {
	CreateFn           func(ctx context.Context, a *domain.Account) error
	GetByIDFn          func(ctx context.Context, accountID uint64) (*domain.Account, error)
	GetByIDForUpdateFn func(ctx context.Context, accountID uint64) (*domain.Account, error)
	GetBalanceFn       func(ctx context.Context, accountID uint64) (decimal.Decimal, error)
	UpdateBalanceFn    func(ctx context.Context, accountID uint64, balance decimal.Decimal) error
	ListByCustomerFn   func(ctx context.Context, customerID uint64) ([]domain.Account, error)
	CountByCustomerFn  func(ctx context.Context, customerID uint64) (int64, error)
	BranchTotalsFn     func(ctx context.Context, branchID uint64) (*domain.BranchTotals, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, accountID uint64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, accountID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, accountID uint64) (*domain.Account, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, accountID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error) {
	if m.GetBalanceFn != nil {
		return m.GetBalanceFn(ctx, accountID)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) UpdateBalance(ctx context.Context, accountID uint64, balance decimal.Decimal) error {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, accountID, balance)
	}
	return nil
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Account, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByCustomer(ctx context.Context, customerID uint64) (int64, error) {
	if m.CountByCustomerFn != nil {
		return m.CountByCustomerFn(ctx, customerID)
	}
	return 0, context.Canceled
}

func (m *Repo) BranchTotals(ctx context.Context, branchID uint64) (*domain.BranchTotals, error) {
	if m.BranchTotalsFn != nil {
		return m.BranchTotalsFn(ctx, branchID)
	}
	return nil, context.Canceled
}

package transactionmock

import (
	domain "bankbase/internal/domain/transaction"
	"context"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, tx *domain.Transaction) error
	ListByAccountFn        func(ctx context.Context, accountID uint64, f domain.HistoryFilter) ([]domain.Transaction, error)
	ListForStatementFn     func(ctx context.Context, accountID uint64, f domain.StatementFilter) ([]domain.Transaction, error)
	ListRecentByCustomerFn func(ctx context.Context, customerID uint64, limit int) ([]domain.AccountTx, error)
	ListByBranchFn         func(ctx context.Context, branchID uint64, f domain.BranchFilter) ([]domain.AccountTx, error)
}

func (m *Repo) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tx)
	}
	return nil
}

func (m *Repo) ListByAccount(ctx context.Context, accountID uint64, f domain.HistoryFilter) ([]domain.Transaction, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID, f)
	}
	return nil, context.Canceled
}

func (m *Repo) ListForStatement(ctx context.Context, accountID uint64, f domain.StatementFilter) ([]domain.Transaction, error) {
	if m.ListForStatementFn != nil {
		return m.ListForStatementFn(ctx, accountID, f)
	}
	return nil, context.Canceled
}

func (m *Repo) ListRecentByCustomer(ctx context.Context, customerID uint64, limit int) ([]domain.AccountTx, error) {
	if m.ListRecentByCustomerFn != nil {
		return m.ListRecentByCustomerFn(ctx, customerID, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBranch(ctx context.Context, branchID uint64, f domain.BranchFilter) ([]domain.AccountTx, error) {
	if m.ListByBranchFn != nil {
		return m.ListByBranchFn(ctx, branchID, f)
	}
	return nil, context.Canceled
}

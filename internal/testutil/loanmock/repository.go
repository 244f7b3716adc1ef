package loanmock

import (
	domain "bankbase/internal/domain/loan"
	"context"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; nil write funcs are no-ops, nil read funcs
// return context.Canceled.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	GetByIDFn                func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	GetByIDForUpdateFn       func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	SaveFn                   func(ctx context.Context, l *domain.Loan) error
	RejectPendingFn          func(ctx context.Context, loanID, employeeID uint64) (int64, error)
	ListByCustomerFn         func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	CountOpenByCustomerFn    func(ctx context.Context, customerID uint64) (int64, error)
	ListByBranchFn           func(ctx context.Context, branchID uint64, status domain.Status) ([]domain.Loan, error)
	BranchStatusCountsFn     func(ctx context.Context, branchID uint64) (int64, int64, error)
	EmployeeDecisionCountsFn func(ctx context.Context, employeeID uint64) (int64, int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) RejectPending(ctx context.Context, loanID, employeeID uint64) (int64, error) {
	if m.RejectPendingFn != nil {
		return m.RejectPendingFn(ctx, loanID, employeeID)
	}
	return 0, context.Canceled
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountOpenByCustomer(ctx context.Context, customerID uint64) (int64, error) {
	if m.CountOpenByCustomerFn != nil {
		return m.CountOpenByCustomerFn(ctx, customerID)
	}
	return 0, context.Canceled
}

func (m *Repo) ListByBranch(ctx context.Context, branchID uint64, status domain.Status) ([]domain.Loan, error) {
	if m.ListByBranchFn != nil {
		return m.ListByBranchFn(ctx, branchID, status)
	}
	return nil, context.Canceled
}

func (m *Repo) BranchStatusCounts(ctx context.Context, branchID uint64) (int64, int64, error) {
	if m.BranchStatusCountsFn != nil {
		return m.BranchStatusCountsFn(ctx, branchID)
	}
	return 0, 0, context.Canceled
}

func (m *Repo) EmployeeDecisionCounts(ctx context.Context, employeeID uint64) (int64, int64, error) {
	if m.EmployeeDecisionCountsFn != nil {
		return m.EmployeeDecisionCountsFn(ctx, employeeID)
	}
	return 0, 0, context.Canceled
}

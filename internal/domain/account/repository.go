package account

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, accountID uint64) (*Account, error)
	// GetByIDForUpdate takes an exclusive row lock. Only valid inside a
	// transaction; callers locking several accounts must lock in ascending id
	// order.
	GetByIDForUpdate(ctx context.Context, accountID uint64) (*Account, error)
	GetBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, accountID uint64, balance decimal.Decimal) error
	ListByCustomer(ctx context.Context, customerID uint64) ([]Account, error)
	CountByCustomer(ctx context.Context, customerID uint64) (int64, error)
	BranchTotals(ctx context.Context, branchID uint64) (*BranchTotals, error)
}

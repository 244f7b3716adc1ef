package card

import "context"

type Repository interface {
	Create(ctx context.Context, c *Card) error
	ListByAccount(ctx context.Context, accountID uint64) ([]Card, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]Card, error)
	ListByBranch(ctx context.Context, branchID uint64) ([]Card, error)
	CountByCustomer(ctx context.Context, customerID uint64) (int64, error)
	CountByBranch(ctx context.Context, branchID uint64) (int64, error)
}

package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, customerID uint64) (*Customer, error)
	GetByMobile(ctx context.Context, mobile string) (*Customer, error)
	// Search matches q against names, email and mobile, case-insensitively.
	Search(ctx context.Context, q string) ([]Customer, error)
	// ListRecentByBranch returns customers who opened an account at the
	// branch, newest first.
	ListRecentByBranch(ctx context.Context, branchID uint64, limit int) ([]Customer, error)
}

package branch

import "context"

type Repository interface {
	GetByID(ctx context.Context, branchID uint64) (*Branch, error)
}

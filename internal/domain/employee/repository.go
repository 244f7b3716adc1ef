package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, employeeID uint64) (*Employee, error)
}

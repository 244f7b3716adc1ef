package mysql

import (
	custDomain "bankbase/internal/domain/customer"
	"context"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *custDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID uint64) (*custDomain.Customer, error) {
	var out custDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByMobile(ctx context.Context, mobile string) (*custDomain.Customer, error) {
	var out custDomain.Customer
	res := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) Search(ctx context.Context, q string) ([]custDomain.Customer, error) {
	pattern := "%" + q + "%"
	var out []custDomain.Customer
	res := r.db.WithContext(ctx).
		Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR mobile LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("customer_id").
		Limit(50).
		Find(&out)
	return out, res.Error
}

func (r *CustomerRepository) ListRecentByBranch(ctx context.Context, branchID uint64, limit int) ([]custDomain.Customer, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []custDomain.Customer
	res := r.db.WithContext(ctx).
		Distinct("customers.*").
		Joins("JOIN accounts ON accounts.customer_id = customers.customer_id").
		Where("accounts.branch_id = ?", branchID).
		Order("customers.customer_id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

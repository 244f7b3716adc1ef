package mysql

import (
	acctDomain "bankbase/internal/domain/account"
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *acctDomain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uint64) (*acctDomain.Account, error) {
	var out acctDomain.Account
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, accountID uint64) (*acctDomain.Account, error) {
	var out acctDomain.Account
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", accountID).
		First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error) {
	var out acctDomain.Account
	res := r.db.WithContext(ctx).
		Select("balance").
		Where("account_id = ?", accountID).
		First(&out)
	return out.Balance, res.Error
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountID uint64, balance decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&acctDomain.Account{}).
		Where("account_id = ?", accountID).
		Update("balance", balance).Error
}

func (r *AccountRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]acctDomain.Account, error) {
	var out []acctDomain.Account
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("account_id").
		Find(&out)
	return out, res.Error
}

func (r *AccountRepository) CountByCustomer(ctx context.Context, customerID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&acctDomain.Account{}).
		Where("customer_id = ?", customerID).
		Count(&n)
	return n, res.Error
}

func (r *AccountRepository) BranchTotals(ctx context.Context, branchID uint64) (*acctDomain.BranchTotals, error) {
	var out acctDomain.BranchTotals
	res := r.db.WithContext(ctx).
		Model(&acctDomain.Account{}).
		Select("COUNT(*) AS total_accounts, COUNT(DISTINCT customer_id) AS total_customers, COALESCE(SUM(balance), 0) AS total_balance").
		Where("branch_id = ?", branchID).
		Scan(&out)
	return &out, res.Error
}

package mysql

import (
	txDomain "bankbase/internal/domain/transaction"
	"context"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64, f txDomain.HistoryFilter) ([]txDomain.Transaction, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if f.FromDate != nil {
		q = q.Where("created_at >= ?", *f.FromDate)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []txDomain.Transaction
	res := q.Order("created_at DESC, tx_id DESC").Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListForStatement(ctx context.Context, accountID uint64, f txDomain.StatementFilter) ([]txDomain.Transaction, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if f.Start != nil {
		q = q.Where("created_at >= ?", *f.Start)
	}
	if f.End != nil {
		// exclusive upper bound; callers pass day+1 for an inclusive end date
		q = q.Where("created_at < ?", *f.End)
	}
	var out []txDomain.Transaction
	res := q.Order("created_at ASC, tx_id ASC").Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListRecentByCustomer(ctx context.Context, customerID uint64, limit int) ([]txDomain.AccountTx, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []txDomain.AccountTx
	res := r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.*, accounts.account_number").
		Joins("JOIN accounts ON accounts.account_id = transactions.account_id").
		Where("accounts.customer_id = ?", customerID).
		Order("transactions.created_at DESC, transactions.tx_id DESC").
		Limit(limit).
		Scan(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByBranch(ctx context.Context, branchID uint64, f txDomain.BranchFilter) ([]txDomain.AccountTx, error) {
	q := r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.*, accounts.account_number").
		Joins("JOIN accounts ON accounts.account_id = transactions.account_id").
		Where("accounts.branch_id = ?", branchID)
	if f.AccountID != 0 {
		q = q.Where("transactions.account_id = ?", f.AccountID)
	}
	if f.Type != "" {
		q = q.Where("transactions.tx_type = ?", f.Type)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	var out []txDomain.AccountTx
	res := q.Order("transactions.created_at DESC, transactions.tx_id DESC").
		Limit(limit).
		Scan(&out)
	return out, res.Error
}

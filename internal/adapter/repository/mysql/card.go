package mysql

import (
	cardDomain "bankbase/internal/domain/card"
	"context"

	"gorm.io/gorm"
)

type CardRepository struct{ db *gorm.DB }

func NewCardRepository(db *gorm.DB) *CardRepository { return &CardRepository{db: db} }

func (r *CardRepository) Create(ctx context.Context, c *cardDomain.Card) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CardRepository) ListByAccount(ctx context.Context, accountID uint64) ([]cardDomain.Card, error) {
	var out []cardDomain.Card
	res := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("card_id").
		Find(&out)
	return out, res.Error
}

func (r *CardRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]cardDomain.Card, error) {
	var out []cardDomain.Card
	res := r.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.account_id = cards.account_id").
		Where("accounts.customer_id = ?", customerID).
		Order("cards.card_id").
		Find(&out)
	return out, res.Error
}

func (r *CardRepository) ListByBranch(ctx context.Context, branchID uint64) ([]cardDomain.Card, error) {
	var out []cardDomain.Card
	res := r.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.account_id = cards.account_id").
		Where("accounts.branch_id = ?", branchID).
		Order("cards.card_id").
		Find(&out)
	return out, res.Error
}

func (r *CardRepository) CountByCustomer(ctx context.Context, customerID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&cardDomain.Card{}).
		Joins("JOIN accounts ON accounts.account_id = cards.account_id").
		Where("accounts.customer_id = ?", customerID).
		Count(&n)
	return n, res.Error
}

func (r *CardRepository) CountByBranch(ctx context.Context, branchID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&cardDomain.Card{}).
		Joins("JOIN accounts ON accounts.account_id = cards.account_id").
		Where("accounts.branch_id = ?", branchID).
		Count(&n)
	return n, res.Error
}

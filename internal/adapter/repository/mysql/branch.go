package mysql

import (
	branchDomain "bankbase/internal/domain/branch"
	"context"

	"gorm.io/gorm"
)

type BranchRepository struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) *BranchRepository { return &BranchRepository{db: db} }

func (r *BranchRepository) GetByID(ctx context.Context, branchID uint64) (*branchDomain.Branch, error) {
	var out branchDomain.Branch
	res := r.db.WithContext(ctx).Where("branch_id = ?", branchID).First(&out)
	return &out, res.Error
}

package mysql

import (
	loanDomain "bankbase/internal/domain/loan"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) RejectPending(ctx context.Context, loanID, employeeID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusPending).
		Updates(map[string]any{
			"status":      loanDomain.StatusRejected,
			"employee_id": employeeID,
		})
	return res.RowsAffected, res.Error
}

func (r *LoanRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, loan_id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountOpenByCustomer(ctx context.Context, customerID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("customer_id = ? AND status IN ?", customerID,
			[]loanDomain.Status{loanDomain.StatusPending, loanDomain.StatusApproved, loanDomain.StatusActive}).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) ListByBranch(ctx context.Context, branchID uint64, status loanDomain.Status) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Where("branch_id = ?", branchID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	// the pending view is the approval queue, served oldest first
	order := "created_at DESC, loan_id DESC"
	if status == loanDomain.StatusPending {
		order = "created_at ASC, loan_id ASC"
	}
	var out []loanDomain.Loan
	res := q.Order(order).Find(&out)
	return out, res.Error
}

func (r *LoanRepository) BranchStatusCounts(ctx context.Context, branchID uint64) (int64, int64, error) {
	var active, pending int64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("branch_id = ? AND status IN ?", branchID,
			[]loanDomain.Status{loanDomain.StatusApproved, loanDomain.StatusActive}).
		Count(&active).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("branch_id = ? AND status = ?", branchID, loanDomain.StatusPending).
		Count(&pending).Error
	if err != nil {
		return 0, 0, err
	}
	return active, pending, nil
}

func (r *LoanRepository) EmployeeDecisionCounts(ctx context.Context, employeeID uint64) (int64, int64, error) {
	var approved, rejected int64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("employee_id = ? AND status IN ?", employeeID,
			[]loanDomain.Status{loanDomain.StatusApproved, loanDomain.StatusActive}).
		Count(&approved).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("employee_id = ? AND status = ?", employeeID, loanDomain.StatusRejected).
		Count(&rejected).Error
	if err != nil {
		return 0, 0, err
	}
	return approved, rejected, nil
}

package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, loanID uint64) (*Loan, error)
	// GetByIDForUpdate takes an exclusive row lock. Disbursement locks the
	// loan before touching its linked account.
	GetByIDForUpdate(ctx context.Context, loanID uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// RejectPending flips a PENDING loan to REJECTED recording the deciding
	// employee, and reports how many rows changed (0 when the loan is missing
	// or already decided).
	RejectPending(ctx context.Context, loanID, employeeID uint64) (int64, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]Loan, error)
	CountOpenByCustomer(ctx context.Context, customerID uint64) (int64, error)
	ListByBranch(ctx context.Context, branchID uint64, status Status) ([]Loan, error)
	// BranchStatusCounts returns how many of the branch's loans are active
	// (ACTIVE or APPROVED) and how many await a decision.
	BranchStatusCounts(ctx context.Context, branchID uint64) (active, pending int64, err error)
	// EmployeeDecisionCounts returns how many loans the employee approved and
	// rejected.
	EmployeeDecisionCounts(ctx context.Context, employeeID uint64) (approved, rejected int64, err error)
}

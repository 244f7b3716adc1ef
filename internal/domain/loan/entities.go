package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("loan not found")
	ErrNotPending     = errors.New("loan is not pending")
	ErrInvalidAccount = errors.New("invalid account selected")
	ErrInvalidTerms   = errors.New("principal and tenure must be positive")
)

type Status string

// A loan starts PENDING and moves exactly once: disbursement flips it to
// ACTIVE, rejection to REJECTED. APPROVED exists for rows decided before
// disbursement became part of approval and is treated as active by reports.
const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"
)

type Loan struct {
	ID                 uint64          `gorm:"primaryKey;column:loan_id" json:"loan_id"`
	LoanNumber         string          `gorm:"column:loan_number;size:16;uniqueIndex" json:"loan_number"`
	CustomerID         uint64          `gorm:"column:customer_id;index" json:"customer_id"`
	BranchID           uint64          `gorm:"column:branch_id;index" json:"branch_id"`
	LinkedAccountID    uint64          `gorm:"column:linked_account_id;index" json:"linked_account_id"`
	LoanType           string          `gorm:"column:loan_type;size:32" json:"loan_type"`
	PrincipalAmount    decimal.Decimal `gorm:"column:principal_amount;type:decimal(18,2);not null" json:"principal_amount"`
	InterestRate       float64         `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	TenureMonths       int             `gorm:"column:tenure_months" json:"tenure_months"`
	EMIAmount          decimal.Decimal `gorm:"column:emi_amount;type:decimal(18,2)" json:"emi_amount"`
	OutstandingBalance decimal.Decimal `gorm:"column:outstanding_balance;type:decimal(18,2)" json:"outstanding_balance"`
	Status             Status          `gorm:"column:status;size:16;index" json:"status"`
	EmployeeID         *uint64         `gorm:"column:employee_id;index" json:"employee_id,omitempty"`
	DisbursementDate   *time.Time      `gorm:"column:disbursement_date" json:"disbursement_date,omitempty"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Loan) TableName() string { return "loans" }

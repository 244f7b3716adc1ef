package report

import (
	"context"
	"errors"

	acctDomain "bankbase/internal/domain/account"
	branchDomain "bankbase/internal/domain/branch"
	cardDomain "bankbase/internal/domain/card"
	custDomain "bankbase/internal/domain/customer"
	empDomain "bankbase/internal/domain/employee"
	loanDomain "bankbase/internal/domain/loan"
	txDomain "bankbase/internal/domain/transaction"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recentCustomersLimit caps the employee dashboard's new-customers strip.
const recentCustomersLimit = 5

type Usecase struct {
	branches     branchDomain.Repository
	employees    empDomain.Repository
	accounts     acctDomain.Repository
	loans        loanDomain.Repository
	cards        cardDomain.Repository
	customers    custDomain.Repository
	transactions txDomain.Repository
}

func NewUsecase(
	branches branchDomain.Repository,
	employees empDomain.Repository,
	accounts acctDomain.Repository,
	loans loanDomain.Repository,
	cards cardDomain.Repository,
	customers custDomain.Repository,
	transactions txDomain.Repository,
) *Usecase {
	return &Usecase{
		branches:     branches,
		employees:    employees,
		accounts:     accounts,
		loans:        loans,
		cards:        cards,
		customers:    customers,
		transactions: transactions,
	}
}

// BranchReport aggregates a branch's book: accounts, customers, balance sum,
// loan pipeline and issued cards.
type BranchReport struct {
	Branch         *branchDomain.Branch `json:"branch"`
	TotalAccounts  int64                `json:"total_accounts"`
	TotalCustomers int64                `json:"total_customers"`
	TotalBalance   decimal.Decimal      `json:"total_balance"`
	ActiveLoans    int64                `json:"active_loans"`
	PendingLoans   int64                `json:"pending_loans"`
	TotalCards     int64                `json:"total_cards"`
}

// LoanActions counts the decisions one employee has signed off on.
type LoanActions struct {
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// EmployeeSummary is the employee dashboard payload: their branch's report,
// their own decision tally and the branch's newest customers.
type EmployeeSummary struct {
	Totals          *BranchReport         `json:"totals"`
	LoanActions     LoanActions           `json:"my_loan_actions"`
	RecentCustomers []custDomain.Customer `json:"recent_customers"`
}

func (u *Usecase) GetBranchReport(ctx context.Context, branchID uint64) (*BranchReport, error) {
	b, err := u.branches.GetByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchDomain.ErrNotFound
		}
		return nil, err
	}

	totals, err := u.accounts.BranchTotals(ctx, branchID)
	if err != nil {
		return nil, err
	}
	active, pending, err := u.loans.BranchStatusCounts(ctx, branchID)
	if err != nil {
		return nil, err
	}
	cards, err := u.cards.CountByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return &BranchReport{
		Branch:         b,
		TotalAccounts:  totals.TotalAccounts,
		TotalCustomers: totals.TotalCustomers,
		TotalBalance:   totals.TotalBalance,
		ActiveLoans:    active,
		PendingLoans:   pending,
		TotalCards:     cards,
	}, nil
}

// GetEmployeeSummary builds the dashboard for the employee's own branch.
func (u *Usecase) GetEmployeeSummary(ctx context.Context, employeeID uint64) (*EmployeeSummary, error) {
	e, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, empDomain.ErrNotFound
		}
		return nil, err
	}

	totals, err := u.GetBranchReport(ctx, e.BranchID)
	if err != nil {
		return nil, err
	}
	approved, rejected, err := u.loans.EmployeeDecisionCounts(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	recent, err := u.customers.ListRecentByBranch(ctx, e.BranchID, recentCustomersLimit)
	if err != nil {
		return nil, err
	}

	return &EmployeeSummary{
		Totals:          totals,
		LoanActions:     LoanActions{Approved: approved, Rejected: rejected},
		RecentCustomers: recent,
	}, nil
}

// BranchTransactions lists a branch's rows newest first for the monitoring
// view, optionally narrowed to one account or one type.
func (u *Usecase) BranchTransactions(ctx context.Context, branchID uint64, f txDomain.BranchFilter) ([]txDomain.AccountTx, error) {
	return u.transactions.ListByBranch(ctx, branchID, f)
}

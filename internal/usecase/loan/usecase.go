package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	acctDomain "bankbase/internal/domain/account"
	loanDomain "bankbase/internal/domain/loan"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/domain/uow"
	"bankbase/internal/logger"
	"bankbase/internal/usecase/ledger"
	"bankbase/pkg/emi"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// rateByType fixes the annual interest rate per product. Unknown products
// fall back to defaultRate.
var rateByType = map[string]float64{
	"Personal":  12.0,
	"Home":      8.5,
	"Auto":      9.0,
	"Education": 9.0,
	"Business":  11.0,
}

const defaultRate = 10.0

type Usecase struct {
	loans    loanDomain.Repository
	accounts acctDomain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(loans loanDomain.Repository, accounts acctDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, accounts: accounts, uow: tx}
}

type RequestInput struct {
	CustomerID   uint64          `json:"customer_id"`
	AccountID    uint64          `json:"account_id"`
	LoanType     string          `json:"loan_type"`
	Principal    decimal.Decimal `json:"principal"`
	TenureMonths int             `json:"tenure_months"`
}

// Request files a PENDING loan against one of the customer's accounts. The
// EMI is fixed at request time from the product rate; nothing is disbursed
// until an employee approves.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*loanDomain.Loan, error) {
	if !in.Principal.IsPositive() || in.TenureMonths <= 0 {
		return nil, loanDomain.ErrInvalidTerms
	}

	acct, err := u.accounts.GetByID(ctx, in.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrInvalidAccount
		}
		return nil, err
	}
	if acct.CustomerID != in.CustomerID {
		return nil, loanDomain.ErrInvalidAccount
	}

	rate, ok := rateByType[in.LoanType]
	if !ok {
		rate = defaultRate
	}

	l := &loanDomain.Loan{
		CustomerID:         in.CustomerID,
		BranchID:           acct.BranchID,
		LinkedAccountID:    acct.ID,
		LoanType:           in.LoanType,
		PrincipalAmount:    in.Principal,
		InterestRate:       rate,
		TenureMonths:       in.TenureMonths,
		EMIAmount:          emi.Monthly(in.Principal, rate, in.TenureMonths),
		OutstandingBalance: in.Principal,
		Status:             loanDomain.StatusPending,
	}

	// the loan number derives from the auto-increment id, so both writes
	// happen in one unit
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		l.LoanNumber = fmt.Sprintf("LN%010d", l.ID)
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("loan_number", l.LoanNumber).
		Uint64("customer_id", l.CustomerID).
		Str("principal", l.PrincipalAmount.String()).
		Msg("loan requested")
	return l, nil
}

// Approve disburses a PENDING loan as one atomic unit: the loan row is locked
// first, then the linked account, the principal is credited with its ledger
// row, and the loan flips to ACTIVE. A vanished linked account aborts the
// whole unit with uow.ErrIntegrity.
func (u *Usecase) Approve(ctx context.Context, loanID, employeeID uint64) (*loanDomain.Loan, error) {
	var out *loanDomain.Loan

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if l.Status != loanDomain.StatusPending {
			return loanDomain.ErrNotPending
		}

		acct, err := r.Accounts.GetByIDForUpdate(ctx, l.LinkedAccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("loan %s account %d: %w: %w", l.LoanNumber, l.LinkedAccountID, uow.ErrIntegrity, acctDomain.ErrNotFound)
			}
			return err
		}

		if _, err := ledger.Apply(ctx, r, acct, txDomain.TypeCredit, l.PrincipalAmount, nil,
			fmt.Sprintf("Loan %s disbursement", l.LoanNumber)); err != nil {
			return err
		}

		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		l.Status = loanDomain.StatusActive
		l.EmployeeID = &employeeID
		l.DisbursementDate = &today
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("loan_number", out.LoanNumber).
		Uint64("employee_id", employeeID).
		Str("principal", out.PrincipalAmount.String()).
		Msg("loan approved and disbursed")
	return out, nil
}

// Reject flips a PENDING loan to REJECTED. It moves no money, so it runs as a
// single guarded update; a follow-up read distinguishes a missing loan from
// an already-decided one.
func (u *Usecase) Reject(ctx context.Context, loanID, employeeID uint64) error {
	n, err := u.loans.RejectPending(ctx, loanID, employeeID)
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := u.loans.GetByID(ctx, loanID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		return loanDomain.ErrNotPending
	}

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("loan_id", loanID).
		Uint64("employee_id", employeeID).
		Msg("loan rejected")
	return nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]loanDomain.Loan, error) {
	return u.loans.ListByCustomer(ctx, customerID)
}

func (u *Usecase) ListByBranch(ctx context.Context, branchID uint64, status loanDomain.Status) ([]loanDomain.Loan, error) {
	return u.loans.ListByBranch(ctx, branchID, status)
}

func (u *Usecase) PendingByBranch(ctx context.Context, branchID uint64) ([]loanDomain.Loan, error) {
	return u.loans.ListByBranch(ctx, branchID, loanDomain.StatusPending)
}

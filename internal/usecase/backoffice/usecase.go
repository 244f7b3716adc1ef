package backoffice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	acctDomain "bankbase/internal/domain/account"
	branchDomain "bankbase/internal/domain/branch"
	cardDomain "bankbase/internal/domain/card"
	custDomain "bankbase/internal/domain/customer"
	empDomain "bankbase/internal/domain/employee"
	loanDomain "bankbase/internal/domain/loan"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/domain/uow"
	"bankbase/internal/logger"
	"bankbase/internal/usecase/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// demoPassword stands in for real credential verification, which is out of
// scope here. Every employee authenticates with the same fixed string.
const demoPassword = "password"

const (
	defaultAccountType = "SAVINGS"
	defaultCurrency    = "INR"
)

type Usecase struct {
	employees empDomain.Repository
	customers custDomain.Repository
	accounts  acctDomain.Repository
	loans     loanDomain.Repository
	cards     cardDomain.Repository
	branches  branchDomain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(
	employees empDomain.Repository,
	customers custDomain.Repository,
	accounts acctDomain.Repository,
	loans loanDomain.Repository,
	cards cardDomain.Repository,
	branches branchDomain.Repository,
	unit uow.UnitOfWork,
) *Usecase {
	return &Usecase{
		employees: employees,
		customers: customers,
		accounts:  accounts,
		loans:     loans,
		cards:     cards,
		branches:  branches,
		uow:       unit,
	}
}

// CustomerDetail is the employee-facing view of one customer across every
// aggregate.
type CustomerDetail struct {
	Customer *custDomain.Customer `json:"customer"`
	Accounts []acctDomain.Account `json:"accounts"`
	Loans    []loanDomain.Loan    `json:"loans"`
	Cards    []cardDomain.Card    `json:"cards"`
}

type CreateCustomerInput struct {
	FirstName string     `json:"first_name" validate:"required,max=64"`
	LastName  string     `json:"last_name" validate:"max=64"`
	DOB       *time.Time `json:"dob"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Mobile    string     `json:"mobile" validate:"required,min=8,max=16"`
	Address   string     `json:"address"`
}

type OpenAccountInput struct {
	CustomerID     uint64          `json:"customer_id" validate:"required"`
	BranchID       uint64          `json:"branch_id" validate:"required"`
	AccountType    string          `json:"account_type"`
	Currency       string          `json:"currency" validate:"omitempty,len=3"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// VerifyLogin authenticates an employee by the numeric id from the login
// form. A malformed id, an unknown id and a wrong password all map to
// ErrInvalidCredentials.
func (u *Usecase) VerifyLogin(ctx context.Context, employeeID, password string) (*empDomain.Employee, error) {
	id, err := strconv.ParseUint(employeeID, 10, 64)
	if err != nil {
		return nil, empDomain.ErrInvalidCredentials
	}

	e, err := u.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, empDomain.ErrInvalidCredentials
		}
		return nil, err
	}
	if password != demoPassword {
		return nil, empDomain.ErrInvalidCredentials
	}

	e.PasswordHash = ""

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("employee_id", e.ID).
		Uint64("branch_id", e.BranchID).
		Msg("employee login verified")
	return e, nil
}

func (u *Usecase) SearchCustomers(ctx context.Context, q string) ([]custDomain.Customer, error) {
	return u.customers.Search(ctx, q)
}

// GetCustomerDetail bundles the customer with their accounts, loans and
// cards for the employee view.
func (u *Usecase) GetCustomerDetail(ctx context.Context, customerID uint64) (*CustomerDetail, error) {
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custDomain.ErrNotFound
		}
		return nil, err
	}
	c.PasswordHash = ""

	accounts, err := u.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	cards, err := u.cards.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{Customer: c, Accounts: accounts, Loans: loans, Cards: cards}, nil
}

func (u *Usecase) CreateCustomer(ctx context.Context, in CreateCustomerInput) (*custDomain.Customer, error) {
	c := &custDomain.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		DOB:       in.DOB,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Address:   in.Address,
	}
	if err := u.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("customer_id", c.ID).
		Msg("customer created")
	return c, nil
}

// OpenAccount creates an account and, when an initial deposit is given, posts
// the opening DEPOSIT row in the same unit so the ledger accounts for every
// rupee of the balance from day one.
//
// The account number is branch id (3 digits) + customer id (5 digits) + the
// customer's next account sequence (2 digits); the unique index on
// account_number backstops concurrent opens.
func (u *Usecase) OpenAccount(ctx context.Context, in OpenAccountInput) (*acctDomain.Account, error) {
	if in.InitialDeposit.IsNegative() {
		return nil, txDomain.ErrInvalidAmount
	}
	if _, err := u.customers.GetByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custDomain.ErrNotFound
		}
		return nil, err
	}
	if _, err := u.branches.GetByID(ctx, in.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchDomain.ErrNotFound
		}
		return nil, err
	}

	accountType := in.AccountType
	if accountType == "" {
		accountType = defaultAccountType
	}
	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var acct *acctDomain.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		seq, err := r.Accounts.CountByCustomer(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		acct = &acctDomain.Account{
			AccountNumber: fmt.Sprintf("%03d%05d%02d", in.BranchID, in.CustomerID, seq+1),
			CustomerID:    in.CustomerID,
			BranchID:      in.BranchID,
			Balance:       decimal.Zero,
			Currency:      currency,
			AccountType:   accountType,
		}
		if err := r.Accounts.Create(ctx, acct); err != nil {
			return err
		}
		if in.InitialDeposit.IsPositive() {
			if _, err := ledger.Apply(ctx, r, acct, txDomain.TypeDeposit, in.InitialDeposit, nil, "Initial deposit"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("account_id", acct.ID).
		Str("account_number", acct.AccountNumber).
		Str("balance", acct.Balance.StringFixed(2)).
		Msg("account opened")
	return acct, nil
}

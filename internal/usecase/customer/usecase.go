package customer

import (
	"context"
	"errors"

	acctDomain "bankbase/internal/domain/account"
	cardDomain "bankbase/internal/domain/card"
	custDomain "bankbase/internal/domain/customer"
	loanDomain "bankbase/internal/domain/loan"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// demoPassword stands in for real credential verification, which is out of
// scope here. Every customer authenticates with the same fixed string.
const demoPassword = "password"

// recentLimit caps the dashboard's recent-transactions strip.
const recentLimit = 5

type Usecase struct {
	customers    custDomain.Repository
	accounts     acctDomain.Repository
	transactions txDomain.Repository
	loans        loanDomain.Repository
	cards        cardDomain.Repository
}

func NewUsecase(
	customers custDomain.Repository,
	accounts acctDomain.Repository,
	transactions txDomain.Repository,
	loans loanDomain.Repository,
	cards cardDomain.Repository,
) *Usecase {
	return &Usecase{
		customers:    customers,
		accounts:     accounts,
		transactions: transactions,
		loans:        loans,
		cards:        cards,
	}
}

// Dashboard aggregates a customer's standing across every aggregate in one
// response.
type Dashboard struct {
	TotalAccounts      int                  `json:"total_accounts"`
	TotalBalance       decimal.Decimal      `json:"total_balance"`
	ActiveLoans        int64                `json:"active_loans"`
	CardsCount         int64                `json:"cards_count"`
	RecentTransactions []txDomain.AccountTx `json:"recent_transactions"`
}

// VerifyLogin authenticates a customer by mobile number. A missing customer
// and a wrong password both map to ErrInvalidCredentials so the response does
// not reveal which mobile numbers exist.
func (u *Usecase) VerifyLogin(ctx context.Context, mobile, password string) (*custDomain.Customer, error) {
	c, err := u.customers.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custDomain.ErrInvalidCredentials
		}
		return nil, err
	}
	if password != demoPassword {
		return nil, custDomain.ErrInvalidCredentials
	}

	// never hand the hash back up the stack
	c.PasswordHash = ""

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("customer_id", c.ID).
		Msg("customer login verified")
	return c, nil
}

func (u *Usecase) Profile(ctx context.Context, customerID uint64) (*custDomain.Customer, error) {
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custDomain.ErrNotFound
		}
		return nil, err
	}
	c.PasswordHash = ""
	return c, nil
}

func (u *Usecase) Accounts(ctx context.Context, customerID uint64) ([]acctDomain.Account, error) {
	return u.accounts.ListByCustomer(ctx, customerID)
}

// History lists an account's rows newest first. An account with no rows and a
// nonexistent account both come back as an empty list.
func (u *Usecase) History(ctx context.Context, accountID uint64, f txDomain.HistoryFilter) ([]txDomain.Transaction, error) {
	return u.transactions.ListByAccount(ctx, accountID, f)
}

func (u *Usecase) Loans(ctx context.Context, customerID uint64) ([]loanDomain.Loan, error) {
	return u.loans.ListByCustomer(ctx, customerID)
}

func (u *Usecase) Cards(ctx context.Context, customerID uint64) ([]cardDomain.Card, error) {
	return u.cards.ListByCustomer(ctx, customerID)
}

// GetDashboard sums balances over the customer's accounts and counts open
// loans (pending included) and cards, with the newest rows across all the
// customer's accounts as a preview strip.
func (u *Usecase) GetDashboard(ctx context.Context, customerID uint64) (*Dashboard, error) {
	accounts, err := u.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}

	loans, err := u.loans.CountOpenByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	cards, err := u.cards.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	recent, err := u.transactions.ListRecentByCustomer(ctx, customerID, recentLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalAccounts:      len(accounts),
		TotalBalance:       total,
		ActiveLoans:        loans,
		CardsCount:         cards,
		RecentTransactions: recent,
	}, nil
}

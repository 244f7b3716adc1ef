package card

import (
	"context"
	"errors"
	"time"

	acctDomain "bankbase/internal/domain/account"
	cardDomain "bankbase/internal/domain/card"
	"bankbase/internal/logger"
	"bankbase/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// validityYears is how far out a freshly issued card expires.
const validityYears = 4

type Usecase struct {
	cards    cardDomain.Repository
	accounts acctDomain.Repository
}

func NewUsecase(cards cardDomain.Repository, accounts acctDomain.Repository) *Usecase {
	return &Usecase{cards: cards, accounts: accounts}
}

type IssueInput struct {
	AccountID       uint64           `json:"account_id" validate:"required"`
	CardType        string           `json:"card_type" validate:"required,oneof=DEBIT CREDIT"`
	CreditLimit     *decimal.Decimal `json:"credit_limit"`
	WithdrawalLimit *decimal.Decimal `json:"withdrawal_limit"`
}

// Issue creates a card against an existing account. Number and CVV are random
// digits; the issue response is the only place the CVV is ever returned.
func (u *Usecase) Issue(ctx context.Context, in IssueInput) (*cardDomain.Card, error) {
	if _, err := u.accounts.GetByID(ctx, in.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, acctDomain.ErrNotFound
		}
		return nil, err
	}

	c := &cardDomain.Card{
		AccountID:       in.AccountID,
		CardNumber:      id.NewDigits(16),
		CardType:        in.CardType,
		ExpiryDate:      time.Now().UTC().AddDate(validityYears, 0, 0),
		CVV:             id.NewDigits(3),
		CreditLimit:     in.CreditLimit,
		WithdrawalLimit: in.WithdrawalLimit,
	}
	if err := u.cards.Create(ctx, c); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("card_id", c.ID).
		Uint64("account_id", c.AccountID).
		Str("card_type", c.CardType).
		Msg("card issued")
	return c, nil
}

func (u *Usecase) ListByAccount(ctx context.Context, accountID uint64) ([]cardDomain.Card, error) {
	return u.cards.ListByAccount(ctx, accountID)
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]cardDomain.Card, error) {
	return u.cards.ListByCustomer(ctx, customerID)
}

func (u *Usecase) ListByBranch(ctx context.Context, branchID uint64) ([]cardDomain.Card, error) {
	return u.cards.ListByBranch(ctx, branchID)
}

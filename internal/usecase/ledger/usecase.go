package ledger

import (
	"context"
	"errors"

	acctDomain "bankbase/internal/domain/account"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/domain/uow"
	"bankbase/internal/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type PostInput struct {
	AccountID      uint64          `json:"account_id"`
	Type           txDomain.Type   `json:"tx_type"`
	Amount         decimal.Decimal `json:"amount"`
	RelatedAccount *uint64         `json:"related_account,omitempty"`
	Description    string          `json:"description"`
}

// Post applies one signed amount to an account and appends the matching
// ledger row, atomically. The account row stays locked from read to commit,
// so BalanceAfter snapshots are strictly ordered per account.
func (u *Usecase) Post(ctx context.Context, in PostInput) (*txDomain.Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, txDomain.ErrInvalidAmount
	}

	var out *txDomain.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acct, err := r.Accounts.GetByIDForUpdate(ctx, in.AccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return acctDomain.ErrNotFound
			}
			return err
		}
		out, err = Apply(ctx, r, acct, in.Type, in.Amount, in.RelatedAccount, in.Description)
		return err
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("account_id", in.AccountID).
		Str("tx_type", string(in.Type)).
		Str("amount", in.Amount.String()).
		Str("balance_after", out.BalanceAfter.String()).
		Msg("ledger row posted")
	return out, nil
}

// Apply mutates an already locked account and appends its ledger row through
// the caller's transaction. The caller owns atomicity; acct.Balance is
// updated in place so later legs in the same unit see the new balance.
func Apply(ctx context.Context, r uow.Repos, acct *acctDomain.Account, typ txDomain.Type, amount decimal.Decimal, related *uint64, description string) (*txDomain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, txDomain.ErrInvalidAmount
	}

	newBalance := acct.Balance.Add(typ.SignedAmount(amount))
	if err := r.Accounts.UpdateBalance(ctx, acct.ID, newBalance); err != nil {
		return nil, err
	}
	acct.Balance = newBalance

	row := &txDomain.Transaction{
		AccountID:      acct.ID,
		Type:           typ,
		Amount:         amount,
		BalanceAfter:   newBalance,
		RelatedAccount: related,
		Description:    description,
	}
	if err := r.Transactions.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

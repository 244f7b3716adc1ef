package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	acctDomain "bankbase/internal/domain/account"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/domain/uow"
	"bankbase/internal/logger"
	"bankbase/internal/usecase/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Outcome messages are part of the API contract; clients match on them.
const (
	MsgSameAccount   = "Source and destination accounts must be different."
	MsgInvalidAmount = "Amount must be positive."
	MsgInsufficient  = "Insufficient balance."
	MsgCompleted     = "Transfer completed successfully."
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

type Usecase struct {
	accounts acctDomain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(accounts acctDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{accounts: accounts, uow: tx}
}

type Input struct {
	FromAccount uint64          `json:"from_account"`
	ToAccount   uint64          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Result reports the business outcome. Failed business checks land here with
// OK=false; only storage and integrity faults surface as errors.
type Result struct {
	OK       bool                  `json:"ok"`
	Message  string                `json:"message"`
	DebitTx  *txDomain.Transaction `json:"debit_tx,omitempty"`
	CreditTx *txDomain.Transaction `json:"credit_tx,omitempty"`
}

func failure(msg string) *Result { return &Result{Message: msg} }

// Transfer moves amount between two accounts as one atomic unit: both legs
// commit or neither does. Lost lock races are retried a bounded number of
// times before surfacing uow.ErrBusy.
func (u *Usecase) Transfer(ctx context.Context, in Input) (*Result, error) {
	if in.FromAccount == in.ToAccount {
		return failure(MsgSameAccount), nil
	}
	if !in.Amount.IsPositive() {
		return failure(MsgInvalidAmount), nil
	}

	// advisory pre-check on an unlocked read; the authoritative check runs
	// again under lock
	bal, err := u.accounts.GetBalance(ctx, in.FromAccount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return failure(MsgInsufficient), nil
		}
		return nil, err
	}
	if bal.LessThan(in.Amount) {
		return failure(MsgInsufficient), nil
	}

	log := logger.FromContext(ctx)
	var res *Result
	for attempt := 1; ; attempt++ {
		res, err = u.attempt(ctx, in)
		if err == nil || !errors.Is(err, uow.ErrBusy) || attempt >= maxAttempts {
			break
		}
		log.Warn().
			Int("attempt", attempt).
			Uint64("from_account", in.FromAccount).
			Uint64("to_account", in.ToAccount).
			Msg("transfer lost lock race, retrying")
		select {
		case <-time.After(time.Duration(attempt) * retryBackoff):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", uow.ErrBusy, ctx.Err())
		}
	}
	if err != nil {
		return nil, err
	}
	if res.OK {
		log.Info().
			Uint64("from_account", in.FromAccount).
			Uint64("to_account", in.ToAccount).
			Str("amount", in.Amount.String()).
			Msg("transfer committed")
	}
	return res, nil
}

func (u *Usecase) attempt(ctx context.Context, in Input) (*Result, error) {
	debitDesc := in.Description
	creditDesc := in.Description
	if in.Description == "" {
		debitDesc = fmt.Sprintf("Transfer to account %d", in.ToAccount)
		creditDesc = fmt.Sprintf("Transfer from account %d", in.FromAccount)
	}

	var res *Result
	err := u.uow.WithinAccountsTx(ctx, []uint64{in.FromAccount, in.ToAccount}, func(r uow.Repos, accts map[uint64]*acctDomain.Account) error {
		src := accts[in.FromAccount]
		dst := accts[in.ToAccount]
		if src.Balance.LessThan(in.Amount) {
			return acctDomain.ErrInsufficientFunds
		}
		debit, err := ledger.Apply(ctx, r, src, txDomain.TypeDebit, in.Amount, &dst.ID, debitDesc)
		if err != nil {
			return err
		}
		credit, err := ledger.Apply(ctx, r, dst, txDomain.TypeCredit, in.Amount, &src.ID, creditDesc)
		if err != nil {
			return err
		}
		res = &Result{OK: true, Message: MsgCompleted, DebitTx: debit, CreditTx: credit}
		return nil
	})
	if errors.Is(err, acctDomain.ErrInsufficientFunds) {
		// checked under lock; the unit rolled back with nothing written
		return failure(MsgInsufficient), nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

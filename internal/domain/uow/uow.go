package uow

import (
	"context"
	"errors"

	"bankbase/internal/domain/account"
	"bankbase/internal/domain/loan"
	"bankbase/internal/domain/transaction"
)

var (
	// ErrBusy marks a unit that lost a lock race (deadlock victim, lock wait
	// timeout, or deadline hit while waiting). Safe to retry.
	ErrBusy = errors.New("ledger busy")
	// ErrIntegrity marks a row that was expected inside a running unit but
	// vanished. Never retried.
	ErrIntegrity = errors.New("ledger integrity violation")
)

// Repos bundles the repositories that take part in one storage transaction.
type Repos struct {
	Accounts     account.Repository
	Transactions transaction.Repository
	Loans        loan.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one storage transaction; everything done
	// through r commits or rolls back together.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinAccountsTx locks the given accounts in ascending id order before
	// invoking fn, so concurrent multi-account units cannot deadlock. A
	// missing account aborts with ErrIntegrity.
	WithinAccountsTx(ctx context.Context, accountIDs []uint64, fn func(r Repos, accts map[uint64]*account.Account) error) error
}

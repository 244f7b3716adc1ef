package uowmock

import (
	"context"
	"errors"

	"bankbase/internal/domain/account"
	"bankbase/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinAccountsTxFn func(ctx context.Context, accountIDs []uint64, fn func(r uow.Repos, accts map[uint64]*account.Account) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinAccountsTx(fn func(context.Context, []uint64, func(uow.Repos, map[uint64]*account.Account) error) error) *UoW {
	m.WithinAccountsTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

// Passthrough returns a UoW whose units simply invoke fn against the given
// repos, with accounts looked up through r.Accounts. Handy for usecase tests
// that don't care about transaction boundaries.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinAccountsTxFn: func(ctx context.Context, accountIDs []uint64, fn func(uow.Repos, map[uint64]*account.Account) error) error {
			accts := make(map[uint64]*account.Account, len(accountIDs))
			for _, id := range accountIDs {
				if _, ok := accts[id]; ok {
					continue
				}
				a, err := r.Accounts.GetByIDForUpdate(ctx, id)
				if err != nil {
					return err
				}
				accts[id] = a
			}
			return fn(r, accts)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAccountsTx(ctx context.Context, accountIDs []uint64, fn func(r uow.Repos, accts map[uint64]*account.Account) error) error {
	if m.WithinAccountsTxFn != nil {
		return m.WithinAccountsTxFn(ctx, accountIDs, fn)
	}
	return errUnimplemented
}

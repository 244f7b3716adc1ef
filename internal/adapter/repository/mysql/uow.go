package mysql

import (
	acctDomain "bankbase/internal/domain/account"
	"bankbase/internal/domain/uow"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL error numbers that mean the unit lost a lock race.
const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

type GormUoW struct {
	db        *gorm.DB
	txTimeout time.Duration
}

func NewGormUoW(db *gorm.DB, txTimeout time.Duration) *GormUoW {
	if txTimeout <= 0 {
		txTimeout = 5 * time.Second
	}
	return &GormUoW{db: db, txTimeout: txTimeout}
}

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Accounts:     &AccountRepository{db: tx},
		Transactions: &TransactionRepository{db: tx},
		Loans:        &LoanRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.txTimeout)
	defer cancel()
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
	return mapTxError(err)
}

func (u *GormUoW) WithinAccountsTx(ctx context.Context, accountIDs []uint64, fn func(r uow.Repos, accts map[uint64]*acctDomain.Account) error) error {
	// lock in ascending id order so concurrent units cannot deadlock
	ordered := append([]uint64(nil), accountIDs...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	ctx, cancel := context.WithTimeout(ctx, u.txTimeout)
	defer cancel()
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		accts := make(map[uint64]*acctDomain.Account, len(ordered))
		for _, id := range ordered {
			if _, ok := accts[id]; ok {
				continue
			}
			a, err := r.Accounts.GetByIDForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("account %d: %w: %w", id, uow.ErrIntegrity, acctDomain.ErrNotFound)
				}
				return err
			}
			accts[id] = a
		}
		return fn(r, accts)
	})
	return mapTxError(err)
}

// mapTxError normalizes storage-level lock failures to uow.ErrBusy so engines
// can retry. Everything else passes through untouched.
func mapTxError(err error) error {
	if err == nil {
		return nil
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return fmt.Errorf("%w: %v", uow.ErrBusy, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", uow.ErrBusy, err)
	}
	return err
}

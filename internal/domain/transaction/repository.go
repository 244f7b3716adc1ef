package transaction

import (
	"context"
	"time"
)

// HistoryFilter narrows an account's history listing. Zero values mean
// unfiltered; rows come back newest first.
type HistoryFilter struct {
	Limit    int
	FromDate *time.Time
}

// StatementFilter bounds a statement period. Rows come back oldest first so
// the running BalanceAfter column reads naturally.
type StatementFilter struct {
	Start *time.Time
	End   *time.Time
}

// BranchFilter narrows branch-wide monitoring queries.
type BranchFilter struct {
	AccountID uint64
	Type      Type
	Limit     int
}

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	ListByAccount(ctx context.Context, accountID uint64, f HistoryFilter) ([]Transaction, error)
	ListForStatement(ctx context.Context, accountID uint64, f StatementFilter) ([]Transaction, error)
	ListRecentByCustomer(ctx context.Context, customerID uint64, limit int) ([]AccountTx, error)
	ListByBranch(ctx context.Context, branchID uint64, f BranchFilter) ([]AccountTx, error)
}

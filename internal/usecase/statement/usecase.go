package statement

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/logger"

	"github.com/google/uuid"
)

// header is the exact column order statement consumers rely on.
var header = []string{"Tx ID", "Date", "Type", "Amount", "Balance After", "Related Account", "Description"}

type Usecase struct {
	transactions txDomain.Repository
	dir          string
}

func NewUsecase(transactions txDomain.Repository, dir string) *Usecase {
	return &Usecase{transactions: transactions, dir: dir}
}

type Input struct {
	AccountID uint64
	Start     *time.Time
	End       *time.Time
}

// Rows returns the statement rows oldest first so the running balance column
// reads naturally.
func (u *Usecase) Rows(ctx context.Context, in Input) ([]txDomain.Transaction, error) {
	return u.transactions.ListForStatement(ctx, in.AccountID, txDomain.StatementFilter{Start: in.Start, End: in.End})
}

// ExportCSV writes the statement to a uniquely named file under the export
// directory and returns the rows plus the file path. The uuid suffix keeps
// concurrent exports for the same account from clobbering each other.
func (u *Usecase) ExportCSV(ctx context.Context, in Input) ([]txDomain.Transaction, string, error) {
	rows, err := u.Rows(ctx, in)
	if err != nil {
		return nil, "", err
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("statement_account_%d_%s.csv", in.AccountID, uuid.NewString())
	path := filepath.Join(u.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return nil, "", err
	}
	for _, r := range rows {
		related := ""
		if r.RelatedAccount != nil {
			related = strconv.FormatUint(*r.RelatedAccount, 10)
		}
		rec := []string{
			strconv.FormatUint(r.ID, 10),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			string(r.Type),
			r.Amount.StringFixed(2),
			r.BalanceAfter.StringFixed(2),
			related,
			r.Description,
		}
		if err := w.Write(rec); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Uint64("account_id", in.AccountID).
		Int("rows", len(rows)).
		Str("path", path).
		Msg("statement exported")
	return rows, path, nil
}

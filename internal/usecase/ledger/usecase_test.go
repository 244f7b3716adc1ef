package ledger

import (
	"context"
	"errors"
	"testing"

	acctDomain "bankbase/internal/domain/account"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/domain/uow"
	"bankbase/internal/testutil/accountmock"
	"bankbase/internal/testutil/transactionmock"
	"bankbase/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPost_SignTable(t *testing.T) {
	cases := []struct {
		name   string
		typ    txDomain.Type
		start  string
		amount string
		want   string
	}{
		{"deposit adds", txDomain.TypeDeposit, "100.00", "50.00", "150.00"},
		{"credit adds", txDomain.TypeCredit, "100.00", "0.01", "100.01"},
		{"withdrawal subtracts", txDomain.TypeWithdrawal, "100.00", "30.00", "70.00"},
		{"debit subtracts", txDomain.TypeDebit, "100.00", "100.00", "0.00"},
		{"transfer out subtracts", txDomain.TypeTransferOut, "100.00", "25.50", "74.50"},
		{"unlisted type adds", txDomain.Type("INTEREST"), "100.00", "10.00", "110.00"},
		{"overdraw is recorded", txDomain.TypeWithdrawal, "50.00", "80.00", "-30.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acct := &acctDomain.Account{ID: 1, Balance: dec(tc.start)}
			var savedBalance decimal.Decimal
			accounts := &accountmock.Repo{
				GetByIDForUpdateFn: func(ctx context.Context, accountID uint64) (*acctDomain.Account, error) {
					if accountID != 1 {
						t.Fatalf("locked account %d, want 1", accountID)
					}
					return acct, nil
				},
				UpdateBalanceFn: func(ctx context.Context, accountID uint64, balance decimal.Decimal) error {
					savedBalance = balance
					return nil
				},
			}
			var savedRow *txDomain.Transaction
			txs := &transactionmock.Repo{
				CreateFn: func(ctx context.Context, tx *txDomain.Transaction) error {
					tx.ID = 42
					savedRow = tx
					return nil
				},
			}
			uc := NewUsecase(uowmock.Passthrough(uow.Repos{Accounts: accounts, Transactions: txs}))

			got, err := uc.Post(context.Background(), PostInput{
				AccountID: 1,
				Type:      tc.typ,
				Amount:    dec(tc.amount),
			})
			if err != nil {
				t.Fatalf("Post: %v", err)
			}
			if !savedBalance.Equal(dec(tc.want)) {
				t.Errorf("persisted balance = %s, want %s", savedBalance, tc.want)
			}
			if savedRow == nil {
				t.Fatalf("no ledger row written")
			}
			if !savedRow.BalanceAfter.Equal(dec(tc.want)) {
				t.Errorf("BalanceAfter = %s, want %s", savedRow.BalanceAfter, tc.want)
			}
			if !savedRow.Amount.Equal(dec(tc.amount)) {
				t.Errorf("Amount = %s, want %s (stored unsigned)", savedRow.Amount, tc.amount)
			}
			if got.ID != 42 {
				t.Errorf("returned row id = %d, want 42", got.ID)
			}
		})
	}
}

func TestPost_InvalidAmount(t *testing.T) {
	// the unit of work must never start for a non-positive amount
	uc := NewUsecase(&uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			t.Fatalf("WithinTx called for invalid amount")
			return nil
		},
	})

	for _, amount := range []string{"0", "-5.00"} {
		if _, err := uc.Post(context.Background(), PostInput{AccountID: 1, Type: txDomain.TypeDeposit, Amount: dec(amount)}); !errors.Is(err, txDomain.ErrInvalidAmount) {
			t.Errorf("Post(amount=%s): want ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestPost_AccountNotFound(t *testing.T) {
	accounts := &accountmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, accountID uint64) (*acctDomain.Account, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Accounts: accounts}))

	_, err := uc.Post(context.Background(), PostInput{AccountID: 99, Type: txDomain.TypeDeposit, Amount: dec("10.00")})
	if !errors.Is(err, acctDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPost_LedgerWriteFails(t *testing.T) {
	sentinel := errors.New("insert failed")
	accounts := &accountmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, accountID uint64) (*acctDomain.Account, error) {
			return &acctDomain.Account{ID: 1, Balance: dec("100.00")}, nil
		},
		UpdateBalanceFn: func(ctx context.Context, accountID uint64, balance decimal.Decimal) error {
			return nil
		},
	}
	txs := &transactionmock.Repo{
		CreateFn: func(ctx context.Context, tx *txDomain.Transaction) error { return sentinel },
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Accounts: accounts, Transactions: txs}))

	if _, err := uc.Post(context.Background(), PostInput{AccountID: 1, Type: txDomain.TypeDeposit, Amount: dec("10.00")}); !errors.Is(err, sentinel) {
		t.Fatalf("want insert error back, got %v", err)
	}
}

func TestApply_RelatedAccountAndDescription(t *testing.T) {
	acct := &acctDomain.Account{ID: 3, Balance: dec("500.00")}
	accounts := &accountmock.Repo{
		UpdateBalanceFn: func(ctx context.Context, accountID uint64, balance decimal.Decimal) error { return nil },
	}
	var savedRow *txDomain.Transaction
	txs := &transactionmock.Repo{
		CreateFn: func(ctx context.Context, tx *txDomain.Transaction) error {
			savedRow = tx
			return nil
		},
	}

	related := uint64(9)
	row, err := Apply(context.Background(), uow.Repos{Accounts: accounts, Transactions: txs},
		acct, txDomain.TypeDebit, dec("120.00"), &related, "Transfer to savings")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !acct.Balance.Equal(dec("380.00")) {
		t.Errorf("in-place balance = %s, want 380.00", acct.Balance)
	}
	if savedRow.RelatedAccount == nil || *savedRow.RelatedAccount != 9 {
		t.Errorf("related account not recorded: %+v", savedRow)
	}
	if row.Description != "Transfer to savings" {
		t.Errorf("description = %q", row.Description)
	}
}

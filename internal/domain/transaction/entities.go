package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// Type classifies a ledger row. The sign applied to the balance is derived
// from the type at posting time and never stored.
type Type string

const (
	TypeDeposit     Type = "DEPOSIT"
	TypeWithdrawal  Type = "WITHDRAWAL"
	TypeDebit       Type = "DEBIT"
	TypeCredit      Type = "CREDIT"
	TypeTransferOut Type = "TRANSFER_OUT"
)

// debitTypes is the authoritative sign table: listed types subtract from the
// balance, every other type adds.
var debitTypes = map[Type]struct{}{
	TypeWithdrawal:  {},
	TypeDebit:       {},
	TypeTransferOut: {},
}

// Sign returns -1 for balance-reducing types and +1 for everything else.
// Matching is case-insensitive.
func (t Type) Sign() int {
	if _, ok := debitTypes[Type(strings.ToUpper(string(t)))]; ok {
		return -1
	}
	return 1
}

// SignedAmount applies the type's sign to a positive amount.
func (t Type) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t.Sign() < 0 {
		return amount.Neg()
	}
	return amount
}

// Transaction is an append-only ledger row. BalanceAfter snapshots the account
// balance immediately after this row applied, written in the same transaction
// as the balance update.
type Transaction struct {
	ID             uint64          `gorm:"primaryKey;column:tx_id" json:"tx_id"`
	AccountID      uint64          `gorm:"column:account_id;index;not null" json:"account_id"`
	Type           Type            `gorm:"column:tx_type;size:16;not null" json:"tx_type"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	BalanceAfter   decimal.Decimal `gorm:"column:balance_after;type:decimal(18,2);not null" json:"balance_after"`
	RelatedAccount *uint64         `gorm:"column:related_account" json:"related_account,omitempty"`
	Description    string          `gorm:"column:description;type:text" json:"description"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

// AccountTx couples a ledger row with the owning account's number for branch
// monitoring and customer dashboards.
type AccountTx struct {
	ID             uint64          `gorm:"column:tx_id" json:"tx_id"`
	AccountID      uint64          `gorm:"column:account_id" json:"account_id"`
	AccountNumber  string          `gorm:"column:account_number" json:"account_number"`
	Type           Type            `gorm:"column:tx_type" json:"tx_type"`
	Amount         decimal.Decimal `gorm:"column:amount" json:"amount"`
	BalanceAfter   decimal.Decimal `gorm:"column:balance_after" json:"balance_after"`
	RelatedAccount *uint64         `gorm:"column:related_account" json:"related_account,omitempty"`
	Description    string          `gorm:"column:description" json:"description"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
}

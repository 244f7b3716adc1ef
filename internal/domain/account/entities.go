package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// Account carries the current balance justified by the transactions table.
// Balance is mutated only by ledger operations holding the row lock; rows are
// never deleted.
type Account struct {
	ID            uint64          `gorm:"primaryKey;column:account_id" json:"account_id"`
	AccountNumber string          `gorm:"column:account_number;size:32;uniqueIndex" json:"account_number"`
	CustomerID    uint64          `gorm:"column:customer_id;index" json:"customer_id"`
	BranchID      uint64          `gorm:"column:branch_id;index" json:"branch_id"`
	Balance       decimal.Decimal `gorm:"column:balance;type:decimal(18,2);not null" json:"balance"`
	Currency      string          `gorm:"column:currency;size:3" json:"currency"`
	AccountType   string          `gorm:"column:account_type;size:32" json:"account_type"`
	OpenedAt      time.Time       `gorm:"column:opened_at;autoCreateTime" json:"opened_at"`
}

func (Account) TableName() string { return "accounts" }

// BranchTotals aggregates a branch's accounts for reporting.
type BranchTotals struct {
	TotalAccounts  int64           `json:"total_accounts"`
	TotalCustomers int64           `json:"total_customers"`
	TotalBalance   decimal.Decimal `json:"total_balance"`
}

package card

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeDebit  = "DEBIT"
	TypeCredit = "CREDIT"
)

// Card is issued against an account. The CVV never leaves the server once
// issued; the issue response is the only place a caller sees it.
type Card struct {
	ID              uint64           `gorm:"primaryKey;column:card_id" json:"card_id"`
	AccountID       uint64           `gorm:"column:account_id;index" json:"account_id"`
	CardNumber      string           `gorm:"column:card_number;size:19;uniqueIndex" json:"card_number"`
	CardType        string           `gorm:"column:card_type;size:16" json:"card_type"`
	ExpiryDate      time.Time        `gorm:"column:expiry_date" json:"expiry_date"`
	CVV             string           `gorm:"column:cvv;size:4" json:"-"`
	CreditLimit     *decimal.Decimal `gorm:"column:credit_limit;type:decimal(18,2)" json:"credit_limit,omitempty"`
	WithdrawalLimit *decimal.Decimal `gorm:"column:withdrawal_limit;type:decimal(18,2)" json:"withdrawal_limit,omitempty"`
	IssuedDate      time.Time        `gorm:"column:issued_date;autoCreateTime" json:"issued_date"`
}

func (Card) TableName() string { return "cards" }

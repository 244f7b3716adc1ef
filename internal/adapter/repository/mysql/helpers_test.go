package mysql

import (
	"testing"

	acctDomain "bankbase/internal/domain/account"
	branchDomain "bankbase/internal/domain/branch"
	cardDomain "bankbase/internal/domain/card"
	custDomain "bankbase/internal/domain/customer"
	empDomain "bankbase/internal/domain/employee"
	loanDomain "bankbase/internal/domain/loan"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens an in-memory sqlite DB pinned to one connection so every
// goroutine in a test sees the same database, and migrates the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&branchDomain.Branch{},
		&empDomain.Employee{},
		&custDomain.Customer{},
		&acctDomain.Account{},
		&txDomain.Transaction{},
		&loanDomain.Loan{},
		&cardDomain.Card{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedBranch(t *testing.T, db *gorm.DB, name string) *branchDomain.Branch {
	t.Helper()
	b := &branchDomain.Branch{BranchName: name, IFSCCode: "BKB0" + id.NewID32()[:6], City: "Mumbai"}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return b
}

func seedCustomer(t *testing.T, db *gorm.DB, first, last string) *custDomain.Customer {
	t.Helper()
	c := &custDomain.Customer{
		FirstName: first,
		LastName:  last,
		Email:     first + "@example.com",
		Mobile:    id.NewID32()[:10],
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedAccount(t *testing.T, db *gorm.DB, customerID, branchID uint64, balance string) *acctDomain.Account {
	t.Helper()
	a := &acctDomain.Account{
		AccountNumber: id.NewID32(),
		CustomerID:    customerID,
		BranchID:      branchID,
		Balance:       dec(balance),
		Currency:      "INR",
		AccountType:   "SAVINGS",
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return a
}

func seedLoan(t *testing.T, db *gorm.DB, customerID, branchID, accountID uint64, status loanDomain.Status) *loanDomain.Loan {
	t.Helper()
	l := &loanDomain.Loan{
		LoanNumber:         "LN" + id.NewID32()[:10],
		CustomerID:         customerID,
		BranchID:           branchID,
		LinkedAccountID:    accountID,
		LoanType:           "Personal",
		PrincipalAmount:    dec("100000.00"),
		InterestRate:       12.0,
		TenureMonths:       12,
		EMIAmount:          dec("8884.88"),
		OutstandingBalance: dec("100000.00"),
		Status:             status,
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}

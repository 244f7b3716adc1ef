package mysql

import (
	"context"
	"testing"
	"time"

	cardDomain "bankbase/internal/domain/card"
	"bankbase/pkg/id"

	"gorm.io/gorm"
)

func seedCard(t *testing.T, db *gorm.DB, accountID uint64, cardType string) *cardDomain.Card {
	t.Helper()
	c := &cardDomain.Card{
		AccountID:  accountID,
		CardNumber: id.NewDigits(16),
		CardType:   cardType,
		ExpiryDate: time.Now().AddDate(4, 0, 0),
		CVV:        id.NewDigits(3),
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed card: %v", err)
	}
	return c
}

func TestCardListByCustomerAndBranch(t *testing.T) {
	db := openTestDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	b1 := seedBranch(t, db, "Fort")
	b2 := seedBranch(t, db, "Andheri")
	c1 := seedCustomer(t, db, "Asha", "Rao")
	c2 := seedCustomer(t, db, "Vikram", "Shah")
	a1 := seedAccount(t, db, c1.ID, b1.ID, "0.00")
	a2 := seedAccount(t, db, c1.ID, b2.ID, "0.00")
	a3 := seedAccount(t, db, c2.ID, b1.ID, "0.00")

	seedCard(t, db, a1.ID, cardDomain.TypeDebit)
	seedCard(t, db, a2.ID, cardDomain.TypeCredit)
	seedCard(t, db, a3.ID, cardDomain.TypeDebit)

	mine, err := repo.ListByCustomer(ctx, c1.ID)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d cards, want 2", len(mine))
	}

	atFort, err := repo.ListByBranch(ctx, b1.ID)
	if err != nil {
		t.Fatalf("ListByBranch: %v", err)
	}
	if len(atFort) != 2 {
		t.Fatalf("got %d cards at branch, want 2", len(atFort))
	}

	n, err := repo.CountByCustomer(ctx, c1.ID)
	if err != nil {
		t.Fatalf("CountByCustomer: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	n, err = repo.CountByBranch(ctx, b2.ID)
	if err != nil {
		t.Fatalf("CountByBranch: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

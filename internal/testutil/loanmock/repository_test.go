package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "bankbase/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanNumber: "LN0000000001"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{ID: 2}

	m := &Repo{
		GetByIDFn: func(gotCtx context.Context, loanID uint64) (*domain.Loan, error) {
			if loanID != 2 {
				t.Fatalf("GetByID id mismatch: got %d", loanID)
			}
			return want, nil
		},
	}
	got, err := m.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByID: want %+v, got %+v", want, got)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, err = m.GetByID(ctx, 2); err != context.Canceled {
		t.Fatalf("GetByID default: want context.Canceled, got %v", err)
	}
}

func TestRepo_RejectPending(t *testing.T) {
	ctx := context.Background()

	m := &Repo{
		RejectPendingFn: func(gotCtx context.Context, loanID, employeeID uint64) (int64, error) {
			if loanID != 4 || employeeID != 9 {
				t.Fatalf("RejectPending args mismatch: %d %d", loanID, employeeID)
			}
			return 1, nil
		},
	}
	n, err := m.RejectPending(ctx, 4, 9)
	if err != nil || n != 1 {
		t.Fatalf("RejectPending: n=%d err=%v", n, err)
	}

	m = &Repo{}
	if _, err = m.RejectPending(ctx, 4, 9); err != context.Canceled {
		t.Fatalf("RejectPending default: want context.Canceled, got %v", err)
	}
}

func TestRepo_Counts(t *testing.T) {
	ctx := context.Background()

	m := &Repo{
		BranchStatusCountsFn: func(gotCtx context.Context, branchID uint64) (int64, int64, error) {
			return 3, 5, nil
		},
		EmployeeDecisionCountsFn: func(gotCtx context.Context, employeeID uint64) (int64, int64, error) {
			return 7, 2, nil
		},
	}
	active, pending, err := m.BranchStatusCounts(ctx, 1)
	if err != nil || active != 3 || pending != 5 {
		t.Fatalf("BranchStatusCounts: %d %d %v", active, pending, err)
	}
	approved, rejected, err := m.EmployeeDecisionCounts(ctx, 1)
	if err != nil || approved != 7 || rejected != 2 {
		t.Fatalf("EmployeeDecisionCounts: %d %d %v", approved, rejected, err)
	}

	m = &Repo{}
	if _, _, err = m.BranchStatusCounts(ctx, 1); err != context.Canceled {
		t.Fatalf("BranchStatusCounts default: want context.Canceled, got %v", err)
	}
}

package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 1.2} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestDec2OnDecimalFields(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `validate:"required,dec2"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Amount: decimal.RequireFromString("120.50")}); err != nil {
		t.Fatalf("expected 120.50 OK, got %v", err)
	}
	err := cv.Validate(P{Amount: decimal.RequireFromString("120.505")})
	if err == nil {
		t.Fatalf("expected dec2 error for 120.505")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 detail: %+v", ToFieldErrors(err))
	}

	// a zero decimal is "empty" to the required rule
	err = cv.Validate(P{})
	if err == nil {
		t.Fatalf("expected required error for zero amount")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "is required") {
		t.Fatalf("missing required detail: %+v", ToFieldErrors(err))
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string  `validate:"required"`
		Min    int     `validate:"gte=10"`
		Max    int     `validate:"lte=5"`
		Rate   float64 `validate:"dec2,gte=0.90,lte=1.29"`
		Email  string  `validate:"omitempty,email"`
		Status string  `validate:"oneof=DEBIT CREDIT"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name:   "",
		Min:    9,
		Max:    6,
		Rate:   1.333, // dec2 fires before the bounds
		Email:  "not-an-email",
		Status: "GIFT",
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Rate: %+v", fe)
	}
	if !containsFieldMsg(fe, "Email", "valid email address") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Status", "must be one of: DEBIT CREDIT") {
		t.Fatalf("missing oneof message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

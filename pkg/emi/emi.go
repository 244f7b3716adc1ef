package emi

import (
	"math"

	"github.com/shopspring/decimal"
)

// Monthly computes the fixed monthly installment for a loan.
//
// annualRatePercent is a percentage (12.0 means 12% p.a.); the monthly rate
// is annualRatePercent/1200. A non-positive tenure yields zero rather than an
// error. The zero-rate branch is a flat principal/tenure split in decimal
// arithmetic; the amortized branch computes
//
//	P*r*(1+r)^n / ((1+r)^n - 1)
//
// in float64 and converts back, so the stored installment is the float result
// rounded half-to-even to 2 decimal places.
func Monthly(principal decimal.Decimal, annualRatePercent float64, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 {
		return decimal.Zero
	}

	monthlyRate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(1200))
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))).RoundBank(2)
	}

	p, _ := principal.Float64()
	r, _ := monthlyRate.Float64()
	n := float64(tenureMonths)

	factor := math.Pow(1+r, n)
	installment := p * r * factor / (factor - 1)

	return decimal.NewFromFloat(installment).RoundBank(2)
}

package credit

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyEMI computes the equated monthly installment for a principal,
// an annual interest rate in percent and a tenure in months, using the
// reducing-balance formula EMI = P*r*(1+r)^n / ((1+r)^n - 1) with the
// monthly rate r = annual/100/12.
//
// This is the only place floating-point arithmetic is allowed; the
// result is re-quantized to 2 decimal places (half-up) before it
// crosses any boundary. A zero rate degenerates to P/n.
func MonthlyEMI(principal, annualRate decimal.Decimal, tenure int) decimal.Decimal {
	n := decimal.NewFromInt(int64(tenure))
	if annualRate.IsZero() {
		return principal.DivRound(n, 2)
	}

	p, _ := principal.Float64()
	r, _ := annualRate.Float64()
	monthlyRate := r / 100 / 12
	factor := math.Pow(1+monthlyRate, float64(tenure))
	emi := p * monthlyRate * factor / (factor - 1)

	return decimal.NewFromFloat(emi).Round(2)
}

// NextDueDate is exactly one calendar month after from, preserving the
// day of month where valid and clamping to the last day of shorter
// months (Jan 31 -> Feb 28/29).
func NextDueDate(from time.Time) time.Time {
	year, month, day := from.Date()
	hour, min, sec := from.Clock()

	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, from.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, hour, min, sec, 0, from.Location())
}

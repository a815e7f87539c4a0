// Package mortgage implements fixed-rate mortgage pricing under a
// discount-point model: effective rates, closing costs, the standard
// amortizing monthly payment, and lazy payment schedules with optional
// overpayment strategies. All inputs and outputs are dimensioned quantities
// from pkg/units, so unit mistakes surface as errors instead of wrong money.
package mortgage

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-points/pkg/units"
)

// Loan describes the terms of a fixed-rate mortgage. Loan values are
// immutable; amortization derives fresh snapshots with a reduced LoanAmount
// instead of mutating the original.
type Loan struct {
	LoanAmount       units.Quantity // money
	HomeValue        units.Quantity // money
	Duration         units.Quantity // time; fixed at origination, sizes the payment formula only
	BaseRate         units.Quantity // annualized rate before points, e.g. 4 percent/year
	BaseClosingCosts units.Quantity // money

	// CostPerPoint is the fraction of the loan amount charged upfront for
	// each discount point purchased, e.g. 1 percent/dp.
	CostPerPoint units.Quantity

	// RateReductionPerPoint is how much each purchased point lowers the
	// annual rate, e.g. 0.125 percent/(year*dp).
	RateReductionPerPoint units.Quantity
}

// EffectiveRate returns the annualized interest rate after the discount for
// nPoints purchased points. No floor is applied: enough points can drive the
// rate negative, and callers own guarding against that.
func (l Loan) EffectiveRate(nPoints units.Quantity) (units.Quantity, error) {
	rate, err := l.BaseRate.Sub(l.RateReductionPerPoint.Mul(nPoints))
	if err != nil {
		return units.Quantity{}, fmt.Errorf("effective rate: %w", err)
	}
	return rate, nil
}

// ActualClosingCosts returns the closing costs including the upfront charge
// for nPoints purchased points.
func (l Loan) ActualClosingCosts(nPoints units.Quantity) (units.Quantity, error) {
	costs, err := l.BaseClosingCosts.Add(l.CostPerPoint.Mul(l.LoanAmount).Mul(nPoints))
	if err != nil {
		return units.Quantity{}, fmt.Errorf("actual closing costs: %w", err)
	}
	return costs, nil
}

// DownPayment returns the cash paid upfront, HomeValue minus LoanAmount.
func (l Loan) DownPayment() (units.Quantity, error) {
	down, err := l.HomeValue.Sub(l.LoanAmount)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("down payment: %w", err)
	}
	return down, nil
}

// NumPayments returns the number of whole months spanned by Duration, rounded
// up. It sizes the amortization formula only; schedules terminate on the
// remaining balance, not on a payment count.
func (l Loan) NumPayments() (int, error) {
	months, err := l.Duration.Value(units.Month)
	if err != nil {
		return 0, fmt.Errorf("number of payments: %w", err)
	}
	return int(math.Ceil(months)), nil
}

// BasePayment returns the fixed monthly payment (money per month) from the
// standard amortizing-loan formula at the effective rate for nPoints. A zero
// effective rate zeroes the compounding denominator; the resulting non-finite
// quantity is returned as-is rather than special-cased.
func (l Loan) BasePayment(nPoints units.Quantity) (units.Quantity, error) {
	rate, err := l.EffectiveRate(nPoints)
	if err != nil {
		return units.Quantity{}, err
	}
	monthlyRate, err := rate.Value(units.One.Per(units.Month))
	if err != nil {
		return units.Quantity{}, fmt.Errorf("base payment: %w", err)
	}
	n, err := l.NumPayments()
	if err != nil {
		return units.Quantity{}, err
	}
	compounding := math.Pow(1+monthlyRate, float64(n))
	return l.LoanAmount.Mul(rate).MulScalar(compounding / (compounding - 1)), nil
}

// withLoanAmount returns a snapshot of the loan with only LoanAmount
// replaced. All other terms, Duration included, stay as originally written.
func (l Loan) withLoanAmount(amount units.Quantity) Loan {
	l.LoanAmount = amount
	return l
}

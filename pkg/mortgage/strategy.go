package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-points/pkg/units"
)

// OverpaymentStrategy computes an extra principal payment (money per month)
// from the remaining loan snapshot. Strategies must be pure functions of the
// snapshot they receive: a schedule may evaluate them lazily and two
// schedules built from the same arguments must see identical values.
type OverpaymentStrategy func(remaining Loan) (units.Quantity, error)

// ZeroOverpayment pays nothing extra. It is the default strategy when none is
// supplied.
func ZeroOverpayment(Loan) (units.Quantity, error) {
	return units.New(0, units.Dollar.Per(units.Month)), nil
}

// FixedOverpayment pays the same extra amount (money per month) every month.
func FixedOverpayment(amount units.Quantity) OverpaymentStrategy {
	return func(Loan) (units.Quantity, error) {
		return amount, nil
	}
}

// BalanceFractionOverpayment pays a fraction of the remaining balance each
// month, given as a rate quantity such as 0.5 percent/month.
func BalanceFractionOverpayment(ratePerMonth units.Quantity) OverpaymentStrategy {
	return func(remaining Loan) (units.Quantity, error) {
		return remaining.LoanAmount.Mul(ratePerMonth), nil
	}
}

// WhileBalanceAbove gates another strategy so extra payments apply only while
// the remaining balance exceeds threshold (money). Below the threshold the
// schedule falls back to the base payment alone.
func WhileBalanceAbove(threshold units.Quantity, strategy OverpaymentStrategy) OverpaymentStrategy {
	return func(remaining Loan) (units.Quantity, error) {
		above, err := remaining.LoanAmount.Cmp(threshold)
		if err != nil {
			return units.Quantity{}, fmt.Errorf("overpayment threshold: %w", err)
		}
		if above <= 0 {
			return ZeroOverpayment(remaining)
		}
		return strategy(remaining)
	}
}

// CombineOverpayments sums the extra payments of several strategies.
func CombineOverpayments(strategies ...OverpaymentStrategy) OverpaymentStrategy {
	return func(remaining Loan) (units.Quantity, error) {
		total := units.New(0, units.Dollar.Per(units.Month))
		for _, strategy := range strategies {
			extra, err := strategy(remaining)
			if err != nil {
				return units.Quantity{}, err
			}
			total, err = total.Add(extra)
			if err != nil {
				return units.Quantity{}, fmt.Errorf("combining overpayments: %w", err)
			}
		}
		return total, nil
	}
}

// Package validation provides pre-engine checks for loan configurations.
// The engine itself is permissive: it does not guard against zero effective
// rates or payments that fail to cover interest. These checks surface those
// conditions as warnings before any schedule runs.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-points/pkg/constants"
	"github.com/iwvelando/mortgage-points/pkg/mortgage"
	"github.com/iwvelando/mortgage-points/pkg/units"
)

// ValidateLoan inspects a loan priced at nPoints and returns advisory
// warnings. Warnings never block computation; a non-nil error means the loan
// is mis-dimensioned and cannot be validated (or computed) at all.
func ValidateLoan(name string, loan mortgage.Loan, nPoints units.Quantity, strategy mortgage.OverpaymentStrategy) ([]string, error) {
	var warnings []string
	zeroDollars := units.New(0, units.Dollar)

	if cmp, err := loan.LoanAmount.Cmp(zeroDollars); err != nil {
		return nil, fmt.Errorf("loan '%s': loan amount: %w", name, err)
	} else if cmp < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative loan amount", name))
	}

	down, err := loan.DownPayment()
	if err != nil {
		return nil, fmt.Errorf("loan '%s': %w", name, err)
	}
	if cmp, err := down.Cmp(zeroDollars); err != nil {
		return nil, fmt.Errorf("loan '%s': down payment: %w", name, err)
	} else if cmp < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' home value is below the loan amount - down payment would be negative", name))
	}

	closing, err := loan.ActualClosingCosts(nPoints)
	if err != nil {
		return nil, fmt.Errorf("loan '%s': %w", name, err)
	}
	if cmp, err := closing.Cmp(zeroDollars); err != nil {
		return nil, fmt.Errorf("loan '%s': closing costs: %w", name, err)
	} else if cmp < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has negative closing costs", name))
	}

	n, err := loan.NumPayments()
	if err != nil {
		return nil, fmt.Errorf("loan '%s': %w", name, err)
	}
	if n < 1 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' duration spans no whole months - the payment formula needs at least one payment", name))
	}

	rate, err := loan.EffectiveRate(nPoints)
	if err != nil {
		return nil, fmt.Errorf("loan '%s': %w", name, err)
	}
	annualRate, err := rate.Value(units.Percent.Per(units.Year))
	if err != nil {
		return nil, fmt.Errorf("loan '%s': effective rate: %w", name, err)
	}
	points, err := nPoints.Value(units.Point)
	if err != nil {
		return nil, fmt.Errorf("loan '%s': points: %w", name, err)
	}
	switch {
	case annualRate == 0:
		warnings = append(warnings, fmt.Sprintf("Loan '%s' effective rate is exactly zero at %g points - the payment formula divides by zero", name, points))
	case annualRate < 0:
		warnings = append(warnings, fmt.Sprintf("Loan '%s' effective rate is negative (%.4f percent/year) at %g points", name, annualRate, points))
	}

	if annualRate > 0 && n >= 1 {
		warning, err := checkPaymentCoversInterest(name, loan, nPoints, rate, strategy)
		if err != nil {
			return nil, err
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings, nil
}

// checkPaymentCoversInterest compares the first month's combined payment
// against the first month's interest. A payment at or below the interest
// means the balance never shrinks and the schedule never terminates.
func checkPaymentCoversInterest(name string, loan mortgage.Loan, nPoints, rate units.Quantity, strategy mortgage.OverpaymentStrategy) (string, error) {
	if strategy == nil {
		strategy = mortgage.ZeroOverpayment
	}

	base, err := loan.BasePayment(nPoints)
	if err != nil {
		return "", fmt.Errorf("loan '%s': %w", name, err)
	}
	extra, err := strategy(loan)
	if err != nil {
		return "", fmt.Errorf("loan '%s': overpayment strategy: %w", name, err)
	}
	perMonth, err := base.Add(extra)
	if err != nil {
		return "", fmt.Errorf("loan '%s': overpayment strategy: %w", name, err)
	}

	oneMonth := units.New(1, units.Month)
	payment := perMonth.Mul(oneMonth)
	interest := loan.LoanAmount.Mul(oneMonth).Mul(rate)

	covers, err := payment.Cmp(interest)
	if err != nil {
		return "", fmt.Errorf("loan '%s': first payment: %w", name, err)
	}
	if covers <= 0 {
		return fmt.Sprintf("Loan '%s' combined payment %s does not cover the first month's interest %s - the schedule will not terminate",
			name, payment, interest), nil
	}
	return "", nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

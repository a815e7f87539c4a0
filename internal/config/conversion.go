package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-points/pkg/mortgage"
	"github.com/iwvelando/mortgage-points/pkg/units"
)

// BuildRegistry returns the unit registry used to parse this configuration's
// quantity strings, extended with any configured definitions file.
func (conf *Configuration) BuildRegistry() (*units.Registry, error) {
	registry := units.NewRegistry()
	if conf.UnitDefinitions != "" {
		if err := registry.LoadDefinitions(conf.UnitDefinitions); err != nil {
			return nil, fmt.Errorf("loading unit definitions: %w", err)
		}
	}
	return registry, nil
}

// ToLoan parses the configured loan terms into engine quantities.
func (lc *LoanConfig) ToLoan(registry *units.Registry) (mortgage.Loan, error) {
	var loan mortgage.Loan
	fields := []struct {
		name  string
		value string
		dest  *units.Quantity
	}{
		{"loanAmount", lc.LoanAmount, &loan.LoanAmount},
		{"homeValue", lc.HomeValue, &loan.HomeValue},
		{"duration", lc.Duration, &loan.Duration},
		{"baseRate", lc.BaseRate, &loan.BaseRate},
		{"baseClosingCosts", lc.BaseClosingCosts, &loan.BaseClosingCosts},
		{"costPerPoint", lc.CostPerPoint, &loan.CostPerPoint},
		{"rateReductionPerPoint", lc.RateReductionPerPoint, &loan.RateReductionPerPoint},
	}
	for _, field := range fields {
		quantity, err := registry.Parse(field.value)
		if err != nil {
			return loan, fmt.Errorf("loan %s %q: %w", field.name, field.value, err)
		}
		*field.dest = quantity
	}
	return loan, nil
}

// ToStrategy builds the overpayment strategy described by one rule.
func (oc *OverpaymentConfig) ToStrategy(registry *units.Registry) (mortgage.OverpaymentStrategy, error) {
	var parts []mortgage.OverpaymentStrategy
	if oc.Amount != "" {
		amount, err := registry.Parse(oc.Amount)
		if err != nil {
			return nil, fmt.Errorf("overpayment amount %q: %w", oc.Amount, err)
		}
		parts = append(parts, mortgage.FixedOverpayment(amount))
	}
	if oc.BalanceRate != "" {
		rate, err := registry.Parse(oc.BalanceRate)
		if err != nil {
			return nil, fmt.Errorf("overpayment balanceRate %q: %w", oc.BalanceRate, err)
		}
		parts = append(parts, mortgage.BalanceFractionOverpayment(rate))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("overpayment rule needs an amount or a balanceRate")
	}
	strategy := mortgage.CombineOverpayments(parts...)
	if oc.MinBalance != "" {
		threshold, err := registry.Parse(oc.MinBalance)
		if err != nil {
			return nil, fmt.Errorf("overpayment minBalance %q: %w", oc.MinBalance, err)
		}
		strategy = mortgage.WhileBalanceAbove(threshold, strategy)
	}
	return strategy, nil
}

// ToStrategy combines every configured overpayment rule into a single
// strategy; it returns nil when no rules are configured so schedules fall
// back to the base payment alone.
func (conf *Configuration) ToStrategy(registry *units.Registry) (mortgage.OverpaymentStrategy, error) {
	if len(conf.Overpayments) == 0 {
		return nil, nil
	}
	strategies := make([]mortgage.OverpaymentStrategy, 0, len(conf.Overpayments))
	for i := range conf.Overpayments {
		strategy, err := conf.Overpayments[i].ToStrategy(registry)
		if err != nil {
			return nil, fmt.Errorf("overpayment rule %d: %w", i+1, err)
		}
		strategies = append(strategies, strategy)
	}
	if len(strategies) == 1 {
		return strategies[0], nil
	}
	return mortgage.CombineOverpayments(strategies...), nil
}

package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-points/pkg/units"
	"github.com/iwvelando/mortgage-points/pkg/validation"
)

// ValidateConfiguration checks the configured loan against every configured
// points option and returns human-readable warnings. Conversion failures
// surface as warnings here; report generation fails loudly on the same
// problems.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	registry, err := c.BuildRegistry()
	if err != nil {
		return append(warnings, fmt.Sprintf("Cannot validate configuration: %v", err))
	}
	loan, err := c.Loan.ToLoan(registry)
	if err != nil {
		return append(warnings, fmt.Sprintf("Cannot validate configuration: %v", err))
	}
	strategy, err := c.ToStrategy(registry)
	if err != nil {
		return append(warnings, fmt.Sprintf("Cannot validate configuration: %v", err))
	}

	if c.Optimizer != nil {
		if err := c.Optimizer.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Optimizer configuration invalid: %v", err))
		}
	}

	// Warnings that do not depend on the points option repeat for every
	// option; keep the first occurrence of each.
	seen := make(map[string]bool)
	for _, points := range c.Points {
		loanWarnings, err := validation.ValidateLoan(c.Loan.Name, loan, units.New(points, units.Point), strategy)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Cannot validate the %g points option: %v", points, err))
			continue
		}
		for _, warning := range loanWarnings {
			if !seen[warning] {
				seen[warning] = true
				warnings = append(warnings, warning)
			}
		}
	}
	return warnings
}

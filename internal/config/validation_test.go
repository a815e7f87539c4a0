package config

import (
	"strings"
	"testing"
)

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{Points: []float64{0, 1, 2}}
	conf.ApplyDefaults()

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings for the default configuration, got %v", warnings)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		expected string
	}{
		{
			name: "Zero effective rate",
			mutate: func(conf *Configuration) {
				conf.Loan.BaseRate = "0.5 percent/year"
				conf.Points = []float64{4}
			},
			expected: "zero",
		},
		{
			name: "Negative down payment",
			mutate: func(conf *Configuration) {
				conf.Loan.HomeValue = "400000 dollars"
			},
			expected: "down payment",
		},
		{
			name: "Unparseable loan term",
			mutate: func(conf *Configuration) {
				conf.Loan.Duration = "a while"
			},
			expected: "Cannot validate configuration",
		},
		{
			name: "Invalid optimizer bounds",
			mutate: func(conf *Configuration) {
				maxPoints := 1.0
				conf.Optimizer = &OptimizerConfig{MinPoints: 3, MaxPoints: &maxPoints}
			},
			expected: "Optimizer configuration invalid",
		},
		{
			name: "Bad overpayment rule",
			mutate: func(conf *Configuration) {
				conf.Overpayments = []OverpaymentConfig{{}}
			},
			expected: "Cannot validate configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{}
			conf.ApplyDefaults()
			tt.mutate(&conf)

			warnings := conf.ValidateConfiguration()
			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expected) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected a warning containing %q, got %v", tt.expected, warnings)
			}
		})
	}
}

func TestValidateConfigurationDeduplicates(t *testing.T) {
	conf := Configuration{}
	conf.ApplyDefaults()
	conf.Loan.HomeValue = "400000 dollars"
	conf.Points = []float64{0, 1, 2}

	warnings := conf.ValidateConfiguration()
	count := 0
	for _, warning := range warnings {
		if strings.Contains(warning, "down payment") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected the down payment warning once across points options, got %d occurrences in %v", count, warnings)
	}
}

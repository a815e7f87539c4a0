package config

// Default loan terms used for any LoanConfig field left unset.
const (
	DefaultLoanAmount            = "500000 dollars"
	DefaultHomeValue             = "600000 dollars"
	DefaultDuration              = "10 years"
	DefaultBaseRate              = "4 percent/year"
	DefaultBaseClosingCosts      = "5000 dollars"
	DefaultCostPerPoint          = "1 percent/point"
	DefaultRateReductionPerPoint = "0.125 percent/(year*point)"
)

// LoanConfig holds the terms of the loan being priced. Every term is a
// quantity string such as "500000 dollars" or "4 percent/year"; the unit
// registry parses them into engine quantities.
type LoanConfig struct {
	Name                  string `yaml:"name,omitempty" mapstructure:"name"`
	LoanAmount            string `yaml:"loanAmount,omitempty" mapstructure:"loanAmount"`
	HomeValue             string `yaml:"homeValue,omitempty" mapstructure:"homeValue"`
	Duration              string `yaml:"duration,omitempty" mapstructure:"duration"`
	BaseRate              string `yaml:"baseRate,omitempty" mapstructure:"baseRate"`
	BaseClosingCosts      string `yaml:"baseClosingCosts,omitempty" mapstructure:"baseClosingCosts"`
	CostPerPoint          string `yaml:"costPerPoint,omitempty" mapstructure:"costPerPoint"`
	RateReductionPerPoint string `yaml:"rateReductionPerPoint,omitempty" mapstructure:"rateReductionPerPoint"`
}

// ApplyDefaults fills in the default terms for any field left unset.
func (lc *LoanConfig) ApplyDefaults() {
	if lc.Name == "" {
		lc.Name = "mortgage"
	}
	if lc.LoanAmount == "" {
		lc.LoanAmount = DefaultLoanAmount
	}
	if lc.HomeValue == "" {
		lc.HomeValue = DefaultHomeValue
	}
	if lc.Duration == "" {
		lc.Duration = DefaultDuration
	}
	if lc.BaseRate == "" {
		lc.BaseRate = DefaultBaseRate
	}
	if lc.BaseClosingCosts == "" {
		lc.BaseClosingCosts = DefaultBaseClosingCosts
	}
	if lc.CostPerPoint == "" {
		lc.CostPerPoint = DefaultCostPerPoint
	}
	if lc.RateReductionPerPoint == "" {
		lc.RateReductionPerPoint = DefaultRateReductionPerPoint
	}
}

// OverpaymentConfig describes one extra-payment rule. Amount adds a fixed
// extra payment each month, BalanceRate adds a fraction of the remaining
// balance, and MinBalance suspends the rule once the balance falls to or
// below the threshold.
type OverpaymentConfig struct {
	Amount      string `yaml:"amount,omitempty" mapstructure:"amount"`
	BalanceRate string `yaml:"balanceRate,omitempty" mapstructure:"balanceRate"`
	MinBalance  string `yaml:"minBalance,omitempty" mapstructure:"minBalance"`
}

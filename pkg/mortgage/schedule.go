package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-points/pkg/constants"
	"github.com/iwvelando/mortgage-points/pkg/units"
	"go.uber.org/zap"
)

// Step holds the values for a single scheduled payment. All money fields are
// plain money quantities for the month the step covers.
type Step struct {
	Index     int  // payment number, starting at 1
	Remaining Loan // snapshot after this payment is applied
	Payment   units.Quantity
	Interest  units.Quantity
	Principal units.Quantity
}

// ScheduleGenerator produces amortization schedules for priced loans.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// PaymentSchedule returns the lazy amortization schedule for the loan priced
// at nPoints. The fixed base payment and the effective rate are computed once
// from the original loan; each step then charges one month of interest on the
// current balance, applies the strategy's extra payment (ZeroOverpayment when
// strategy is nil), and emits a fresh loan snapshot with the balance reduced
// by the principal paid. The schedule ends once the balance falls to ten
// cents or less, with the final payment capped so the balance never goes
// negative.
//
// The schedule is forward-only and not restartable; call PaymentSchedule
// again for a fresh one. If the combined payment does not cover the first
// month's interest the balance grows and the schedule never ends; callers
// own validating that (see pkg/validation).
func (g *ScheduleGenerator) PaymentSchedule(loan Loan, nPoints units.Quantity, strategy OverpaymentStrategy) (*Schedule, error) {
	if strategy == nil {
		strategy = ZeroOverpayment
	}

	rate, err := loan.EffectiveRate(nPoints)
	if err != nil {
		return nil, err
	}
	basePerMonth, err := loan.BasePayment(nPoints)
	if err != nil {
		return nil, err
	}
	base := basePerMonth.Mul(units.New(1, units.Month))
	if _, err := base.Value(units.Dollar); err != nil {
		return nil, fmt.Errorf("base payment: %w", err)
	}

	return &Schedule{
		logger:    g.logger,
		original:  loan,
		rate:      rate,
		base:      base,
		strategy:  strategy,
		remaining: loan,
		epsilon:   units.New(constants.BalanceEpsilonDollars, units.Dollar),
	}, nil
}

// Schedule is a forward-only iterator over amortization steps, in the manner
// of bufio.Scanner: Next advances to the next payment and reports whether one
// was produced, Step returns it, and Err explains a false Next. Stopping
// early is always safe.
type Schedule struct {
	logger    *zap.Logger
	original  Loan
	rate      units.Quantity // effective rate, fixed at construction
	base      units.Quantity // fixed base payment for one month, money
	strategy  OverpaymentStrategy
	remaining Loan
	epsilon   units.Quantity
	index     int
	step      Step
	err       error
	done      bool
}

// Next computes the next payment. It returns false once the remaining
// balance is within ten cents of zero or an error occurred.
func (s *Schedule) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	above, err := s.remaining.LoanAmount.Cmp(s.epsilon)
	if err != nil {
		s.err = fmt.Errorf("remaining balance: %w", err)
		return false
	}
	if above <= 0 {
		s.done = true
		return false
	}

	oneMonth := units.New(1, units.Month)
	interest := s.remaining.LoanAmount.Mul(oneMonth).Mul(s.rate)

	extraPerMonth, err := s.strategy(s.remaining)
	if err != nil {
		s.err = fmt.Errorf("overpayment strategy: %w", err)
		return false
	}
	payment, err := s.base.Add(extraPerMonth.Mul(oneMonth))
	if err != nil {
		s.err = fmt.Errorf("payment: %w", err)
		return false
	}
	principal, err := payment.Sub(interest)
	if err != nil {
		s.err = fmt.Errorf("principal: %w", err)
		return false
	}

	// Cap the final payment so the principal retires the balance exactly
	// rather than overshooting into a negative balance.
	overpays, err := principal.Cmp(s.remaining.LoanAmount)
	if err != nil {
		s.err = fmt.Errorf("principal: %w", err)
		return false
	}
	if overpays > 0 {
		s.logger.Debug("capping final payment to retire remaining balance",
			zap.Int("payment", s.index+1),
			zap.Float64("balance", s.remaining.LoanAmount.MustValue(units.Dollar)),
			zap.Float64("uncapped_principal", principal.MustValue(units.Dollar)),
		)
		principal = s.remaining.LoanAmount
		payment, err = principal.Add(interest)
		if err != nil {
			s.err = fmt.Errorf("payment: %w", err)
			return false
		}
	}

	balance, err := s.remaining.LoanAmount.Sub(principal)
	if err != nil {
		s.err = fmt.Errorf("remaining balance: %w", err)
		return false
	}

	s.index++
	s.remaining = s.original.withLoanAmount(balance)
	s.step = Step{
		Index:     s.index,
		Remaining: s.remaining,
		Payment:   payment,
		Interest:  interest,
		Principal: principal,
	}
	return true
}

// Step returns the payment produced by the last successful Next.
func (s *Schedule) Step() Step {
	return s.step
}

// Err returns the first error encountered while iterating, if any.
func (s *Schedule) Err() error {
	return s.err
}

// Materialize drains the schedule into a slice of steps.
func (s *Schedule) Materialize() ([]Step, error) {
	var steps []Step
	for s.Next() {
		steps = append(steps, s.Step())
	}
	return steps, s.Err()
}

// PaymentSchedule is a convenience wrapper around a generator without
// logging.
func PaymentSchedule(loan Loan, nPoints units.Quantity, strategy OverpaymentStrategy) (*Schedule, error) {
	return NewScheduleGenerator(nil).PaymentSchedule(loan, nPoints, strategy)
}

// Package report defines the data structures related to a point-comparison
// report and includes functions for computing the reports.
package report

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-points/internal/config"
	"github.com/iwvelando/mortgage-points/pkg/datetime"
	"github.com/iwvelando/mortgage-points/pkg/mortgage"
	"github.com/iwvelando/mortgage-points/pkg/units"
	"go.uber.org/zap"
)

// Report holds the evaluated points options for one loan.
type Report struct {
	Name        string
	StartDate   string
	DownPayment float64
	Results     []Result
	Optimal     *Optimal
}

// Result holds the outcome of carrying the loan at one points option.
// Money fields are dollars; EffectiveRate is percent per year.
type Result struct {
	Points         float64
	EffectiveRate  float64
	ClosingCosts   float64
	MonthlyPayment float64
	Months         int
	TotalCost      float64
	Schedule       []ScheduleEntry
}

// ScheduleEntry is one month of the amortization schedule. The opening
// entry carries the starting balance with no payment.
type ScheduleEntry struct {
	Date      string
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// Optimal names the cheapest points option found by the optimizer.
type Optimal struct {
	Points    float64
	TotalCost float64
	Months    int
}

// Generate evaluates every configured points option. Defaults are applied
// to the configuration first so a partially specified config still
// describes a complete loan. Schedules are included when the output
// configuration asks for them.
func Generate(logger *zap.Logger, conf *config.Configuration) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	conf.ApplyDefaults()

	registry, err := conf.BuildRegistry()
	if err != nil {
		return nil, err
	}
	loan, err := conf.Loan.ToLoan(registry)
	if err != nil {
		return nil, err
	}
	strategy, err := conf.ToStrategy(registry)
	if err != nil {
		return nil, err
	}

	startDate := conf.StartDate
	if startDate == "" {
		startDate = time.Now().Format(config.DateTimeLayout)
	}

	downPayment, err := loan.DownPayment()
	if err != nil {
		return nil, err
	}
	downDollars, err := downPayment.Value(units.Dollar)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Name:        conf.Loan.Name,
		StartDate:   startDate,
		DownPayment: downDollars,
	}

	generator := mortgage.NewScheduleGenerator(logger)
	for _, points := range conf.Points {
		result, err := evaluate(generator, loan, strategy, startDate, points, conf.Output.Schedule)
		if err != nil {
			return nil, fmt.Errorf("evaluating the %g points option: %w", points, err)
		}
		report.Results = append(report.Results, result)
		logger.Debug("evaluated points option",
			zap.String("op", "report.Generate"),
			zap.Float64("points", points),
			zap.Float64("total_cost", result.TotalCost),
			zap.Int("months", result.Months),
		)
	}

	return report, nil
}

// evaluate prices the loan at one points option.
func evaluate(generator *mortgage.ScheduleGenerator, loan mortgage.Loan, strategy mortgage.OverpaymentStrategy, startDate string, points float64, includeSchedule bool) (Result, error) {
	nPoints := units.New(points, units.Point)
	result := Result{Points: points}

	rate, err := loan.EffectiveRate(nPoints)
	if err != nil {
		return result, err
	}
	result.EffectiveRate, err = rate.Value(units.Percent.Per(units.Year))
	if err != nil {
		return result, err
	}

	closingCosts, err := loan.ActualClosingCosts(nPoints)
	if err != nil {
		return result, err
	}
	result.ClosingCosts, err = closingCosts.Value(units.Dollar)
	if err != nil {
		return result, err
	}

	basePayment, err := loan.BasePayment(nPoints)
	if err != nil {
		return result, err
	}
	result.MonthlyPayment, err = basePayment.Value(units.Dollar.Per(units.Month))
	if err != nil {
		return result, err
	}

	schedule, err := generator.PaymentSchedule(loan, nPoints, strategy)
	if err != nil {
		return result, err
	}
	steps, err := schedule.Materialize()
	if err != nil {
		return result, err
	}
	result.Months = len(steps)

	downPayment, err := loan.DownPayment()
	if err != nil {
		return result, err
	}
	total, err := downPayment.Add(closingCosts)
	if err != nil {
		return result, err
	}
	for _, step := range steps {
		total, err = total.Add(step.Payment)
		if err != nil {
			return result, err
		}
	}
	result.TotalCost, err = total.Value(units.Dollar)
	if err != nil {
		return result, err
	}

	if includeSchedule {
		result.Schedule, err = scheduleEntries(loan, steps, startDate)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// scheduleEntries renders schedule steps into dated rows, starting with an
// opening row that carries the full balance.
func scheduleEntries(loan mortgage.Loan, steps []mortgage.Step, startDate string) ([]ScheduleEntry, error) {
	openingBalance, err := loan.LoanAmount.Value(units.Dollar)
	if err != nil {
		return nil, err
	}
	entries := make([]ScheduleEntry, 0, len(steps)+1)
	entries = append(entries, ScheduleEntry{Date: startDate, Balance: openingBalance})

	for _, step := range steps {
		date, err := datetime.OffsetDate(startDate, config.DateTimeLayout, step.Index)
		if err != nil {
			return nil, err
		}
		entry := ScheduleEntry{Date: date}
		if entry.Payment, err = step.Payment.Value(units.Dollar); err != nil {
			return nil, err
		}
		if entry.Interest, err = step.Interest.Value(units.Dollar); err != nil {
			return nil, err
		}
		if entry.Principal, err = step.Principal.Value(units.Dollar); err != nil {
			return nil, err
		}
		if entry.Balance, err = step.Remaining.LoanAmount.Value(units.Dollar); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Package optimizer searches a points grid for the cheapest way to carry
// the configured loan.
package optimizer

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-points/internal/config"
	"github.com/iwvelando/mortgage-points/internal/report"
	"github.com/iwvelando/mortgage-points/pkg/constants"
	"github.com/iwvelando/mortgage-points/pkg/mathutil"
	"github.com/iwvelando/mortgage-points/pkg/mortgage"
	"github.com/iwvelando/mortgage-points/pkg/units"
	"go.uber.org/zap"
)

// Runner evaluates optimizer grids for one configuration.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
}

// Evaluation is the outcome of carrying the loan at one grid candidate.
type Evaluation struct {
	Points    float64
	TotalCost float64
	Months    int
}

// Result holds the grid evaluations and the winning candidate.
type Result struct {
	Best        Evaluation
	Evaluations []Evaluation
}

// Apply attaches the winning candidate to a report.
func (r *Result) Apply(rep *report.Report) {
	if r == nil || rep == nil {
		return
	}
	rep.Optimal = &report.Optimal{
		Points:    r.Best.Points,
		TotalCost: r.Best.TotalCost,
		Months:    r.Best.Months,
	}
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, conf: conf}, nil
}

// Enabled reports whether the configuration asks for optimization.
func (r *Runner) Enabled() bool {
	return r.conf.Optimizer != nil
}

// Run evaluates the total cost of the loan at every grid candidate and
// returns the cheapest. Candidates within a cent of each other tie, and the
// tie goes to the lower points value so borrowers are not steered into
// buying points with no payoff.
func (r *Runner) Run() (*Result, error) {
	if r.conf.Optimizer == nil {
		return nil, fmt.Errorf("optimizer configuration missing")
	}
	if err := r.conf.Optimizer.Validate(); err != nil {
		return nil, err
	}

	registry, err := r.conf.BuildRegistry()
	if err != nil {
		return nil, err
	}
	loan, err := r.conf.Loan.ToLoan(registry)
	if err != nil {
		return nil, err
	}
	strategy, err := r.conf.ToStrategy(registry)
	if err != nil {
		return nil, err
	}

	grid := r.conf.Optimizer.Grid()
	if len(grid) == 0 {
		return nil, fmt.Errorf("optimizer grid is empty")
	}

	generator := mortgage.NewScheduleGenerator(r.logger)
	evaluations := make([]Evaluation, 0, len(grid))
	bestIndex := -1
	for _, points := range grid {
		nPoints := units.New(points, units.Point)
		total, months, err := generator.TotalCost(loan, nPoints, strategy)
		if err != nil {
			return nil, fmt.Errorf("evaluating the %g points candidate: %w", points, err)
		}
		totalDollars, err := total.Value(units.Dollar)
		if err != nil {
			return nil, err
		}
		monthCount, err := months.Value(units.Month)
		if err != nil {
			return nil, err
		}

		evaluation := Evaluation{
			Points:    points,
			TotalCost: totalDollars,
			Months:    int(math.Round(monthCount)),
		}
		evaluations = append(evaluations, evaluation)
		r.logger.Debug("evaluated optimizer candidate",
			zap.String("op", "optimizer.Run"),
			zap.Float64("points", points),
			zap.Float64("total_cost", evaluation.TotalCost),
			zap.Int("months", evaluation.Months),
		)

		if bestIndex < 0 {
			bestIndex = len(evaluations) - 1
			continue
		}
		best := evaluations[bestIndex]
		if evaluation.TotalCost < best.TotalCost && !mathutil.WithinTolerance(evaluation.TotalCost, best.TotalCost, constants.CurrencyTolerance) {
			bestIndex = len(evaluations) - 1
		}
	}

	result := &Result{Best: evaluations[bestIndex], Evaluations: evaluations}
	r.logger.Info("optimizer selected points",
		zap.String("op", "optimizer.Run"),
		zap.Float64("points", result.Best.Points),
		zap.Float64("total_cost", result.Best.TotalCost),
	)
	return result, nil
}

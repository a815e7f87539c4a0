package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-points/pkg/units"
)

// TotalCost materializes the full payment schedule for the loan priced at
// nPoints and returns the all-in cost (down payment, closing costs, and every
// scheduled payment) together with the schedule length as a time quantity.
func (g *ScheduleGenerator) TotalCost(loan Loan, nPoints units.Quantity, strategy OverpaymentStrategy) (units.Quantity, units.Quantity, error) {
	schedule, err := g.PaymentSchedule(loan, nPoints, strategy)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	steps, err := schedule.Materialize()
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}

	down, err := loan.DownPayment()
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	closing, err := loan.ActualClosingCosts(nPoints)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	total, err := down.Add(closing)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, fmt.Errorf("total cost: %w", err)
	}
	for _, step := range steps {
		total, err = total.Add(step.Payment)
		if err != nil {
			return units.Quantity{}, units.Quantity{}, fmt.Errorf("total cost: %w", err)
		}
	}

	return total, units.New(float64(len(steps)), units.Month), nil
}

// TotalCost is a convenience wrapper around a generator without logging.
func TotalCost(loan Loan, nPoints units.Quantity, strategy OverpaymentStrategy) (units.Quantity, units.Quantity, error) {
	return NewScheduleGenerator(nil).TotalCost(loan, nPoints, strategy)
}

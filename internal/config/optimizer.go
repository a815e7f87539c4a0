package config

import "fmt"

// Defaults applied by Normalize when optimizer bounds are left unset.
const (
	defaultOptimizerMaxPoints  = 4.0
	defaultOptimizerStepPoints = 0.125
)

// OptimizerConfig bounds the search for the cheapest number of discount
// points. Candidates run from MinPoints to MaxPoints inclusive in StepPoints
// increments.
type OptimizerConfig struct {
	MinPoints  float64  `yaml:"minPoints,omitempty" mapstructure:"minPoints"`
	MaxPoints  *float64 `yaml:"maxPoints,omitempty" mapstructure:"maxPoints"`
	StepPoints float64  `yaml:"stepPoints,omitempty" mapstructure:"stepPoints"`
}

// Normalize fills in defaults for any bound left unset.
func (o *OptimizerConfig) Normalize() {
	if o == nil {
		return
	}
	if o.MaxPoints == nil {
		maxPoints := defaultOptimizerMaxPoints
		o.MaxPoints = &maxPoints
	}
	if o.StepPoints == 0 {
		o.StepPoints = defaultOptimizerStepPoints
	}
}

// Validate checks that the bounds describe a non-empty ascending grid.
func (o *OptimizerConfig) Validate() error {
	if o == nil {
		return fmt.Errorf("optimizer configuration cannot be nil")
	}

	o.Normalize()

	if o.MinPoints < 0 {
		return fmt.Errorf("optimizer minPoints %.3f must not be negative", o.MinPoints)
	}
	if *o.MaxPoints < o.MinPoints {
		return fmt.Errorf("optimizer maxPoints %.3f must not be less than minPoints %.3f", *o.MaxPoints, o.MinPoints)
	}
	if o.StepPoints <= 0 {
		return fmt.Errorf("optimizer stepPoints %.3f must be positive", o.StepPoints)
	}
	return nil
}

// Grid expands the bounds into the ascending list of points values to
// evaluate. The maximum bound is included when the step lands on it.
func (o *OptimizerConfig) Grid() []float64 {
	if o == nil {
		return nil
	}
	o.Normalize()
	upper := *o.MaxPoints
	var grid []float64
	for i := 0; ; i++ {
		points := o.MinPoints + float64(i)*o.StepPoints
		if points > upper+o.StepPoints*1e-9 {
			break
		}
		grid = append(grid, points)
	}
	return grid
}

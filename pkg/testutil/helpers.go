// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/mortgage-points/internal/report"
)

// FindResult finds the result for a given points purchase in the results
// slice. Returns a pointer to the result if found, nil otherwise. Points
// values are compared exactly; grid candidates are constructed from the
// same literals the configuration carries, so no tolerance is needed.
func FindResult(results []report.Result, points float64) *report.Result {
	for i := range results {
		if results[i].Points == points {
			return &results[i]
		}
	}
	return nil
}

// CloseTo reports whether got is within tolerance of expected.
func CloseTo(got, expected, tolerance float64) bool {
	return math.Abs(got-expected) <= tolerance
}

package units

import (
	"strings"

	"github.com/iwvelando/mortgage-points/pkg/constants"
)

// Unit is a named scale onto the canonical unit of its dimension. Units are
// immutable values; compound units are built with Mul and Per.
type Unit struct {
	name  string
	dim   Dimension
	scale float64
}

// Built-in units. The canonical units are dollars and months; years scale
// onto months. Percent and Point carry no dimension: percent scales by 1/100
// while a discount point is a counted scalar, so rate-per-point and
// cost-per-point ratios cancel cleanly against point quantities and against
// bare scalars alike.
var (
	Dollar  = Unit{name: "dollars", dim: Dimension{Money: 1}, scale: 1}
	Month   = Unit{name: "months", dim: Dimension{Time: 1}, scale: 1}
	Year    = Unit{name: "years", dim: Dimension{Time: 1}, scale: constants.MonthsPerYear}
	Point   = Unit{name: "points", dim: Dimension{}, scale: 1}
	Percent = Unit{name: "percent", dim: Dimension{}, scale: 1 / constants.PercentageMultiplier}
	One     = Unit{name: "dimensionless", dim: Dimension{}, scale: 1}
)

// Name returns the unit's display name.
func (u Unit) Name() string {
	return u.name
}

// Dimension returns the unit's dimension.
func (u Unit) Dimension() Dimension {
	return u.dim
}

// Mul returns the product unit, e.g. Percent.Mul(Month).
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		name:  u.name + "*" + groupName(v),
		dim:   u.dim.mul(v.dim),
		scale: u.scale * v.scale,
	}
}

// Per returns the quotient unit, e.g. Dollar.Per(Month) for dollars/month.
func (u Unit) Per(v Unit) Unit {
	return Unit{
		name:  u.name + "/" + groupName(v),
		dim:   u.dim.div(v.dim),
		scale: u.scale / v.scale,
	}
}

// groupName parenthesizes compound names so derived names stay unambiguous,
// e.g. percent/(years*points).
func groupName(u Unit) string {
	if strings.ContainsAny(u.name, "*/") {
		return "(" + u.name + ")"
	}
	return u.name
}

// Package units provides dimensionally-checked quantities for financial
// arithmetic. A Quantity pairs a numeric magnitude with a Dimension over the
// base dimensions money and time; addition and subtraction require identical
// dimensions, while multiplication and division combine dimension exponents
// algebraically. Named units (dollars, months, years) scale onto the
// canonical unit of their dimension; percent and discount points are named
// dimensionless units, so a bare scalar and a point-denominated quantity are
// interchangeable in arithmetic.
package units

import (
	"strconv"
	"strings"
)

// Dimension is the exponent vector of a quantity over the base dimensions.
// The zero value is dimensionless. Dimensions are comparable with ==.
type Dimension struct {
	Money int8
	Time  int8
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// mul returns the dimension of a product: exponents add.
func (d Dimension) mul(other Dimension) Dimension {
	return Dimension{
		Money: d.Money + other.Money,
		Time:  d.Time + other.Time,
	}
}

// div returns the dimension of a quotient: exponents subtract.
func (d Dimension) div(other Dimension) Dimension {
	return Dimension{
		Money: d.Money - other.Money,
		Time:  d.Time - other.Time,
	}
}

// String renders the dimension in terms of the canonical units, e.g.
// "dollars", "dollars/months", or "1/months". A dimensionless dimension
// renders as "dimensionless".
func (d Dimension) String() string {
	type axis struct {
		name string
		exp  int8
	}
	axes := []axis{
		{"dollars", d.Money},
		{"months", d.Time},
	}

	var num, den []string
	for _, a := range axes {
		switch {
		case a.exp > 0:
			num = append(num, powName(a.name, a.exp))
		case a.exp < 0:
			den = append(den, powName(a.name, -a.exp))
		}
	}

	if len(num) == 0 && len(den) == 0 {
		return "dimensionless"
	}

	numStr := strings.Join(num, "*")
	if numStr == "" {
		numStr = "1"
	}
	if len(den) == 0 {
		return numStr
	}
	denStr := strings.Join(den, "*")
	if len(den) > 1 {
		denStr = "(" + denStr + ")"
	}
	return numStr + "/" + denStr
}

func powName(name string, exp int8) string {
	if exp == 1 {
		return name
	}
	return name + "^" + strconv.Itoa(int(exp))
}

package units

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDimensionMismatch is returned when an operation combines quantities of
// incompatible dimensions. It is always wrapped with the dimensions involved.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Quantity is an immutable dimensioned value. The magnitude is held in the
// canonical units of its dimension (dollars, months, points); construction
// from a named unit applies that unit's scale.
type Quantity struct {
	mag float64
	dim Dimension
}

// New constructs a Quantity from a magnitude expressed in the given unit.
func New(magnitude float64, u Unit) Quantity {
	return Quantity{mag: magnitude * u.scale, dim: u.dim}
}

// Scalar constructs a dimensionless Quantity.
func Scalar(v float64) Quantity {
	return Quantity{mag: v}
}

// Dimension returns the quantity's dimension.
func (q Quantity) Dimension() Dimension {
	return q.dim
}

// Add returns q + other. The operands must share a dimension.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if q.dim != other.dim {
		return Quantity{}, fmt.Errorf("%w: cannot add %s to %s", ErrDimensionMismatch, other.dim, q.dim)
	}
	return Quantity{mag: q.mag + other.mag, dim: q.dim}, nil
}

// Sub returns q - other. The operands must share a dimension.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if q.dim != other.dim {
		return Quantity{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrDimensionMismatch, other.dim, q.dim)
	}
	return Quantity{mag: q.mag - other.mag, dim: q.dim}, nil
}

// Mul returns the product quantity; dimension exponents add.
func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity{mag: q.mag * other.mag, dim: q.dim.mul(other.dim)}
}

// Div returns the quotient quantity; dimension exponents subtract. Division
// by a zero magnitude follows float64 semantics.
func (q Quantity) Div(other Quantity) Quantity {
	return Quantity{mag: q.mag / other.mag, dim: q.dim.div(other.dim)}
}

// MulScalar returns q scaled by a bare number.
func (q Quantity) MulScalar(f float64) Quantity {
	return Quantity{mag: q.mag * f, dim: q.dim}
}

// Cmp compares two quantities of the same dimension, returning -1, 0, or +1.
func (q Quantity) Cmp(other Quantity) (int, error) {
	if q.dim != other.dim {
		return 0, fmt.Errorf("%w: cannot compare %s with %s", ErrDimensionMismatch, q.dim, other.dim)
	}
	switch {
	case q.mag < other.mag:
		return -1, nil
	case q.mag > other.mag:
		return 1, nil
	default:
		return 0, nil
	}
}

// Value converts the quantity to the given unit and returns the bare
// magnitude. The unit must be dimensionally compatible.
func (q Quantity) Value(u Unit) (float64, error) {
	if q.dim != u.dim {
		return 0, fmt.Errorf("%w: cannot express %s in %s", ErrDimensionMismatch, q.dim, u.name)
	}
	return q.mag / u.scale, nil
}

// MustValue is like Value but panics on dimension mismatch. Intended for
// initialization and tests where the dimension is known.
func (q Quantity) MustValue(u Unit) float64 {
	v, err := q.Value(u)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical magnitude followed by the dimension, e.g.
// "500000 dollars" or "0.0033 1/months". Dimensionless quantities render as
// the bare number.
func (q Quantity) String() string {
	mag := strconv.FormatFloat(q.mag, 'g', -1, 64)
	if q.dim.IsDimensionless() {
		return mag
	}
	return mag + " " + q.dim.String()
}

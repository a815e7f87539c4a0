package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Registry resolves unit names and unit expressions and parses quantity
// strings such as "500000 dollars" or "0.125 percent/(years*points)".
// Construct with NewRegistry; the zero value is not usable.
type Registry struct {
	units map[string]Unit
}

// NewRegistry returns a registry preloaded with the built-in units and their
// common aliases (dollar/usd, month, year, point/dp, percent/pct).
func NewRegistry() *Registry {
	r := &Registry{units: make(map[string]Unit)}
	register := func(u Unit, aliases ...string) {
		r.units[u.name] = u
		for _, a := range aliases {
			r.units[a] = u
		}
	}
	register(Dollar, "dollar", "usd")
	register(Month, "month")
	register(Year, "year")
	register(Point, "point", "dp")
	register(Percent, "pct")
	register(One, "1")
	return r
}

// Define registers name as factor times the unit given by expr, e.g.
// Define("bps", 0.01, "percent"). Redefining an existing name replaces it.
func (r *Registry) Define(name string, factor float64, expr string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("unit name cannot be empty")
	}
	if factor <= 0 {
		return fmt.Errorf("unit %q: scale factor must be positive, got %v", name, factor)
	}
	base, err := r.Unit(expr)
	if err != nil {
		return fmt.Errorf("unit %q: %w", name, err)
	}
	r.units[name] = Unit{name: name, dim: base.dim, scale: factor * base.scale}
	return nil
}

// Unit resolves a unit expression. Expressions combine registered names with
// "*", "/", and parentheses; both operators associate left.
func (r *Registry) Unit(expr string) (Unit, error) {
	p := &exprParser{registry: r, tokens: tokenize(expr)}
	u, err := p.parseExpr()
	if err != nil {
		return Unit{}, fmt.Errorf("invalid unit expression %q: %w", expr, err)
	}
	if !p.done() {
		return Unit{}, fmt.Errorf("invalid unit expression %q: unexpected %q", expr, p.peek())
	}
	return u, nil
}

// Parse parses a quantity string of the form "<number> <unit expression>".
// A bare number parses as a dimensionless quantity.
func (r *Registry) Parse(s string) (Quantity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Quantity{}, fmt.Errorf("empty quantity string")
	}

	numPart := trimmed
	unitPart := ""
	if idx := strings.IndexFunc(trimmed, unicode.IsSpace); idx >= 0 {
		numPart = trimmed[:idx]
		unitPart = strings.TrimSpace(trimmed[idx:])
	}

	mag, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if unitPart == "" {
		return Scalar(mag), nil
	}

	u, err := r.Unit(unitPart)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return New(mag, u), nil
}

// MustParse is like Parse but panics on error. Intended for initialization
// and tests where the quantity string is known to be valid.
func (r *Registry) MustParse(s string) Quantity {
	q, err := r.Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

type exprParser struct {
	registry *Registry
	tokens   []string
	pos      int
}

func (p *exprParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *exprParser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *exprParser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *exprParser) parseExpr() (Unit, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Unit{}, err
	}
	for {
		switch p.peek() {
		case "*":
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return Unit{}, err
			}
			left = left.Mul(right)
		case "/":
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return Unit{}, err
			}
			left = left.Per(right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (Unit, error) {
	tok := p.next()
	switch tok {
	case "":
		return Unit{}, fmt.Errorf("unexpected end of expression")
	case "(":
		u, err := p.parseExpr()
		if err != nil {
			return Unit{}, err
		}
		if closing := p.next(); closing != ")" {
			return Unit{}, fmt.Errorf("expected closing parenthesis, got %q", closing)
		}
		return u, nil
	case ")", "*", "/":
		return Unit{}, fmt.Errorf("unexpected %q", tok)
	default:
		u, ok := p.registry.units[tok]
		if !ok {
			return Unit{}, fmt.Errorf("unknown unit %q", tok)
		}
		return u, nil
	}
}

// tokenize splits a unit expression into names, operators, and parentheses.
func tokenize(expr string) []string {
	var tokens []string
	var name strings.Builder
	flush := func() {
		if name.Len() > 0 {
			tokens = append(tokens, name.String())
			name.Reset()
		}
	}
	for _, r := range expr {
		switch {
		case r == '*' || r == '/' || r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			name.WriteRune(r)
		}
	}
	flush()
	return tokens
}

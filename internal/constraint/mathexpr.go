package constraint

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/notation"
)

// ParseMathShorthand parses a free-form arithmetic expression such as
// "a1+a2+a3=6" into the appropriate MathOp subclass, dispatching on which
// operator the left-hand side uses. The cells' notation order becomes the
// resulting region's order, which matters for the non-commutative
// DifferenceIs/QuotientIs kinds.
func ParseMathShorthand(expr string) (MathOp, error) {
	eq := strings.IndexByte(expr, '=')
	if eq < 0 {
		return MathOp{}, errors.Errorf("constraint: Math shorthand %q has no '='", expr)
	}
	lhs := strings.TrimSpace(expr[:eq])
	rhs := strings.TrimSpace(expr[eq+1:])

	target, err := strconv.Atoi(rhs)
	if err != nil {
		return MathOp{}, errors.Wrapf(err, "constraint: Math shorthand %q has a non-integer target", expr)
	}

	kind, sep, err := detectOperator(lhs)
	if err != nil {
		return MathOp{}, errors.Wrapf(err, "constraint: Math shorthand %q", expr)
	}

	tokens := strings.Split(lhs, sep)
	var region coord.Region
	for _, token := range tokens {
		c, err := notation.ParseCoordinate(strings.TrimSpace(token))
		if err != nil {
			return MathOp{}, errors.Wrapf(err, "constraint: Math shorthand %q", expr)
		}
		region = append(region, c)
	}
	return NewMathOp(kind, coord.New(region...), target), nil
}

func detectOperator(lhs string) (MathKind, string, error) {
	switch {
	case strings.Contains(lhs, "+"):
		return SumKind, "+", nil
	case strings.Contains(lhs, "-"):
		return DifferenceKind, "-", nil
	case strings.Contains(lhs, "*"):
		return ProductKind, "*", nil
	case strings.Contains(lhs, "/"):
		return QuotientKind, "/", nil
	default:
		return 0, "", errors.Errorf("no recognized operator in %q", lhs)
	}
}

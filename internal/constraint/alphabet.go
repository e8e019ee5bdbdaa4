package constraint

import (
	"github.com/pkg/errors"

	"github.com/kenjgibson/puzzle/internal/symbols"
)

// SymbolsAreDigits sets the puzzle's alphabet to the digits "1" through
// Max (default 9) and finishes on its first Apply.
type SymbolsAreDigits struct {
	Max int
}

// NewSymbolsAreDigits returns a SymbolsAreDigits constraint for max
// digits; max <= 0 defaults to 9.
func NewSymbolsAreDigits(max int) SymbolsAreDigits {
	if max <= 0 {
		max = 9
	}
	return SymbolsAreDigits{Max: max}
}

// Apply implements Constraint.
func (c SymbolsAreDigits) Apply(pv PuzzleView) ([]Constraint, error) {
	if c.Max < 1 || c.Max > 9 {
		return nil, errors.Errorf("constraint: SymbolsAreDigits(%d) out of single-digit range", c.Max)
	}
	alphabet := symbols.NewSet()
	for d := 1; d <= c.Max; d++ {
		alphabet = alphabet.With(rune('0' + d))
	}
	if err := pv.SetAlphabet(alphabet); err != nil {
		return nil, err
	}
	return nil, nil
}

// SymbolsAreDigitsByDiameter requires the puzzle to be square, then
// replaces itself with SymbolsAreDigits(size) once the size is known.
type SymbolsAreDigitsByDiameter struct{}

// Apply implements Constraint.
func (c SymbolsAreDigitsByDiameter) Apply(pv PuzzleView) ([]Constraint, error) {
	rows, cols, ok := pv.Size()
	if !ok {
		return []Constraint{c}, nil
	}
	if rows != cols {
		return nil, ErrNonSquare
	}
	return []Constraint{NewSymbolsAreDigits(rows)}, nil
}

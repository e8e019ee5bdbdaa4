package constraint

import "github.com/pkg/errors"

// Configuration errors: fatal, raised at configuration time or on first
// apply, and propagated to the caller.
var (
	// ErrConflictingSize is returned when a constraint supplies a size
	// that disagrees with one already established on the puzzle.
	ErrConflictingSize = errors.New("constraint: conflicting puzzle size")
	// ErrConflictingAlphabet is returned when a constraint supplies an
	// alphabet that disagrees with one already established.
	ErrConflictingAlphabet = errors.New("constraint: conflicting puzzle alphabet")
	// ErrNonSquare is returned by SymbolsAreDigitsByDiameter when the
	// puzzle's established size is not square.
	ErrNonSquare = errors.New("constraint: puzzle is not square")
	// ErrUncoveredCell is returned by AllCellsMustBeCovered when a
	// coordinate falls outside every live MathOp region.
	ErrUncoveredCell = errors.New("constraint: cell not covered by any region")
	// ErrGridTooLarge is returned by EachRowAndColumnIsPermutation when
	// the puzzle's size exceeds the 9x9 chess notation convention.
	ErrGridTooLarge = errors.New("constraint: grid exceeds 9x9 chess notation limit")
)

// Constraint-construction violations: fatal, raised at construction.
var (
	// ErrRegionSymbolMismatch is returned when a permutation region's
	// size does not equal its symbol count.
	ErrRegionSymbolMismatch = errors.New("constraint: region size does not match symbol count")
	// ErrSymbolListLengthMismatch is returned when a RegionSymbolLists
	// entry's length does not equal the region size.
	ErrSymbolListLengthMismatch = errors.New("constraint: symbol list length does not match region size")
)

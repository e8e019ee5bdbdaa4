package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

func newDigitPuzzle(t *testing.T, rows, cols, max int) *fakePuzzle {
	pv := newFakePuzzle(rows, cols)
	alphabet := symbols.NewSet()
	for d := 1; d <= max; d++ {
		alphabet = alphabet.With(rune('0' + d))
	}
	require.NoError(t, pv.SetAlphabet(alphabet))
	return pv
}

func TestMathOpSingleValueSum(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 1, 9)
	loc := coord.Coordinate{0, 0}
	c := SumIs(coord.New(loc), 7)

	result, err := c.Apply(pv)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.True(t, pv.g.At(loc).Equal(symbols.NewSet('7')))
	assert.Contains(t, pv.techniqueLog, "singleValue")
}

func TestMathOpSingleValueSkipsNonCommutative(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 1, 9)
	loc := coord.Coordinate{0, 0}
	c := DifferenceIs(coord.New(loc), 7)

	result, err := c.Apply(pv)
	require.NoError(t, err)
	assert.Equal(t, []Constraint{c}, result)
}

func TestMathOpRemoveKnownSum(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 2, 9)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}
	pv.g.SetCell(a, symbols.NewSet('3'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2', '3', '4', '5', '6', '7', '8', '9'))

	c := SumIs(coord.New(a, b), 10)
	result, err := c.Apply(pv)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Contains(t, pv.techniqueLog, "removeKnown")
	got := result[0].(MathOp)
	assert.Equal(t, SumKind, got.Kind)
	assert.Equal(t, 7, got.Target)
	assert.True(t, got.Region.Equal(coord.New(b)))
}

func TestMathOpRemoveKnownDifferenceBothOrientations(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 2, 9)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}
	pv.g.SetCell(a, symbols.NewSet('5'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2', '3', '4', '5', '6', '7', '8', '9'))

	// DifferenceIs(a,b) = target: a-b=target.
	c := DifferenceIs(coord.New(a, b), 2)
	result, err, fired := c.techRemoveKnown(pv)
	require.NoError(t, err)
	require.True(t, fired)
	// With a known, inverses = {inv(target,a)=target+a=7} U {op(a,target)=a-target=3}
	// => 2 inverses remain, so a RegionSymbolsConstraint should result.
	require.Len(t, result, 1)
	rsc := result[0].(RegionSymbolsConstraint)
	assert.True(t, rsc.Region.Equal(coord.New(b)))
	assert.True(t, rsc.Symbols.Equal(symbols.NewSet('7', '3')))
}

func TestMathOpTwoCellOperatorEliminatesUnsupported(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 2, 9)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}
	pv.g.IntersectAt(a, symbols.NewSet('1', '2', '3'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2'))

	// SumIs(a,b)=4: valid pairs (2,2)x invalid same-cell reuse aside,
	// (1,3) no 3 in b, (2,2) valid, (3,1) valid (b has 1).
	c := SumIs(coord.New(a, b), 4)
	result, err, fired := c.techTwoCellOperator(pv)
	require.NoError(t, err)
	require.True(t, fired)
	require.Len(t, result, 1)
	// a: 1 needs b=3 (absent) -> drop 1; 2 needs b=2 (present) -> keep; 3 needs b=1 (present) -> keep
	assert.True(t, pv.g.At(a).Equal(symbols.NewSet('2', '3')))
	assert.Contains(t, pv.techniqueLog, "twoCellOperator")
}

func TestMathOpTwoCellOperatorDifferenceAdmitsBothOrientations(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 2, 9)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}
	pv.g.IntersectAt(a, symbols.NewSet('1', '2', '3'))
	pv.g.SetCell(b, symbols.NewSet('2'))

	// DifferenceIs(a,b)=1 on an unordered two-cell region admits a-b=1
	// (a=3) and b-a=1 (a=1); only a=2 (a-b=0, b-a=0) is invalid.
	c := DifferenceIs(coord.New(a, b), 1)
	result, err, fired := c.techTwoCellOperator(pv)
	require.NoError(t, err)
	require.True(t, fired)
	require.Len(t, result, 1)
	assert.True(t, pv.g.At(a).Equal(symbols.NewSet('1', '3')))
	assert.Contains(t, pv.techniqueLog, "twoCellOperator")
}

func TestMathOpTwoCellOperatorQuotientAdmitsBothOrientations(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 2, 9)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}
	pv.g.IntersectAt(a, symbols.NewSet('2', '3', '4'))
	pv.g.SetCell(b, symbols.NewSet('6'))

	// QuotientIs(a,b)=2: a=3 is only valid via the reverse orientation
	// (b/a=6/3=2); a=2 and a=4 have no valid partner in either direction.
	c := QuotientIs(coord.New(a, b), 2)
	result, err, fired := c.techTwoCellOperator(pv)
	require.NoError(t, err)
	require.True(t, fired)
	require.Len(t, result, 1)
	assert.True(t, pv.g.At(a).Equal(symbols.NewSet('3')))
	assert.Contains(t, pv.techniqueLog, "twoCellOperator")
}

func TestMathOpPrimeFactorsFiresOnceAndProducesSymbolLists(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 2, 9)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}

	c := ProductIs(coord.New(a, b), 6)
	result, err, fired := c.techPrimeFactors(pv)
	require.NoError(t, err)
	require.True(t, fired)
	require.Len(t, result, 2)

	self := result[0].(MathOp)
	assert.True(t, self.FactoredOnce)

	lists := result[1].(RegionSymbolLists)
	assert.True(t, lists.Region.Equal(coord.New(a, b)))
	assert.NotEmpty(t, lists.SymbolLists)

	_, _, firedAgain := self.techPrimeFactors(pv)
	assert.False(t, firedAgain)
}

func TestMathOpEmptyRegionDiscards(t *testing.T) {
	pv := newDigitPuzzle(t, 1, 1, 9)
	c := SumIs(nil, 5)
	result, err := c.Apply(pv)
	require.NoError(t, err)
	assert.Empty(t, result)
}

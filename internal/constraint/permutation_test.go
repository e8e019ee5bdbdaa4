package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

func TestRegionPermutesSymbolsConstructionValidatesSize(t *testing.T) {
	_, err := NewRegionPermutesSymbols(coord.New(coord.Coordinate{0, 0}), symbols.NewSet('1', '2'))
	assert.ErrorIs(t, err, ErrRegionSymbolMismatch)
}

func TestRegionPermutesSymbolsEmptyRegionDiscards(t *testing.T) {
	pv := newFakePuzzle(1, 1)
	c := RegionPermutesSymbols{Region: nil, Symbols: symbols.NewSet()}
	result, err := c.Apply(pv)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRegionPermutesSymbolsSoloSetsCell(t *testing.T) {
	pv := newFakePuzzle(1, 1)
	loc := coord.Coordinate{0, 0}
	c, err := NewRegionPermutesSymbols(coord.New(loc), symbols.NewSet('5'))
	require.NoError(t, err)

	result, err := c.Apply(pv)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.True(t, pv.g.At(loc).Equal(symbols.NewSet('5')))
	assert.Contains(t, pv.techniqueLog, "solo")
}

func TestRegionPermutesSymbolsFilterSolution(t *testing.T) {
	pv := newFakePuzzle(1, 2)
	a, b := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}
	pv.g.IntersectAt(a, symbols.NewSet('1', '2', '3'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2', '3'))

	c, err := NewRegionPermutesSymbols(coord.New(a, b), symbols.NewSet('1', '2'))
	require.NoError(t, err)

	result, err := c.Apply(pv)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, pv.g.At(a).Equal(symbols.NewSet('1', '2')))
	assert.True(t, pv.g.At(b).Equal(symbols.NewSet('1', '2')))
	assert.Contains(t, pv.techniqueLog, "filterSolution")
}

func TestRegionPermutesSymbolsPartitionSplits(t *testing.T) {
	pv := newFakePuzzle(1, 3)
	a, b, c3 := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}, coord.Coordinate{0, 2}
	pv.g.IntersectAt(a, symbols.NewSet('1', '2'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2'))
	pv.g.IntersectAt(c3, symbols.NewSet('1', '2', '3'))

	c, err := NewRegionPermutesSymbols(coord.New(a, b, c3), symbols.NewSet('1', '2', '3'))
	require.NoError(t, err)

	result, err := c.Apply(pv)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Contains(t, pv.techniqueLog, "partition")
	// the remainder cell must have had {1,2} eliminated
	assert.True(t, pv.g.At(c3).Equal(symbols.NewSet('3')))
}

func TestRegionPermutesSymbolsMisfitSetsUniqueCell(t *testing.T) {
	// exercise the misfit technique directly: it fires on whichever
	// symbol is a candidate at exactly one coordinate of the region,
	// independent of the candidate-set grouping partition looks for.
	pv := newFakePuzzle(1, 3)
	a, b, c3 := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}, coord.Coordinate{0, 2}
	pv.g.IntersectAt(a, symbols.NewSet('1', '2'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2'))
	pv.g.IntersectAt(c3, symbols.NewSet('1', '2', '3'))

	c, err := NewRegionPermutesSymbols(coord.New(a, b, c3), symbols.NewSet('1', '2', '3'))
	require.NoError(t, err)

	result, err, fired := c.techMisfit(pv)
	require.NoError(t, err)
	require.True(t, fired)
	require.Len(t, result, 1)
	assert.Contains(t, pv.techniqueLog, "misfit")
	assert.True(t, pv.g.At(c3).Equal(symbols.NewSet('3')))

	got := result[0].(RegionPermutesSymbols)
	assert.True(t, got.Region.Equal(coord.New(a, b)))
	assert.True(t, got.Symbols.Equal(symbols.NewSet('1', '2')))
}

func TestRegionPermutesSymbolsBorrowEliminatesFromSuperset(t *testing.T) {
	a, b, c3 := coord.Coordinate{0, 0}, coord.Coordinate{0, 1}, coord.Coordinate{0, 2}
	pv := newFakePuzzle(1, 3)
	pv.g.IntersectAt(a, symbols.NewSet('1', '2', '3'))
	pv.g.IntersectAt(b, symbols.NewSet('1', '2', '3'))
	pv.g.IntersectAt(c3, symbols.NewSet('1', '2', '3'))

	whole, err := NewRegionPermutesSymbols(coord.New(a, b, c3), symbols.NewSet('1', '2', '3'))
	require.NoError(t, err)
	sub, err := NewRegionPermutesSymbols(coord.New(a, b), symbols.NewSet('1', '2'))
	require.NoError(t, err)
	pv.live = []Constraint{whole, sub}

	result, err := whole.Apply(pv)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Contains(t, pv.techniqueLog, "borrow")
	assert.True(t, pv.g.At(c3).Equal(symbols.NewSet('3')))
	got := result[0].(RegionPermutesSymbols)
	assert.True(t, got.Region.Equal(coord.New(c3)))
	assert.True(t, got.Symbols.Equal(symbols.NewSet('3')))
}

func TestRegionIsCompletePermutationDefersThenExpands(t *testing.T) {
	region := coord.New(coord.Coordinate{0, 0}, coord.Coordinate{0, 1})
	c := RegionIsCompletePermutation{Region: region}

	pv := &fakePuzzle{}
	result, err := c.Apply(pv)
	require.NoError(t, err)
	assert.Equal(t, []Constraint{c}, result)

	pv.SetAlphabet(symbols.NewSet('1', '2'))
	result, err = c.Apply(pv)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, RegionPermutesSymbols{Region: region, Symbols: symbols.NewSet('1', '2')}, result[0])
}

func TestEachRowAndColumnIsPermutationExpands(t *testing.T) {
	pv := newFakePuzzle(2, 2)
	result, err := EachRowAndColumnIsPermutation{}.Apply(pv)
	require.NoError(t, err)
	// 2 rows + 2 cols
	require.Len(t, result, 4)
}

func TestEachRowAndColumnIsPermutationRejectsOversize(t *testing.T) {
	pv := newFakePuzzle(10, 10)
	_, err := EachRowAndColumnIsPermutation{}.Apply(pv)
	assert.ErrorIs(t, err, ErrGridTooLarge)
}

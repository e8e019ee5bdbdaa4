package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenjgibson/puzzle/internal/coord"
)

func TestParseMathShorthandSum(t *testing.T) {
	m, err := ParseMathShorthand("a1+a2+a3=6")
	require.NoError(t, err)
	assert.Equal(t, SumKind, m.Kind)
	assert.Equal(t, 6, m.Target)
	assert.True(t, m.Region.Equal(coord.New(
		coord.Coordinate{0, 0}, coord.Coordinate{0, 1}, coord.Coordinate{0, 2},
	)))
}

func TestParseMathShorthandDifferencePreservesOrder(t *testing.T) {
	m, err := ParseMathShorthand("b2-a1=1")
	require.NoError(t, err)
	assert.Equal(t, DifferenceKind, m.Kind)
	assert.Equal(t, coord.Coordinate{1, 1}, m.Region[0])
	assert.Equal(t, coord.Coordinate{0, 0}, m.Region[1])
}

func TestParseMathShorthandRejectsMissingEquals(t *testing.T) {
	_, err := ParseMathShorthand("a1+a2")
	assert.Error(t, err)
}

func TestParseMathShorthandProductAndQuotient(t *testing.T) {
	m, err := ParseMathShorthand("a1*a2=12")
	require.NoError(t, err)
	assert.Equal(t, ProductKind, m.Kind)

	m2, err := ParseMathShorthand("a1/a2=3")
	require.NoError(t, err)
	assert.Equal(t, QuotientKind, m2.Kind)
}

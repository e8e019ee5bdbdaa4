//
// Copyright 2020, 2021 Kenneth J. Gibson
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenjgibson/puzzle/internal/constraint"
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

func mustRegionPermutesSymbols(t *testing.T, region coord.Region, syms symbols.Set) constraint.RegionPermutesSymbols {
	c, err := constraint.NewRegionPermutesSymbols(region, syms)
	require.NoError(t, err)
	return c
}

func newLatinSquare(t *testing.T, n int) *Puzzle {
	alphabet := digits(n)
	var cs []constraint.Constraint
	for r := 0; r < n; r++ {
		row := make([]coord.Coordinate, 0, n)
		for c := 0; c < n; c++ {
			row = append(row, coord.Coordinate{Row: r, Col: c})
		}
		cs = append(cs, mustRegionPermutesSymbols(t, coord.New(row...), alphabet))
	}
	for c := 0; c < n; c++ {
		col := make([]coord.Coordinate, 0, n)
		for r := 0; r < n; r++ {
			col = append(col, coord.Coordinate{Row: r, Col: c})
		}
		cs = append(cs, mustRegionPermutesSymbols(t, coord.New(col...), alphabet))
	}

	p := New(cs...)
	require.NoError(t, p.SetSize(n, n))
	require.NoError(t, p.SetAlphabet(alphabet))
	return p
}

func TestSolveResolvesByPropagationAlone(t *testing.T) {
	p := newLatinSquare(t, 2)
	p.g.SetCell(coord.Coordinate{Row: 0, Col: 0}, symbols.NewSet('1'))

	solved, err := p.Solve()
	require.NoError(t, err)
	assert.True(t, solved)

	assert.True(t, p.g.At(coord.Coordinate{Row: 0, Col: 0}).Equal(symbols.NewSet('1')))
	assert.True(t, p.g.At(coord.Coordinate{Row: 0, Col: 1}).Equal(symbols.NewSet('2')))
	assert.True(t, p.g.At(coord.Coordinate{Row: 1, Col: 0}).Equal(symbols.NewSet('2')))
	assert.True(t, p.g.At(coord.Coordinate{Row: 1, Col: 1}).Equal(symbols.NewSet('1')))

	stats := p.Stats()
	assert.Equal(t, 0, stats.Plies)
}

func TestSolveFallsBackToSearchWhenPropagationStalls(t *testing.T) {
	// A bare 3x3 Latin square with no initial clue stalls pure propagation
	// (every row/col permutation constraint keeps all 3 symbols live for
	// every cell) and must be resolved via the MRV search fallback.
	p := newLatinSquare(t, 3)

	solved, err := p.Solve()
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, p.IsSolved())

	stats := p.Stats()
	assert.Greater(t, stats.Plies, 0)
	assert.Contains(t, stats.Techniques, guessTechnique)

	seen := make(map[rune]bool)
	for c := 0; c < 3; c++ {
		seen[rune(p.g.At(coord.Coordinate{Row: 0, Col: c}).Members()[0])] = true
	}
	assert.Len(t, seen, 3)
}

func TestReduceConstraintsIsIdempotentOnSecondCall(t *testing.T) {
	p := newLatinSquare(t, 2)
	p.g.SetCell(coord.Coordinate{Row: 0, Col: 0}, symbols.NewSet('1'))

	for {
		changed, err := p.reduceConstraints()
		require.NoError(t, err)
		if !changed {
			break
		}
	}

	changed, err := p.reduceConstraints()
	require.NoError(t, err)
	assert.False(t, changed)
}

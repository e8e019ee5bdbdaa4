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
	"reflect"

	"github.com/kenjgibson/puzzle/internal/constraint"
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

const (
	expandTechnique = "expand"
	guessTechnique  = "guess"
)

// reduceConstraints runs one propagation pass: clear the grid's dirty flag,
// expand any remaining uninitialized cells now that size and alphabet are
// known, then walk a snapshot of the live constraint list in order,
// replacing it with the concatenation of what each constraint returns. It
// reports whether anything changed (the constraint list or the grid), the
// pass driver's fixed-point signal.
func (p *Puzzle) reduceConstraints() (bool, error) {
	p.stats.Passes++

	if p.g != nil {
		p.g.ClearDirty()
	}
	p.expandUninitialized()

	snapshot := p.live
	var next []constraint.Constraint
	changed := false

	for _, c := range snapshot {
		result, err := c.Apply(p)
		if err != nil {
			return false, err
		}
		if !sameSingleton(result, c) {
			changed = true
		}
		next = append(next, result...)
	}
	p.live = next

	if p.g != nil && p.g.Dirty() {
		changed = true
	}
	return changed, nil
}

// sameSingleton reports whether result is exactly []Constraint{self}, the
// "deferred, nothing changed" convention every constraint's Apply follows
// when none of its techniques fire. Constraint values hold slices and maps
// internally (regions, candidate sets), so structural comparison rather
// than == is required here.
func sameSingleton(result []constraint.Constraint, self constraint.Constraint) bool {
	return len(result) == 1 && reflect.DeepEqual(result[0], self)
}

// expandUninitialized replaces every still-'*' cell with the full alphabet,
// once size and alphabet are both known, logging the event a single time
// regardless of how many cells it touches.
func (p *Puzzle) expandUninitialized() {
	if p.g == nil || !p.alphaKnown {
		return
	}
	if n := p.g.ExpandUninitialized(p.alphabet); n > 0 {
		p.LogTechnique(expandTechnique)
	}
}

// Solve drives the Puzzle to a fixed point by propagation, then falls back
// to depth-first search if inference stalls without having solved or
// disproven the puzzle. It returns whether a solution was found.
func (p *Puzzle) Solve() (bool, error) {
	for {
		changed, err := p.reduceConstraints()
		if err != nil {
			return false, err
		}
		if !changed || p.isFinished() {
			break
		}
	}
	if !p.isFinished() {
		if err := p.search(); err != nil {
			return false, err
		}
	}
	return p.IsSolved(), nil
}

// search implements the MRV (minimum remaining values) backtracking
// heuristic: find the cell with the fewest live candidates (size >= 2,
// ties broken by keeping the last coordinate encountered in scan order for
// a deterministic, regression-stable guess order), then try each of its
// candidates in turn on a deep-copied branch.
func (p *Puzzle) search() error {
	if !p.stats.searched {
		p.stats.FirstPasses = p.stats.Passes
		p.stats.searched = true
	}
	p.stats.Plies++

	loc, candidates, ok := p.pickGuessCell()
	if !ok {
		return nil
	}

	for _, s := range candidates.Members() {
		branch := p.Copy()
		branch.g.SetCell(loc, symbols.NewSet(s))
		branch.LogTechnique(guessTechnique)

		solved, err := branch.Solve()
		if err != nil {
			return err
		}
		if solved {
			p.g = branch.g
			p.live = branch.live
			p.stats.absorb(branch.stats)
			return nil
		}
		p.stats.absorb(branch.stats)
	}
	return nil
}

// pickGuessCell scans the grid for the minimum-size (>=2) candidate set,
// recording the *last* coordinate seen at each size so ties resolve
// deterministically.
func (p *Puzzle) pickGuessCell() (coord.Coordinate, symbols.Set, bool) {
	bestSize := 0
	var bestLoc coord.Coordinate
	var bestSet symbols.Set
	found := false

	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			loc := coord.Coordinate{Row: r, Col: c}
			set := p.g.At(loc)
			n := set.Size()
			if n < 2 {
				continue
			}
			if !found || n <= bestSize {
				bestSize = n
				bestLoc = loc
				bestSet = set
				found = true
			}
		}
	}
	return bestLoc, bestSet, found
}

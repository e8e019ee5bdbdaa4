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

// Package constraint implements the closed taxonomy of puzzle constraints:
// alphabet constraints, the Latin-square permutation family, arithmetic
// cage constraints, and the symbol-list/coverage constraints they lower
// into. Every constraint exposes a single Apply operation that returns the
// constraints that should replace it, following the convention described
// on the Constraint interface below.
package constraint

import (
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// Constraint is the unit of inference the driver schedules each pass.
//
// Apply returns the constraints that should replace this one:
//
//   - an empty (or nil) list with a nil error means this constraint has
//     finished and should be removed;
//   - a list containing this constraint itself means it is unfinished and
//     must be retained for later passes (any other members are additional
//     constraints to add alongside it);
//   - a non-empty list not containing this constraint means it retires and
//     is replaced by the returned ones.
//
// A constraint is deferred when it returns []Constraint{self} because
// information it needs (the alphabet, the grid, initialization of its
// region) is not yet available. Deferral never returns an error.
//
// Apply returning a non-nil error signals a fatal configuration or
// construction error that must propagate to the caller; runtime
// infeasibility (a technique eliminating every candidate from a cell) is
// not reported as an error here — it surfaces through the grid's
// IsUnsolvable and is handled by the driver's search.
type Constraint interface {
	Apply(pv PuzzleView) ([]Constraint, error)
}

// PuzzleView is the narrow surface of the Puzzle aggregate a constraint is
// allowed to read and mutate during Apply. It exists so package puzzle
// can own the Puzzle type while internal/constraint stays free of an
// import cycle back to it.
type PuzzleView interface {
	// Size returns the puzzle's established (rows, cols), or ok=false if
	// not yet known.
	Size() (rows, cols int, ok bool)
	// SetSize establishes (rows, cols). Returns an error if a different
	// size was already established.
	SetSize(rows, cols int) error

	// Alphabet returns the puzzle's established symbol alphabet, or
	// ok=false if not yet known.
	Alphabet() (symbols.Set, bool)
	// SetAlphabet establishes the alphabet. Returns an error if a
	// different alphabet was already established.
	SetAlphabet(alphabet symbols.Set) error

	// Grid returns the puzzle's grid, or nil if the size is not yet
	// known (the grid is created the moment SetSize succeeds).
	Grid() GridView

	// LiveConstraints returns the puzzle's current constraint list, for
	// techniques (borrow, intersection) that inspect sibling constraints.
	LiveConstraints() []Constraint

	// LogTechnique records that a technique with the given stable name
	// fired this pass, and invokes the technique-used hook if installed.
	LogTechnique(name string)
}

// GridView is the subset of *grid.Grid's API a constraint touches.
// Constraints never hold a *grid.Grid directly so that package puzzle's
// concrete grid type can evolve without widening this package's surface.
type GridView interface {
	At(loc coord.Coordinate) symbols.Set
	SetCell(loc coord.Coordinate, set symbols.Set) bool
	EliminateAt(loc coord.Coordinate, bad symbols.Set) bool
	EliminateThroughout(region coord.Region, bad symbols.Set) coord.Region
	IntersectAt(loc coord.Coordinate, allowed symbols.Set) bool
	IntersectThroughout(region coord.Region, allowed symbols.Set) coord.Region
	IndexSymbolsIn(region coord.Region) GridSymbolIndex
	IsInitializedAt(loc coord.Coordinate) bool
	IsInitializedThroughout(region coord.Region) bool
}

// GridSymbolIndex mirrors grid.SymbolIndex's read surface.
type GridSymbolIndex interface {
	Order() []rune
	At(sym rune) coord.Region
}

// technique is one named inference step contributed by a constraint's
// Apply. It reports fired=false when it found nothing to do, in which
// case Apply tries the next technique in the ordered list.
type technique func(pv PuzzleView) (result []Constraint, err error, fired bool)

// runTechniques walks techniques in order, returning the first fired
// result. If none fire, the default deferral []Constraint{self} is
// returned.
func runTechniques(self Constraint, techniques []technique, pv PuzzleView) ([]Constraint, error) {
	for _, t := range techniques {
		result, err, fired := t(pv)
		if err != nil {
			return nil, err
		}
		if fired {
			return result, nil
		}
	}
	return []Constraint{self}, nil
}

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

// Package puzzle hosts the Puzzle aggregate: grid size, symbol alphabet,
// candidate grid, live constraint list, and the propagation/search driver
// that reduces a Puzzle to a solved grid or proves it unsolvable.
package puzzle

import (
	"github.com/pkg/errors"

	"github.com/kenjgibson/puzzle/internal/constraint"
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/grid"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// TechniqueCallback is invoked by name every time a technique fires during
// propagation or search, including the synthetic "guess" technique search
// logs on each branch attempt.
type TechniqueCallback func(name string)

// SolutionCallback is invoked every time a cell's candidate set changes.
type SolutionCallback func(loc coord.Coordinate, old, new symbols.Set)

// Stats is the record returned alongside a solve outcome.
type Stats struct {
	Passes      int
	Techniques  map[string]int
	FirstPasses int
	Plies       int
	searched    bool
}

func newStats() Stats {
	return Stats{Techniques: make(map[string]int)}
}

func (s *Stats) logTechnique(name string) {
	s.Techniques[name]++
}

// absorb merges a child branch's stats into the parent's, additively, per
// the requirement that technique counts and plies reflect total work done
// across every branch search explores, not just the winning one.
func (s *Stats) absorb(child Stats) {
	s.Passes += child.Passes
	for name, n := range child.Techniques {
		s.Techniques[name] += n
	}
	if child.searched {
		if !s.searched {
			s.FirstPasses = child.FirstPasses
			s.searched = true
		}
		s.Plies += child.Plies
	}
}

// Puzzle is the mutable aggregate that configuration builds and the driver
// reduces. Its zero value has unknown size and alphabet; SetSize/SetAlphabet
// establish them exactly once, mirroring the teacher's "config populates a
// grid, solver drives it to completion" shape generalized to arbitrary
// constraint taxonomies.
type Puzzle struct {
	rows, cols int
	sizeKnown  bool
	alphabet   symbols.Set
	alphaKnown bool
	g          *grid.Grid
	live       []constraint.Constraint
	stats      Stats

	techniqueCB TechniqueCallback
	solutionCB  SolutionCallback
}

var _ constraint.PuzzleView = (*Puzzle)(nil)

// New returns an empty Puzzle configured with the given constraints. Size
// is established by SetSize or SeedInitial (e.g. from a configuration
// document's dimensions or initial key); the alphabet is established
// lazily by a constraint such as SymbolsAreDigits on its first Apply.
func New(constraints ...constraint.Constraint) *Puzzle {
	return &Puzzle{
		live:  append([]constraint.Constraint(nil), constraints...),
		stats: newStats(),
	}
}

// OnTechnique registers the technique-fired hook.
func (p *Puzzle) OnTechnique(cb TechniqueCallback) { p.techniqueCB = cb }

// OnSolution registers the cell-change hook. It must be set before the grid
// is created (before Size/SetSize establishes dimensions) to observe every
// mutation from the first one.
func (p *Puzzle) OnSolution(cb SolutionCallback) {
	p.solutionCB = cb
	if p.g != nil {
		p.wireChangeHook()
	}
}

func (p *Puzzle) wireChangeHook() {
	if p.solutionCB == nil {
		return
	}
	p.g.SetChangeHook(func(loc coord.Coordinate, old, new symbols.Set) {
		p.solutionCB(loc, old, new)
	})
}

// Size implements constraint.PuzzleView.
func (p *Puzzle) Size() (rows, cols int, known bool) {
	return p.rows, p.cols, p.sizeKnown
}

// SetSize implements constraint.PuzzleView. It instantiates the grid the
// moment size becomes known, all-uninitialized, so AllCellsMustBeCovered and
// the pass driver's expansion step never need to special-case a nil grid.
func (p *Puzzle) SetSize(rows, cols int) error {
	if p.sizeKnown {
		if p.rows != rows || p.cols != cols {
			return errors.Wrapf(constraint.ErrConflictingSize, "already %dx%d, got %dx%d", p.rows, p.cols, rows, cols)
		}
		return nil
	}
	p.rows, p.cols = rows, cols
	p.sizeKnown = true
	p.g = grid.New(rows, cols)
	p.wireChangeHook()
	return nil
}

// SeedInitial establishes size from the given grid and copies its non-'*'
// cells in as fixed starting values. If a size is already established it
// must match the initial grid's; it is typically called right after New,
// before the propagation loop starts, matching how a configuration
// document's "initial" key supplies a partially-filled starting grid
// alongside the constraint list.
func (p *Puzzle) SeedInitial(initial *grid.Grid) error {
	if err := p.SetSize(initial.Rows(), initial.Cols()); err != nil {
		return err
	}
	for r := 0; r < initial.Rows(); r++ {
		for c := 0; c < initial.Cols(); c++ {
			loc := coord.Coordinate{Row: r, Col: c}
			v := initial.At(loc)
			if v.Contains(symbols.Uninitialized) {
				continue
			}
			p.g.SetCell(loc, v)
		}
	}
	return nil
}

// Alphabet implements constraint.PuzzleView.
func (p *Puzzle) Alphabet() (symbols.Set, bool) {
	return p.alphabet, p.alphaKnown
}

// SetAlphabet implements constraint.PuzzleView.
func (p *Puzzle) SetAlphabet(s symbols.Set) error {
	if p.alphaKnown {
		if !p.alphabet.Equal(s) {
			return errors.Wrap(constraint.ErrConflictingAlphabet, "alphabet already set")
		}
		return nil
	}
	p.alphabet = s
	p.alphaKnown = true
	return nil
}

// Grid implements constraint.PuzzleView, returning nil until SetSize has run.
func (p *Puzzle) Grid() constraint.GridView {
	if p.g == nil {
		return nil
	}
	return constraint.GridAdapter{Grid: p.g}
}

// LiveConstraints implements constraint.PuzzleView.
func (p *Puzzle) LiveConstraints() []constraint.Constraint {
	return p.live
}

// Render returns the grid's current state in grid.Render's bracketed
// format, one row per line. It returns "" until SetSize has run.
func (p *Puzzle) Render() string {
	if p.g == nil {
		return ""
	}
	return p.g.Render()
}

// LogTechnique implements constraint.PuzzleView.
func (p *Puzzle) LogTechnique(name string) {
	p.stats.logTechnique(name)
	if p.techniqueCB != nil {
		p.techniqueCB(name)
	}
}

// Stats returns a copy of the accumulated statistics.
func (p *Puzzle) Stats() Stats {
	out := p.stats
	out.Techniques = make(map[string]int, len(p.stats.Techniques))
	for k, v := range p.stats.Techniques {
		out.Techniques[k] = v
	}
	return out
}

// IsSolved reports whether every cell holds exactly one symbol.
func (p *Puzzle) IsSolved() bool {
	if p.g == nil {
		return false
	}
	return p.g.IsSolved()
}

// IsUnsolvable reports whether some cell's candidate set has collapsed to empty.
func (p *Puzzle) IsUnsolvable() bool {
	if p.g == nil {
		return false
	}
	return p.g.IsUnsolvable()
}

func (p *Puzzle) isFinished() bool {
	return p.IsSolved() || p.IsUnsolvable()
}

// Copy deep-copies the Puzzle for a search branch. Per the design decision
// recorded in DESIGN.md, the copy's statistics start fresh (zeroed) so the
// driver can additively absorb exactly the work that branch performed,
// rather than double-counting the parent's pre-existing counts.
func (p *Puzzle) Copy() *Puzzle {
	cp := &Puzzle{
		rows:       p.rows,
		cols:       p.cols,
		sizeKnown:  p.sizeKnown,
		alphabet:   p.alphabet,
		alphaKnown: p.alphaKnown,
		live:       append([]constraint.Constraint(nil), p.live...),
		stats:      newStats(),
	}
	cp.techniqueCB, cp.solutionCB = p.techniqueCB, p.solutionCB
	if p.g != nil {
		cp.g = p.g.Copy()
		cp.wireChangeHook()
	}
	return cp
}

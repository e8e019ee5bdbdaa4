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

// Package grid implements the rectangular candidate-set board every
// constraint reads and mutates through the puzzle driver.
package grid

import (
	"fmt"
	"strings"

	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// ChangeHook is fired before a cell mutation commits, with the cell's old
// and new candidate sets.
type ChangeHook func(loc coord.Coordinate, old, new symbols.Set)

// Grid is a rows x cols array of candidate symbol sets.
type Grid struct {
	rows, cols int
	cells      [][]symbols.Set
	dirty      bool
	onChange   ChangeHook
}

// New returns a rows x cols grid with every cell uninitialized ({'*'}).
func New(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]symbols.Set, rows)
	uninit := symbols.NewSet(symbols.Uninitialized)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]symbols.Set, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = uninit
		}
	}
	return g
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// SetChangeHook installs the hook fired before a mutating setCell commits.
func (g *Grid) SetChangeHook(h ChangeHook) { g.onChange = h }

// Dirty reports whether any cell changed since the last ClearDirty.
func (g *Grid) Dirty() bool { return g.dirty }

// ClearDirty resets the dirty flag. Called by the driver at the start of
// each pass.
func (g *Grid) ClearDirty() { g.dirty = false }

func (g *Grid) inRange(loc coord.Coordinate) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// At returns the candidate set at loc.
func (g *Grid) At(loc coord.Coordinate) symbols.Set {
	if !g.inRange(loc) {
		panic(fmt.Sprintf("grid: coordinate %v out of range", loc))
	}
	return g.cells[loc.Row][loc.Col]
}

// SetCell replaces the candidate set at loc. If the new set differs from
// the current one, onChange fires, the mutation commits, dirty is set, and
// SetCell returns true; otherwise it returns false without effect.
func (g *Grid) SetCell(loc coord.Coordinate, set symbols.Set) bool {
	old := g.At(loc)
	if old.Equal(set) {
		return false
	}
	if g.onChange != nil {
		g.onChange(loc, old, set)
	}
	g.cells[loc.Row][loc.Col] = set
	g.dirty = true
	return true
}

// EliminateAt subtracts bad from the cell's candidate set. Panics if the
// cell is still uninitialized: elimination is meaningless before the
// alphabet has been established there.
func (g *Grid) EliminateAt(loc coord.Coordinate, bad symbols.Set) bool {
	if !g.IsInitializedAt(loc) {
		panic(fmt.Sprintf("grid: eliminateAt on uninitialized cell %v", loc))
	}
	return g.SetCell(loc, g.At(loc).Subtract(bad))
}

// EliminateThroughout applies EliminateAt to every coordinate in region,
// returning the coordinates that actually changed.
func (g *Grid) EliminateThroughout(region coord.Region, bad symbols.Set) coord.Region {
	var changed coord.Region
	for _, loc := range region {
		if g.EliminateAt(loc, bad) {
			changed = append(changed, loc)
		}
	}
	return changed
}

// IntersectAt intersects the cell's candidate set with allowed. If the
// cell is still uninitialized, the result is exactly allowed (first
// initialization of the cell).
func (g *Grid) IntersectAt(loc coord.Coordinate, allowed symbols.Set) bool {
	if !g.IsInitializedAt(loc) {
		return g.SetCell(loc, allowed)
	}
	return g.SetCell(loc, g.At(loc).Intersect(allowed))
}

// IntersectThroughout applies IntersectAt to every coordinate in region,
// returning the coordinates that actually changed.
func (g *Grid) IntersectThroughout(region coord.Region, allowed symbols.Set) coord.Region {
	var changed coord.Region
	for _, loc := range region {
		if g.IntersectAt(loc, allowed) {
			changed = append(changed, loc)
		}
	}
	return changed
}

// IndexSymbolsIn returns, for every symbol appearing as a candidate
// somewhere in region, the list of coordinates within region where it is
// a candidate. Iteration over the returned map's keys should go through
// Order to get a stable, insertion-order sequence.
type SymbolIndex struct {
	order []rune
	locs  map[rune]coord.Region
}

// Order returns the symbols in stable (first-seen) order.
func (si SymbolIndex) Order() []rune { return si.order }

// At returns the coordinates recorded for sym.
func (si SymbolIndex) At(sym rune) coord.Region { return si.locs[sym] }

// IndexSymbolsIn builds a SymbolIndex over region.
func (g *Grid) IndexSymbolsIn(region coord.Region) SymbolIndex {
	si := SymbolIndex{locs: make(map[rune]coord.Region)}
	for _, loc := range region {
		for _, sym := range g.At(loc).Members() {
			if _, ok := si.locs[sym]; !ok {
				si.order = append(si.order, sym)
			}
			si.locs[sym] = append(si.locs[sym], loc)
		}
	}
	return si
}

// IsInitializedAt reports whether the cell at loc no longer contains the
// uninitialized sentinel.
func (g *Grid) IsInitializedAt(loc coord.Coordinate) bool {
	return !g.At(loc).Contains(symbols.Uninitialized)
}

// IsInitializedThroughout reports whether every cell in region is
// initialized.
func (g *Grid) IsInitializedThroughout(region coord.Region) bool {
	for _, loc := range region {
		if !g.IsInitializedAt(loc) {
			return false
		}
	}
	return true
}

// IsSolved reports whether every cell has exactly one candidate and it is
// not the uninitialized sentinel.
func (g *Grid) IsSolved() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r][c]
			if cell.Size() != 1 {
				return false
			}
			if v, _ := cell.Arbitrary(); v == symbols.Uninitialized {
				return false
			}
		}
	}
	return true
}

// IsUnsolvable reports whether any cell's candidate set is empty.
func (g *Grid) IsUnsolvable() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].IsEmpty() {
				return true
			}
		}
	}
	return false
}

// ExpandUninitialized replaces every cell whose set is exactly {'*'} with
// a copy of alphabet, returning the number of cells expanded.
func (g *Grid) ExpandUninitialized(alphabet symbols.Set) int {
	count := 0
	uninit := symbols.NewSet(symbols.Uninitialized)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			loc := coord.Coordinate{Row: r, Col: c}
			if g.cells[r][c].Equal(uninit) {
				if g.SetCell(loc, alphabet) {
					count++
				}
			}
		}
	}
	return count
}

// Copy returns a deep copy of the grid. The change hook is not carried
// over: a copy (used for search branches) starts with no hook installed,
// matching the driver's convention of re-wiring hooks on the Puzzle that
// owns the copy.
func (g *Grid) Copy() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, dirty: g.dirty}
	out.cells = make([][]symbols.Set, g.rows)
	for r := 0; r < g.rows; r++ {
		out.cells[r] = make([]symbols.Set, g.cols)
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Render renders the grid per the external-interface convention: rows
// separated by newlines, bracketed by '[' ... ']', each cell shown as its
// sole symbol when determined, '_' when empty, or a parenthesized
// space-separated list otherwise.
func (g *Grid) Render() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.WriteString("[")
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r][c]
			switch {
			case cell.IsEmpty():
				b.WriteString("_")
			case cell.Size() == 1:
				v, _ := cell.Arbitrary()
				b.WriteRune(v)
			default:
				b.WriteString("(")
				for i, m := range cell.Members() {
					if i > 0 {
						b.WriteString(" ")
					}
					b.WriteRune(m)
				}
				b.WriteString(")")
			}
		}
		b.WriteString("]")
		if r < g.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ParseRows builds a Grid from row-strings of single-character cells,
// '*' meaning uninitialized. Every row must have the same length.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: no rows supplied")
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: ragged rows (want %d columns, got %d)", cols, len(row))
		}
	}
	g := New(len(rows), cols)
	for r, row := range rows {
		for c, ch := range row {
			loc := coord.Coordinate{Row: r, Col: c}
			g.cells[loc.Row][loc.Col] = symbols.NewSet(ch)
		}
	}
	return g, nil
}

// ParseNewlineSeparated builds a Grid from a single newline-separated
// string of rows.
func ParseNewlineSeparated(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return ParseRows(lines)
}

// ParseCells builds a Grid from an explicit array-of-arrays of
// single-rune cells.
func ParseCells(cells [][]rune) (*Grid, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("grid: no rows supplied")
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: ragged rows (want %d columns, got %d)", cols, len(row))
		}
	}
	g := New(len(cells), cols)
	for r, row := range cells {
		for c, ch := range row {
			g.cells[r][c] = symbols.NewSet(ch)
		}
	}
	return g, nil
}

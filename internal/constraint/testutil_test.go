package constraint

import (
	"github.com/kenjgibson/puzzle/internal/grid"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// fakePuzzle is a minimal PuzzleView used across this package's tests. It
// mimics just enough of the real puzzle driver's bookkeeping (size,
// alphabet, grid, live sibling constraints, technique log) for a single
// constraint's Apply to be exercised in isolation.
type fakePuzzle struct {
	rows, cols   int
	hasSize      bool
	alphabet     symbols.Set
	hasAlphabet  bool
	g            *grid.Grid
	live         []Constraint
	techniqueLog []string
}

func newFakePuzzle(rows, cols int) *fakePuzzle {
	return &fakePuzzle{rows: rows, cols: cols, hasSize: true, g: grid.New(rows, cols)}
}

func (p *fakePuzzle) Size() (int, int, bool) { return p.rows, p.cols, p.hasSize }

func (p *fakePuzzle) SetSize(rows, cols int) error {
	if p.hasSize && (p.rows != rows || p.cols != cols) {
		return ErrConflictingSize
	}
	p.rows, p.cols, p.hasSize = rows, cols, true
	if p.g == nil {
		p.g = grid.New(rows, cols)
	}
	return nil
}

func (p *fakePuzzle) Alphabet() (symbols.Set, bool) { return p.alphabet, p.hasAlphabet }

func (p *fakePuzzle) SetAlphabet(alphabet symbols.Set) error {
	if p.hasAlphabet && !p.alphabet.Equal(alphabet) {
		return ErrConflictingAlphabet
	}
	p.alphabet, p.hasAlphabet = alphabet, true
	return nil
}

func (p *fakePuzzle) Grid() GridView {
	if p.g == nil {
		return nil
	}
	return GridAdapter{Grid: p.g}
}

func (p *fakePuzzle) LiveConstraints() []Constraint { return p.live }

func (p *fakePuzzle) LogTechnique(name string) {
	p.techniqueLog = append(p.techniqueLog, name)
}

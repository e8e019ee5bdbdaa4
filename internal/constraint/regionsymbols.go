package constraint

import (
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// RegionSymbolsConstraint asserts that every cell of Region draws from
// Symbols, without requiring each symbol to appear (unlike
// RegionPermutesSymbols).
type RegionSymbolsConstraint struct {
	Region  coord.Region
	Symbols symbols.Set
}

// Apply implements Constraint.
func (c RegionSymbolsConstraint) Apply(pv PuzzleView) ([]Constraint, error) {
	return runTechniques(c, []technique{
		c.techEmpty,
		c.techFilterFromPuzzle,
		c.techSolo,
		c.techFilter,
	}, pv)
}

func (c RegionSymbolsConstraint) techEmpty(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Region.Size() == 0 {
		return []Constraint{}, nil, true
	}
	return nil, nil, false
}

func (c RegionSymbolsConstraint) techFilterFromPuzzle(pv PuzzleView) ([]Constraint, error, bool) {
	alphabet, ok := pv.Alphabet()
	if !ok {
		return nil, nil, false
	}
	filtered := c.Symbols.Intersect(alphabet)
	if filtered.Equal(c.Symbols) {
		return nil, nil, false
	}
	pv.LogTechnique("filterFromPuzzle")
	return []Constraint{RegionSymbolsConstraint{Region: c.Region, Symbols: filtered}}, nil, true
}

func (c RegionSymbolsConstraint) techSolo(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Symbols.Size() != 1 {
		return nil, nil, false
	}
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	for _, loc := range c.Region {
		g.SetCell(loc, c.Symbols)
	}
	pv.LogTechnique("solo")
	return []Constraint{}, nil, true
}

func (c RegionSymbolsConstraint) techFilter(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	changed := g.IntersectThroughout(c.Region, c.Symbols)
	if len(changed) == 0 {
		return nil, nil, false
	}
	pv.LogTechnique("filter")
	return []Constraint{c}, nil, true
}

// RegionSymbolLists asserts that the region's cells collectively realize
// one of the given symbol multisets (each of length |Region|). It
// generalizes a permutation to multisets containing repeats.
type RegionSymbolLists struct {
	Region      coord.Region
	SymbolLists []symbols.List
}

// NewRegionSymbolLists validates that every list has length |region| and
// returns the constraint, or ErrSymbolListLengthMismatch.
func NewRegionSymbolLists(region coord.Region, lists []symbols.List) (RegionSymbolLists, error) {
	for _, l := range lists {
		if l.Len() != region.Size() {
			return RegionSymbolLists{}, ErrSymbolListLengthMismatch
		}
	}
	return RegionSymbolLists{Region: region, SymbolLists: lists}, nil
}

// symbolsUnion returns the union of all symbols appearing across every
// list, which RegionSymbolsConstraint-style techniques treat as this
// constraint's Symbols.
func (c RegionSymbolLists) symbolsUnion() symbols.Set {
	out := symbols.NewSet()
	for _, l := range c.SymbolLists {
		out = out.Union(l.ToSet())
	}
	return out
}

// Apply implements Constraint.
func (c RegionSymbolLists) Apply(pv PuzzleView) ([]Constraint, error) {
	return runTechniques(c, []technique{
		c.techEmpty,
		c.techFilterFromPuzzle,
		c.techSolo,
		c.techFilter,
		c.techMakePermutation,
	}, pv)
}

func (c RegionSymbolLists) techEmpty(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Region.Size() == 0 {
		return []Constraint{}, nil, true
	}
	return nil, nil, false
}

func (c RegionSymbolLists) techFilterFromPuzzle(pv PuzzleView) ([]Constraint, error, bool) {
	alphabet, ok := pv.Alphabet()
	if !ok {
		return nil, nil, false
	}
	var kept []symbols.List
	changed := false
	for _, l := range c.SymbolLists {
		if l.ToSet().IsSubsetOf(alphabet) {
			kept = append(kept, l)
		} else {
			changed = true
		}
	}
	if !changed {
		return nil, nil, false
	}
	pv.LogTechnique("filterFromPuzzle")
	return []Constraint{RegionSymbolLists{Region: c.Region, SymbolLists: kept}}, nil, true
}

func (c RegionSymbolLists) techSolo(pv PuzzleView) ([]Constraint, error, bool) {
	union := c.symbolsUnion()
	if union.Size() != 1 {
		return nil, nil, false
	}
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	for _, loc := range c.Region {
		g.SetCell(loc, union)
	}
	pv.LogTechnique("solo")
	return []Constraint{}, nil, true
}

func (c RegionSymbolLists) techFilter(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	changed := g.IntersectThroughout(c.Region, c.symbolsUnion())
	if len(changed) == 0 {
		return nil, nil, false
	}
	pv.LogTechnique("filter")
	return []Constraint{c}, nil, true
}

func (c RegionSymbolLists) techMakePermutation(pv PuzzleView) ([]Constraint, error, bool) {
	if len(c.SymbolLists) != 1 {
		return nil, nil, false
	}
	list := c.SymbolLists[0]
	set := list.ToSet()
	if set.Size() != c.Region.Size() {
		return nil, nil, false
	}
	pv.LogTechnique("makePermutation")
	rps, err := NewRegionPermutesSymbols(c.Region, set)
	if err != nil {
		return nil, err, true
	}
	return []Constraint{rps}, nil, true
}

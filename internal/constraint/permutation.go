package constraint

import (
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// RegionPermutesSymbols asserts that the cells of Region contain each
// symbol of Symbols exactly once. It is the strongest and most-used
// permutation variant, underlying rows, columns, boxes, and Latin
// squares.
type RegionPermutesSymbols struct {
	Region  coord.Region
	Symbols symbols.Set
}

// NewRegionPermutesSymbols validates |region| == |symbols| and returns the
// constraint, or ErrRegionSymbolMismatch.
func NewRegionPermutesSymbols(region coord.Region, syms symbols.Set) (RegionPermutesSymbols, error) {
	if region.Size() != syms.Size() {
		return RegionPermutesSymbols{}, ErrRegionSymbolMismatch
	}
	return RegionPermutesSymbols{Region: region, Symbols: syms}, nil
}

// Copy returns a distinct RegionPermutesSymbols with the same parameters.
func (c RegionPermutesSymbols) Copy() RegionPermutesSymbols {
	region := make(coord.Region, len(c.Region))
	copy(region, c.Region)
	return RegionPermutesSymbols{Region: region, Symbols: c.Symbols}
}

func (c RegionPermutesSymbols) sameAs(o RegionPermutesSymbols) bool {
	return c.Region.Equal(o.Region) && c.Symbols.Equal(o.Symbols)
}

// Apply implements Constraint.
func (c RegionPermutesSymbols) Apply(pv PuzzleView) ([]Constraint, error) {
	return runTechniques(c, []technique{
		c.techEmpty,
		c.techFilterFromPuzzle,
		c.techSolo,
		c.techFilterSolution,
		c.techPartition,
		c.techMisfit,
		c.techBorrow,
		c.techIntersection,
	}, pv)
}

func (c RegionPermutesSymbols) techEmpty(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Region.Size() == 0 {
		return []Constraint{}, nil, true
	}
	return nil, nil, false
}

func (c RegionPermutesSymbols) techFilterFromPuzzle(pv PuzzleView) ([]Constraint, error, bool) {
	alphabet, ok := pv.Alphabet()
	if !ok {
		return nil, nil, false
	}
	filtered := c.Symbols.Intersect(alphabet)
	if filtered.Equal(c.Symbols) {
		return nil, nil, false
	}
	pv.LogTechnique("filterFromPuzzle")
	return []Constraint{RegionPermutesSymbols{Region: c.Region, Symbols: filtered}}, nil, true
}

func (c RegionPermutesSymbols) techSolo(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Symbols.Size() != 1 {
		return nil, nil, false
	}
	g := pv.Grid()
	if g == nil || c.Region.Size() == 0 {
		return nil, nil, false
	}
	v, _ := c.Symbols.Arbitrary()
	g.SetCell(c.Region[0], symbols.NewSet(v))
	pv.LogTechnique("solo")
	return []Constraint{}, nil, true
}

func (c RegionPermutesSymbols) techFilterSolution(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	changed := g.IntersectThroughout(c.Region, c.Symbols)
	if len(changed) == 0 {
		return nil, nil, false
	}
	pv.LogTechnique("filterSolution")
	return []Constraint{c}, nil, true
}

func (c RegionPermutesSymbols) techPartition(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}

	type group struct {
		set   symbols.Set
		cells coord.Region
	}
	var groups []group
	for _, loc := range c.Region {
		cellSet := g.At(loc)
		if cellSet.Size() >= c.Symbols.Size() {
			continue
		}
		matched := false
		for i := range groups {
			if groups[i].set.Equal(cellSet) {
				groups[i].cells = append(groups[i].cells, loc)
				matched = true
				break
			}
		}
		if !matched {
			groups = append(groups, group{set: cellSet, cells: coord.New(loc)})
		}
	}

	for _, grp := range groups {
		k := grp.set.Size()
		if k == 0 || grp.cells.Size() != k {
			continue
		}
		remainderRegion := c.Region.Subtract(grp.cells)
		remainderSymbols := c.Symbols.Subtract(grp.set)
		g.EliminateThroughout(remainderRegion, grp.set)
		pv.LogTechnique("partition")
		return []Constraint{
			RegionPermutesSymbols{Region: grp.cells, Symbols: grp.set},
			RegionPermutesSymbols{Region: remainderRegion, Symbols: remainderSymbols},
		}, nil, true
	}
	return nil, nil, false
}

func (c RegionPermutesSymbols) techMisfit(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	idx := g.IndexSymbolsIn(c.Region)
	for _, sym := range idx.Order() {
		locs := idx.At(sym)
		if locs.Size() != 1 {
			continue
		}
		loc := locs[0]
		g.SetCell(loc, symbols.NewSet(sym))
		pv.LogTechnique("misfit")
		return []Constraint{RegionPermutesSymbols{
			Region:  c.Region.Subtract(coord.New(loc)),
			Symbols: c.Symbols.Without(sym),
		}}, nil, true
	}
	return nil, nil, false
}

func (c RegionPermutesSymbols) techBorrow(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	for _, other := range pv.LiveConstraints() {
		o, ok := other.(RegionPermutesSymbols)
		if !ok || c.sameAs(o) {
			continue
		}
		if !o.Region.IsProperSubsetOf(c.Region) {
			continue
		}
		outside := c.Region.Subtract(o.Region)
		g.EliminateThroughout(outside, o.Symbols)
		pv.LogTechnique("borrow")
		return []Constraint{RegionPermutesSymbols{
			Region:  c.Region.Subtract(o.Region),
			Symbols: c.Symbols.Subtract(o.Symbols),
		}}, nil, true
	}
	return nil, nil, false
}

func (c RegionPermutesSymbols) techIntersection(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	for _, other := range pv.LiveConstraints() {
		o, ok := other.(RegionPermutesSymbols)
		if !ok || c.sameAs(o) {
			continue
		}
		overlap := c.Region.Intersect(o.Region)
		if overlap.Size() == 0 {
			continue
		}
		if o.Region.Equal(c.Region) || o.Region.IsSubsetOf(c.Region) {
			continue
		}
		idxOther := g.IndexSymbolsIn(o.Region)
		for _, sym := range idxOther.Order() {
			locs := idxOther.At(sym)
			if locs.Size() == 0 || !locs.IsSubsetOf(overlap) {
				continue
			}
			outside := c.Region.Subtract(overlap)
			g.EliminateThroughout(outside, symbols.NewSet(sym))
			pv.LogTechnique("intersection")
			return []Constraint{c.Copy()}, nil, true
		}
	}
	return nil, nil, false
}

// RegionIsCompletePermutation defers until the alphabet is known, then
// becomes RegionPermutesSymbols(region, alphabet).
type RegionIsCompletePermutation struct {
	Region coord.Region
}

// Apply implements Constraint.
func (c RegionIsCompletePermutation) Apply(pv PuzzleView) ([]Constraint, error) {
	alphabet, ok := pv.Alphabet()
	if !ok {
		return []Constraint{c}, nil
	}
	rps, err := NewRegionPermutesSymbols(c.Region, alphabet)
	if err != nil {
		return nil, err
	}
	return []Constraint{rps}, nil
}

// RegionsAreCompletePermutation immediately expands to one
// RegionIsCompletePermutation per region.
type RegionsAreCompletePermutation struct {
	Regions []coord.Region
}

// Apply implements Constraint.
func (c RegionsAreCompletePermutation) Apply(pv PuzzleView) ([]Constraint, error) {
	out := make([]Constraint, 0, len(c.Regions))
	for _, region := range c.Regions {
		out = append(out, RegionIsCompletePermutation{Region: region})
	}
	return out, nil
}

// EachRowAndColumnIsPermutation defers until the size is known, then
// expands to a complete-permutation constraint for every row and every
// column. The size must be at most 9x9 for the chess notation convention
// used downstream.
type EachRowAndColumnIsPermutation struct{}

// Apply implements Constraint.
func (c EachRowAndColumnIsPermutation) Apply(pv PuzzleView) ([]Constraint, error) {
	rows, cols, ok := pv.Size()
	if !ok {
		return []Constraint{c}, nil
	}
	if rows > 9 || cols > 9 {
		return nil, ErrGridTooLarge
	}
	var regions []coord.Region
	for r := 0; r < rows; r++ {
		row := make(coord.Region, 0, cols)
		for colIdx := 0; colIdx < cols; colIdx++ {
			row = append(row, coord.Coordinate{Row: r, Col: colIdx})
		}
		regions = append(regions, row)
	}
	for colIdx := 0; colIdx < cols; colIdx++ {
		col := make(coord.Region, 0, rows)
		for r := 0; r < rows; r++ {
			col = append(col, coord.Coordinate{Row: r, Col: colIdx})
		}
		regions = append(regions, col)
	}
	return RegionsAreCompletePermutation{Regions: regions}.Apply(pv)
}

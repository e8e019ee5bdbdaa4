package constraint

import (
	"sort"

	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// MathKind is the closed tagged union of arithmetic cage operators. The
// catalog is fixed: +/-, -/+, x/÷, ÷/x — no open extension point is
// provided for new operators.
type MathKind int

const (
	SumKind MathKind = iota
	DifferenceKind
	ProductKind
	QuotientKind
)

// Name returns the constraint's conventional name, the same name the
// config registry uses for the kind.
func (k MathKind) Name() string {
	switch k {
	case SumKind:
		return "SumIs"
	case DifferenceKind:
		return "DifferenceIs"
	case ProductKind:
		return "ProductIs"
	case QuotientKind:
		return "QuotientIs"
	default:
		return "MathOp"
	}
}

// IsCommutative reports whether the kind's operator is order-independent.
func (k MathKind) IsCommutative() bool {
	return k == SumKind || k == ProductKind
}

// op applies the kind's forward operator: a OP b.
func (k MathKind) op(a, b int) (int, bool) {
	switch k {
	case SumKind:
		return a + b, true
	case DifferenceKind:
		return a - b, true
	case ProductKind:
		return a * b, true
	case QuotientKind:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

// inv applies the kind's inverse operator: a INV b.
func (k MathKind) inv(a, b int) (int, bool) {
	switch k {
	case SumKind:
		return a - b, true
	case DifferenceKind:
		return a + b, true
	case ProductKind:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	case QuotientKind:
		return a * b, true
	}
	return 0, false
}

func runeToInt(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func intToRune(v int, alphabet symbols.Set) (rune, bool) {
	if v < 1 || v > 9 {
		return 0, false
	}
	r := rune('0' + v)
	if !alphabet.Contains(r) {
		return 0, false
	}
	return r, true
}

// MathOp is the base arithmetic cage constraint: the values placed in
// Region, combined via Kind's operator, must equal Target.
type MathOp struct {
	Region       coord.Region
	Kind         MathKind
	Target       int
	FactoredOnce bool
}

// NewMathOp returns a MathOp for the given kind, region, and target.
func NewMathOp(kind MathKind, region coord.Region, target int) MathOp {
	return MathOp{Region: region, Kind: kind, Target: target}
}

// SumIs asserts the region's values sum to target.
func SumIs(region coord.Region, target int) MathOp {
	return NewMathOp(SumKind, region, target)
}

// DifferenceIs asserts the two cells of region differ by target, with
// either cell as the larger operand (non-commutative, for two-cell
// regions).
func DifferenceIs(region coord.Region, target int) MathOp {
	return NewMathOp(DifferenceKind, region, target)
}

// ProductIs asserts the region's values multiply to target.
func ProductIs(region coord.Region, target int) MathOp {
	return NewMathOp(ProductKind, region, target)
}

// QuotientIs asserts one cell of region divided by the other equals
// target, with either cell as the dividend (non-commutative, for two-cell
// regions; division must be exact).
func QuotientIs(region coord.Region, target int) MathOp {
	return NewMathOp(QuotientKind, region, target)
}

// Apply implements Constraint.
func (c MathOp) Apply(pv PuzzleView) ([]Constraint, error) {
	return runTechniques(c, []technique{
		c.techEmpty,
		c.techSingleValue,
		c.techRemoveKnown,
		c.techTwoCellOperator,
		c.techRegionOperator,
		c.techPrimeFactors,
	}, pv)
}

func (c MathOp) techEmpty(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Region.Size() == 0 {
		return []Constraint{}, nil, true
	}
	return nil, nil, false
}

func (c MathOp) techSingleValue(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Region.Size() != 1 || !c.Kind.IsCommutative() {
		return nil, nil, false
	}
	alphabet, ok := pv.Alphabet()
	if !ok {
		return nil, nil, false
	}
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	r, ok := intToRune(c.Target, alphabet)
	if !ok {
		return nil, nil, false
	}
	g.SetCell(c.Region[0], symbols.NewSet(r))
	pv.LogTechnique("singleValue")
	return []Constraint{}, nil, true
}

func (c MathOp) techRemoveKnown(pv PuzzleView) ([]Constraint, error, bool) {
	alphabet, ok := pv.Alphabet()
	if !ok {
		return nil, nil, false
	}
	g := pv.Grid()
	if g == nil {
		return nil, nil, false
	}
	for _, loc := range c.Region {
		cell := g.At(loc)
		v, ok := cell.Arbitrary()
		if !ok || v == symbols.Uninitialized {
			continue
		}
		vi, ok := runeToInt(v)
		if !ok {
			continue
		}

		var candidates []int
		if inv, ok := c.Kind.inv(c.Target, vi); ok {
			candidates = append(candidates, inv)
		}
		if !c.Kind.IsCommutative() {
			if alt, ok := c.Kind.op(vi, c.Target); ok {
				candidates = append(candidates, alt)
			}
		}

		inverses := symbols.NewSet()
		for _, cand := range candidates {
			if r, ok := intToRune(cand, alphabet); ok {
				inverses = inverses.With(r)
			}
		}

		remainder := c.Region.Subtract(coord.New(loc))
		if inverses.Size() == 1 {
			newTarget, _ := inverses.Arbitrary()
			target, _ := runeToInt(newTarget)
			pv.LogTechnique("removeKnown")
			return []Constraint{NewMathOp(c.Kind, remainder, target)}, nil, true
		}
		if c.Region.Size() == 2 {
			pv.LogTechnique("removeKnown")
			return []Constraint{RegionSymbolsConstraint{Region: remainder, Symbols: inverses}}, nil, true
		}
	}
	return nil, nil, false
}

func (c MathOp) techTwoCellOperator(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Region.Size() != 2 {
		return nil, nil, false
	}
	g := pv.Grid()
	if g == nil || !g.IsInitializedThroughout(c.Region) {
		return nil, nil, false
	}
	a, b := c.Region[0], c.Region[1]
	cellA, cellB := g.At(a), g.At(b)

	keepA := keepWithPartnerIn(c.Kind, c.Target, cellA, cellB)
	keepB := keepWithPartnerIn(c.Kind, c.Target, cellB, cellA)

	changedA := cellA.Size() != keepA.Size()
	changedB := cellB.Size() != keepB.Size()
	if changedA {
		g.EliminateAt(a, cellA.Subtract(keepA))
	}
	if changedB {
		g.EliminateAt(b, cellB.Subtract(keepB))
	}
	if changedA || changedB {
		pv.LogTechnique("twoCellOperator")
		return []Constraint{c}, nil, true
	}
	return nil, nil, false
}

// keepWithPartnerIn returns the subset of cell's candidates that have at
// least one valid counterpart in other. For a non-commutative kind a
// two-cell region is unordered (spec §8: DifferenceIs/QuotientIs admit
// either cell as the larger operand), so both orientations of the
// operator are tried via partners.
func keepWithPartnerIn(kind MathKind, target int, cell, other symbols.Set) symbols.Set {
	keep := symbols.NewSet()
	for _, x := range cell.Members() {
		xi, ok := runeToInt(x)
		if !ok {
			continue
		}
		for _, yi := range partners(kind, target, xi) {
			if r := digitRune(yi); r != 0 && other.Contains(r) {
				keep = keep.With(x)
				break
			}
		}
	}
	return keep
}

// partners returns every value y such that x op y == target or
// y op x == target -- i.e. every valid counterpart for x, considering
// both operand positions. A commutative kind's two orientations
// coincide, so there is only ever one candidate.
func partners(kind MathKind, target, x int) []int {
	var out []int
	if y, ok := kind.inv(target, x); ok {
		out = append(out, y)
	}
	if !kind.IsCommutative() {
		if y, ok := kind.op(x, target); ok {
			out = append(out, y)
		}
	}
	return out
}

func digitRune(v int) rune {
	if v < 1 || v > 9 {
		return 0
	}
	return rune('0' + v)
}

func (c MathOp) techRegionOperator(pv PuzzleView) ([]Constraint, error, bool) {
	g := pv.Grid()
	if g == nil || c.Region.Size() == 0 {
		return nil, nil, false
	}
	changed := false
	for _, cell := range c.Region {
		cellSet := g.At(cell)
		if !g.IsInitializedAt(cell) {
			continue
		}
		others := c.Region.Subtract(coord.New(cell))
		keep := symbols.NewSet()
		for _, x := range cellSet.Members() {
			xi, ok := runeToInt(x)
			if !ok {
				continue
			}
			// partners tries both operand positions for a non-commutative
			// kind, as techTwoCellOperator does.
			for _, newTarget := range partners(c.Kind, c.Target, xi) {
				if regionReaches(c.Kind, others, newTarget, g) {
					keep = keep.With(x)
					break
				}
			}
		}
		if keep.Size() != cellSet.Size() {
			g.EliminateAt(cell, cellSet.Subtract(keep))
			changed = true
		}
	}
	if changed {
		pv.LogTechnique("regionOperator")
		return []Constraint{c}, nil, true
	}
	return nil, nil, false
}

// regionReaches reports whether some assignment of values drawn from each
// cell's current candidates in cells can accumulate, via kind's inverse
// operator applied pairwise, down to target.
func regionReaches(kind MathKind, cells coord.Region, target int, g GridView) bool {
	if len(cells) == 0 {
		return true
	}
	if len(cells) == 1 {
		r := digitRune(target)
		return r != 0 && g.At(cells[0]).Contains(r)
	}
	first := cells[0]
	rest := cells[1:]
	for _, x := range g.At(first).Members() {
		xi, ok := runeToInt(x)
		if !ok {
			continue
		}
		newTarget, ok := kind.inv(target, xi)
		if !ok {
			continue
		}
		if regionReaches(kind, rest, newTarget, g) {
			return true
		}
	}
	return false
}

func (c MathOp) techPrimeFactors(pv PuzzleView) ([]Constraint, error, bool) {
	if c.Kind != ProductKind || c.FactoredOnce {
		return nil, nil, false
	}
	alphabet, ok := pv.Alphabet()
	if !ok {
		return nil, nil, false
	}
	n := c.Region.Size()
	if n == 0 {
		return nil, nil, false
	}

	digits := make([]int, 0, alphabet.Size())
	for _, r := range alphabet.Members() {
		if v, ok := runeToInt(r); ok {
			digits = append(digits, v)
		}
	}
	sort.Ints(digits)

	var lists []symbols.List
	var enumerate func(remaining int, target int, start int, acc []int)
	enumerate = func(remaining int, target int, start int, acc []int) {
		if remaining == 0 {
			if target == 1 {
				list := make([]rune, len(acc))
				for i, v := range acc {
					list[i] = digitRune(v)
				}
				lists = append(lists, symbols.NewList(list...))
			}
			return
		}
		for i := start; i < len(digits); i++ {
			d := digits[i]
			if target%d != 0 {
				continue
			}
			enumerate(remaining-1, target/d, i, append(acc, d))
		}
	}
	enumerate(n, c.Target, 0, nil)

	self := c
	self.FactoredOnce = true
	pv.LogTechnique("primeFactors")
	return []Constraint{self, RegionSymbolLists{Region: c.Region, SymbolLists: lists}}, nil, true
}

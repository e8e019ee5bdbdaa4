package constraint

import "github.com/kenjgibson/puzzle/internal/coord"

// AllCellsMustBeCovered verifies, once the puzzle's size is known, that
// every coordinate in the grid lies inside at least one live MathOp
// region. It is the only constraint that reads the puzzle's constraint
// list for a purpose other than the permutation borrow/intersection
// techniques.
type AllCellsMustBeCovered struct{}

// Apply implements Constraint.
func (c AllCellsMustBeCovered) Apply(pv PuzzleView) ([]Constraint, error) {
	rows, cols, ok := pv.Size()
	if !ok {
		return []Constraint{c}, nil
	}

	var regions []coord.Region
	for _, other := range pv.LiveConstraints() {
		if m, ok := other.(MathOp); ok {
			regions = append(regions, m.Region)
		}
	}

	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			loc := coord.Coordinate{Row: r, Col: col}
			covered := false
			for _, region := range regions {
				if region.Contains(loc) {
					covered = true
					break
				}
			}
			if !covered {
				return nil, ErrUncoveredCell
			}
		}
	}
	return nil, nil
}

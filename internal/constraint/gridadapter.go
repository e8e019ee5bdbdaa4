package constraint

import (
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/grid"
)

// GridAdapter wraps a concrete *grid.Grid so it satisfies GridView.
// *grid.Grid already matches every method of GridView by signature except
// IndexSymbolsIn, whose concrete return type (grid.SymbolIndex) must be
// widened to the GridSymbolIndex interface here.
type GridAdapter struct {
	*grid.Grid
}

// IndexSymbolsIn implements GridView.
func (a GridAdapter) IndexSymbolsIn(region coord.Region) GridSymbolIndex {
	return a.Grid.IndexSymbolsIn(region)
}

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

package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kenjgibson/puzzle/internal/constraint"
	"github.com/kenjgibson/puzzle/internal/grid"
	"github.com/kenjgibson/puzzle/puzzle"
)

// Build assembles a *puzzle.Puzzle from a document whose includes have
// already been flattened into its Constraints list (see Loader). It does
// not itself resolve includes, so it can also be used directly on a
// self-contained document (e.g. a family, or a document built in memory).
func Build(doc *Document) (*puzzle.Puzzle, error) {
	cs := make([]constraint.Constraint, 0, len(doc.Constraints))
	for _, raw := range doc.Constraints {
		c, isInclude, err := buildEntry(raw)
		if err != nil {
			return nil, err
		}
		if isInclude {
			return nil, errors.Errorf("config: unresolved include %v; use a Loader to resolve includes before Build", raw)
		}
		cs = append(cs, c)
	}

	p := puzzle.New(cs...)

	if doc.Initial != nil {
		initial, err := parseInitial(doc.Initial)
		if err != nil {
			return nil, err
		}
		if err := p.SeedInitial(initial); err != nil {
			return nil, err
		}
		return p, nil
	}

	rows, cols, ok := sizeOf(doc)
	if !ok {
		// Neither dimensions/size nor initial were given. Size stays
		// unknown, so constraints that need it (SymbolsAreDigitsByDiameter,
		// EachRowAndColumnIsPermutation) keep deferring until the caller
		// sets it (e.g. with SeedInitial).
		return p, nil
	}
	if err := p.SetSize(rows, cols); err != nil {
		return nil, err
	}
	return p, nil
}

func sizeOf(doc *Document) (rows, cols int, ok bool) {
	if len(doc.Size) == 2 {
		return doc.Size[0], doc.Size[1], true
	}
	if doc.Dimensions > 0 {
		return doc.Dimensions, doc.Dimensions, true
	}
	return 0, 0, false
}

func parseInitial(raw interface{}) (*grid.Grid, error) {
	switch v := raw.(type) {
	case string:
		return grid.ParseNewlineSeparated(v)
	case []string:
		return grid.ParseRows(v)
	case []interface{}:
		rows := make([]string, len(v))
		for i, r := range v {
			s, ok := r.(string)
			if !ok {
				return nil, errors.Errorf("config: initial row %d is not a string", i)
			}
			rows[i] = s
		}
		return grid.ParseRows(rows)
	default:
		return nil, errors.Errorf("config: unsupported initial grid shape %T", raw)
	}
}

// buildEntry builds the constraint a single Constraints-list entry
// describes. isInclude reports that raw is a bare string naming neither a
// registered constraint nor a Math shorthand expression, so the caller
// (normally a Loader) must resolve it as a file include before Build runs.
func buildEntry(raw interface{}) (c constraint.Constraint, isInclude bool, err error) {
	switch v := raw.(type) {
	case string:
		if strings.Contains(v, "=") {
			m, err := constraint.ParseMathShorthand(v)
			return m, false, err
		}
		b, ok := registry[v]
		if !ok {
			return nil, true, nil
		}
		c, err := b.build(map[string]interface{}{})
		return c, false, err

	case map[string]interface{}:
		return buildMapEntry(v)
	case map[interface{}]interface{}:
		return buildMapEntry(normalizeMap(v))

	default:
		return nil, false, errors.Wrapf(ErrMalformedEntry, "unsupported entry type %T", raw)
	}
}

func buildMapEntry(m map[string]interface{}) (constraint.Constraint, bool, error) {
	if nameVal, ok := m["name"]; ok {
		name, ok := nameVal.(string)
		if !ok {
			return nil, false, errors.Wrap(ErrMalformedEntry, "name key is not a string")
		}
		b, ok := registry[name]
		if !ok {
			return nil, false, errors.Wrapf(ErrUnknownConstraint, "%q", name)
		}
		params := make(map[string]interface{}, len(m))
		for k, v := range m {
			if k == "name" {
				continue
			}
			params[k] = v
		}
		c, err := b.build(params)
		return c, false, err
	}

	if len(m) != 1 {
		return nil, false, errors.Wrapf(ErrMalformedEntry, "dictionary entry %v has neither a name key nor exactly one key", m)
	}
	for name, val := range m {
		b, ok := registry[name]
		if !ok {
			return nil, false, errors.Wrapf(ErrUnknownConstraint, "%q", name)
		}
		if b.primaryKey == "" {
			return nil, false, errors.Wrapf(ErrMalformedEntry, "constraint %q takes no single-value shorthand", name)
		}
		c, err := b.build(map[string]interface{}{b.primaryKey: val})
		return c, false, err
	}
	panic("unreachable")
}

func normalizeMap(raw map[interface{}]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		out[fmt.Sprintf("%v", k)] = v
	}
	return out
}

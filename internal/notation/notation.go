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

// Package notation parses and renders the chess-style coordinate grammar
// used by configuration documents: "a1" is row 0, col 0; "a1-b2" denotes
// the inclusive rectangle; whitespace or commas separate items in a union.
package notation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kenjgibson/puzzle/internal/coord"
)

// only rows a-i and columns 1-9 are supported by the grammar.
const (
	minRow = 'a'
	maxRow = 'i'
	minCol = '1'
	maxCol = '9'
)

// ParseCoordinate parses a single two-character cell reference such as
// "a1".
func ParseCoordinate(s string) (coord.Coordinate, error) {
	if len(s) != 2 {
		return coord.Coordinate{}, errors.Errorf("notation: malformed coordinate %q", s)
	}
	row := rune(s[0])
	col := rune(s[1])
	if row < minRow || row > maxRow {
		return coord.Coordinate{}, errors.Errorf("notation: row %q out of range a-i", s[0:1])
	}
	if col < minCol || col > maxCol {
		return coord.Coordinate{}, errors.Errorf("notation: column %q out of range 1-9", s[1:2])
	}
	return coord.Coordinate{Row: int(row - minRow), Col: int(col - minCol)}, nil
}

// ParseRegion parses a coordinate-list expression: a single cell ("a1"),
// an inclusive rectangle ("a1-b2"), or a whitespace/comma-separated union
// of either ("a1, b1-b2 c2").
func ParseRegion(s string) (coord.Region, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, errors.Errorf("notation: empty region expression")
	}

	var coords []coord.Coordinate
	for _, field := range fields {
		parsed, err := parseItem(field)
		if err != nil {
			return nil, errors.Wrapf(err, "notation: parsing %q", s)
		}
		coords = append(coords, parsed...)
	}
	return coord.New(coords...), nil
}

func parseItem(field string) ([]coord.Coordinate, error) {
	if idx := strings.IndexByte(field, '-'); idx >= 0 {
		from, err := ParseCoordinate(field[:idx])
		if err != nil {
			return nil, err
		}
		to, err := ParseCoordinate(field[idx+1:])
		if err != nil {
			return nil, err
		}
		return rectangle(from, to), nil
	}
	c, err := ParseCoordinate(field)
	if err != nil {
		return nil, err
	}
	return []coord.Coordinate{c}, nil
}

func rectangle(from, to coord.Coordinate) []coord.Coordinate {
	minRow, maxRow := from.Row, to.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}
	minCol, maxCol := from.Col, to.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	var out []coord.Coordinate
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			out = append(out, coord.Coordinate{Row: r, Col: c})
		}
	}
	return out
}

// RenderCoordinate renders a single coordinate back to its canonical
// two-character form.
func RenderCoordinate(c coord.Coordinate) string {
	return fmt.Sprintf("%c%c", rune('a'+c.Row), rune('1'+c.Col))
}

// RenderRegion renders a region as a comma-separated list of its
// coordinates' canonical forms, in the region's own order.
func RenderRegion(r coord.Region) string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = RenderCoordinate(c)
	}
	return strings.Join(parts, ", ")
}

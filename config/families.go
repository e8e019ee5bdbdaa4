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

import "embed"

//go:embed families/*.yaml
var familiesFS embed.FS

// families maps a predefined puzzle family name to its embedded document
// path. Names are matched case-sensitively against the cmd/puzzlesolve
// "solve --family" flag and the serve request's "family" field; the
// "techniques" command lists them.
var families = map[string]string{
	"Sudoku":       "families/sudoku.yaml",
	"LatinSquare6": "families/latinsquare6.yaml",
	"KenKen5":      "families/kenken5.yaml",
}

// FamilyNames returns the names of the predefined families, for listing.
func FamilyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	return names
}

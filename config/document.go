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

// Package config implements the document format the core engine's
// constructors are assembled from: a YAML document naming the puzzle's
// dimensions, optional initial grid, and constraint list, plus hierarchical
// includes and a handful of predefined families shipped under
// config/families/.
package config

import "gopkg.in/yaml.v2"

// Document is the top-level shape of a configuration YAML document, per
// spec.md section 6's external configuration surface.
type Document struct {
	// Dimensions, if set, means a square grid of this size per side.
	Dimensions int `yaml:"dimensions"`
	// Size, if set, is a [rows, cols] pair; takes precedence over Dimensions.
	Size []int `yaml:"size"`
	// Initial is the starting grid, given either as a single newline
	// separated string or as a list of equal-length row strings, '*'
	// marking an uninitialized cell.
	Initial interface{} `yaml:"initial"`
	// Constraints is the list of constraint entries: plain strings (bare
	// constraint name or a "Math" shorthand expression or a file include),
	// name+params dictionaries, or single-key dictionaries.
	Constraints []interface{} `yaml:"constraints"`
}

// ParseDocument decodes a single YAML document's bytes.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

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
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/kenjgibson/puzzle/internal/constraint"
	"github.com/kenjgibson/puzzle/internal/coord"
	"github.com/kenjgibson/puzzle/internal/notation"
	"github.com/kenjgibson/puzzle/internal/symbols"
)

// builder decodes a constraint entry's parameters into the right
// constructor. primaryKey names the mapstructure key a single-key
// dictionary's bare value binds to ("" if the constraint takes no
// parameters or always needs more than one, and so cannot be built from
// the single-key shorthand).
type builder struct {
	primaryKey string
	build      func(params map[string]interface{}) (constraint.Constraint, error)
}

var registry = map[string]builder{
	"SymbolsAreDigits": {
		primaryKey: "max",
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Max int `mapstructure:"max"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.Max == 0 {
				return constraint.NewSymbolsAreDigits(9), nil
			}
			return constraint.NewSymbolsAreDigits(p.Max), nil
		},
	},
	"SymbolsAreDigitsByDiameter": {
		build: func(map[string]interface{}) (constraint.Constraint, error) {
			return constraint.SymbolsAreDigitsByDiameter{}, nil
		},
	},
	"EachRowAndColumnIsPermutation": {
		build: func(map[string]interface{}) (constraint.Constraint, error) {
			return constraint.EachRowAndColumnIsPermutation{}, nil
		},
	},
	"AllCellsMustBeCovered": {
		build: func(map[string]interface{}) (constraint.Constraint, error) {
			return constraint.AllCellsMustBeCovered{}, nil
		},
	},
	"RegionPermutesSymbols": {
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Region  string `mapstructure:"region"`
				Symbols string `mapstructure:"symbols"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			region, err := notation.ParseRegion(p.Region)
			if err != nil {
				return nil, err
			}
			return constraint.NewRegionPermutesSymbols(region, symbols.NewSet([]rune(p.Symbols)...))
		},
	},
	"RegionIsCompletePermutation": {
		primaryKey: "region",
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Region string `mapstructure:"region"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			region, err := notation.ParseRegion(p.Region)
			if err != nil {
				return nil, err
			}
			return constraint.RegionIsCompletePermutation{Region: region}, nil
		},
	},
	"RegionsAreCompletePermutation": {
		primaryKey: "regions",
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Regions []string `mapstructure:"regions"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			regions := make([]coord.Region, 0, len(p.Regions))
			for _, s := range p.Regions {
				region, err := notation.ParseRegion(s)
				if err != nil {
					return nil, err
				}
				regions = append(regions, region)
			}
			return constraint.RegionsAreCompletePermutation{Regions: regions}, nil
		},
	},
	"SumIs":        mathBuilder(constraint.SumKind),
	"DifferenceIs": mathBuilder(constraint.DifferenceKind),
	"ProductIs":    mathBuilder(constraint.ProductKind),
	"QuotientIs":   mathBuilder(constraint.QuotientKind),
	"RegionSymbolsConstraint": {
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Region  string `mapstructure:"region"`
				Symbols string `mapstructure:"symbols"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			region, err := notation.ParseRegion(p.Region)
			if err != nil {
				return nil, err
			}
			return constraint.RegionSymbolsConstraint{Region: region, Symbols: symbols.NewSet([]rune(p.Symbols)...)}, nil
		},
	},
	"RegionSymbolLists": {
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Region string   `mapstructure:"region"`
				Lists  []string `mapstructure:"lists"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			region, err := notation.ParseRegion(p.Region)
			if err != nil {
				return nil, err
			}
			lists := make([]symbols.List, len(p.Lists))
			for i, s := range p.Lists {
				lists[i] = symbols.NewList([]rune(s)...)
			}
			return constraint.NewRegionSymbolLists(region, lists)
		},
	},
}

func mathBuilder(kind constraint.MathKind) builder {
	return builder{
		build: func(params map[string]interface{}) (constraint.Constraint, error) {
			var p struct {
				Region string `mapstructure:"region"`
				Target int    `mapstructure:"target"`
			}
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			region, err := notation.ParseRegion(p.Region)
			if err != nil {
				return nil, err
			}
			return constraint.NewMathOp(kind, region, p.Target), nil
		},
	}
}

func decodeParams(params map[string]interface{}, target interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "config: building decoder")
	}
	return dec.Decode(params)
}

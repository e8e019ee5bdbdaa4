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

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kenjgibson/puzzle/config"
)

// techniqueNames are the names Stats.Techniques can hold, in roughly the
// order a solve run encounters them: grid expansion, the permutation
// family's inference techniques, the arithmetic cage family's, the
// symbol-list constraints', then the synthetic technique the driver itself
// logs when it falls back to search.
var techniqueNames = []string{
	"expand",
	"filterFromPuzzle",
	"solo",
	"filterSolution",
	"partition",
	"misfit",
	"borrow",
	"intersection",
	"singleValue",
	"removeKnown",
	"twoCellOperator",
	"regionOperator",
	"primeFactors",
	"filter",
	"makePermutation",
	"guess",
}

func newTechniquesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "techniques",
		Short: "List the solver's inference techniques and predefined puzzle families",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("techniques:")
			for _, name := range techniqueNames {
				fmt.Printf("  %s\n", name)
			}

			families := config.FamilyNames()
			sort.Strings(families)
			fmt.Println("families:")
			for _, name := range families {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
}

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

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kenjgibson/puzzle/config"
	"github.com/kenjgibson/puzzle/puzzle"
)

var (
	solveFile   string
	solveFamily string
	solveDir    string
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle and print the resulting grid and statistics",
		Long: `solve reads a puzzle from a configuration document or a predefined
family, runs it to completion (constraint propagation, falling back to
backtracking search when propagation alone stalls), and prints the
resulting grid and a summary of the work the solver did.`,
		RunE: runSolve,
	}

	cmd.Flags().StringVarP(&solveFile, "file", "f", "", "path (under --dir) to a puzzle configuration document")
	cmd.Flags().StringVar(&solveFamily, "family", "", "name of a predefined family (Sudoku, LatinSquare6, KenKen5)")
	cmd.Flags().StringVarP(&solveDir, "dir", "d", ".", "base directory configuration includes are resolved against")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	if (solveFile == "") == (solveFamily == "") {
		return errors.New("puzzlesolve: exactly one of --file or --family must be given")
	}

	p, err := loadPuzzle(solveDir, solveFile, solveFamily)
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		p.OnTechnique(func(name string) {
			log.WithField("technique", name).Debug("puzzlesolve: technique fired")
		})
	}

	solved, err := p.Solve()
	if err != nil {
		return errors.Wrap(err, "puzzlesolve: solve")
	}

	fmt.Println(p.Render())
	fmt.Println()
	printStats(solved, p.Stats())
	return nil
}

func loadPuzzle(dir, file, family string) (*puzzle.Puzzle, error) {
	loader := config.NewLoader(dir)
	if family != "" {
		return loader.LoadFamily(family)
	}
	return loader.Load(file)
}

func printStats(solved bool, stats puzzle.Stats) {
	fmt.Printf("solved: %v\n", solved)
	fmt.Printf("passes: %d (first %d before search)\n", stats.Passes, stats.FirstPasses)
	fmt.Printf("plies: %d\n", stats.Plies)
	if len(stats.Techniques) == 0 {
		return
	}
	fmt.Println("techniques:")
	for name, n := range stats.Techniques {
		fmt.Printf("  %-20s %d\n", name, n)
	}
}

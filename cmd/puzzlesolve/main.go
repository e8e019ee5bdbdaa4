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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "puzzlesolve",
		Short: "puzzlesolve",
		Long:  `A constraint-propagation solver for grid puzzles (Sudoku, Latin squares, KenKen, and configured variants).`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging of every technique fired")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newTechniquesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

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

//
// HTTP handler for the puzzle-solving microservice. Accepts a JSON-encoded
// puzzle (a predefined family name and/or a partially-filled starting grid)
// via POST, solves it, and returns the solved grid plus a status string.
// Generalizes the teacher's fixed 9x9-digit JsonGrid handler to any grid
// size and alphabet by rendering/parsing cells as notation strings instead
// of a uint8 array.
//

package main

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kenjgibson/puzzle/internal/grid"
)

var serveAddr string

const usageText = `Puzzle Solver API.

Invoke at this endpoint using POST, Content-Type application/json, with a
body of the form:

  {"family": "Sudoku", "grid": ["53**7****", ...]}

"family" names one of the predefined families (see the techniques command);
it may be omitted if "dir" and "file" name a configuration document instead.
"grid" is optional: row strings using the puzzle's own symbols with '*' for
a blank cell, overlaying fixed starting values onto the family/document.

The response holds "grid", the grid as rendered after solving (one string
per row), and a "status" field: "solved", "unsolvable" when no solution
was found, or an error message.`

type solveRequest struct {
	Family string   `json:"family,omitempty"`
	Dir    string   `json:"dir,omitempty"`
	File   string   `json:"file,omitempty"`
	Grid   []string `json:"grid,omitempty"`
}

type solveResponse struct {
	Grid   []string `json:"grid,omitempty"`
	Status string   `json:"status"`
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON-over-HTTP puzzle solving service",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "localhost:8000", "address to listen on")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	http.HandleFunc("/puzzle/solve", solveHandler)
	log.WithField("addr", serveAddr).Info("puzzlesolve: listening")
	return http.ListenAndServe(serveAddr, nil)
}

func solveHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Write([]byte(usageText + "\n"))
		return

	case http.MethodPost:
		handleSolveRequest(w, r)
		return

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("405 - Method Not Allowed\n"))
	}
}

func handleSolveRequest(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("puzzlesolve: can't decode request")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("400 - Bad Request\n"))
		return
	}

	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	p, err := loadPuzzle(dir, req.File, req.Family)
	if err != nil {
		log.WithError(err).Warn("puzzlesolve: can't build puzzle")
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, solveResponse{Status: "error: " + err.Error()})
		return
	}

	if len(req.Grid) > 0 {
		initial, err := grid.ParseRows(req.Grid)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, solveResponse{Status: "error: " + err.Error()})
			return
		}
		if err := p.SeedInitial(initial); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, solveResponse{Status: "error: " + err.Error()})
			return
		}
	}

	solved, err := p.Solve()
	if err != nil {
		log.WithError(err).Warn("puzzlesolve: solve failed")
		writeJSON(w, solveResponse{Status: "error: " + err.Error()})
		return
	}

	resp := solveResponse{Grid: splitLines(p.Render())}
	if solved {
		resp.Status = "solved"
	} else {
		resp.Status = "unsolvable"
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, resp solveResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Warn("puzzlesolve: can't encode response")
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kenjgibson/puzzle/puzzle"
)

// Loader resolves a configuration document from a base directory on disk,
// flattening any hierarchical includes before handing the document to
// Build. Logger, if set, receives a trace line per include resolved;
// NewLoader sets it to a Warn-level stderr logger, so those trace lines
// are not shown unless the level is raised.
type Loader struct {
	BaseDir string
	Logger  *logrus.Logger
}

// NewLoader returns a Loader rooted at baseDir with a silent logger.
func NewLoader(baseDir string) *Loader {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return &Loader{BaseDir: baseDir, Logger: logger}
}

// Load reads the document named by path (relative to BaseDir, with or
// without a .yml/.yaml suffix), resolves its includes, and builds a Puzzle.
func (l *Loader) Load(path string) (*puzzle.Puzzle, error) {
	doc, err := l.loadDocument(path, map[string]bool{})
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// LoadFamily builds a Puzzle from one of the predefined embedded families
// (currently "Sudoku", "LatinSquare6", "KenKen5"). Family documents may
// still name disk includes, resolved against BaseDir.
func (l *Loader) LoadFamily(name string) (*puzzle.Puzzle, error) {
	assetPath, ok := families[name]
	if !ok {
		return nil, errors.Errorf("config: unknown family %q", name)
	}
	data, err := familiesFS.ReadFile(assetPath)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading embedded family %q", name)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: parsing embedded family %q", name)
	}
	expanded, err := l.expandIncludes(doc.Constraints, "family:"+name, map[string]bool{"family:" + name: true})
	if err != nil {
		return nil, err
	}
	doc.Constraints = expanded
	return Build(doc)
}

func cloneVisited(visited map[string]bool) map[string]bool {
	out := make(map[string]bool, len(visited))
	for k, v := range visited {
		out[k] = v
	}
	return out
}

func (l *Loader) loadDocument(path string, visited map[string]bool) (*Document, error) {
	resolved, data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	if visited[resolved] {
		return nil, errors.Wrapf(ErrIncludeCycle, "%q", resolved)
	}
	visited[resolved] = true

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: parsing %q", resolved)
	}
	expanded, err := l.expandIncludes(doc.Constraints, resolved, visited)
	if err != nil {
		return nil, err
	}
	doc.Constraints = expanded
	return doc, nil
}

// readFile resolves name against BaseDir, trying the literal name first,
// then with .yaml and .yml suffixes appended.
func (l *Loader) readFile(name string) (resolvedPath string, data []byte, err error) {
	candidates := []string{name}
	if ext := filepath.Ext(name); ext != ".yaml" && ext != ".yml" {
		candidates = append(candidates, name+".yaml", name+".yml")
	}
	for _, candidate := range candidates {
		full := filepath.Join(l.BaseDir, candidate)
		data, err := os.ReadFile(full)
		if err == nil {
			return full, data, nil
		}
	}
	return "", nil, errors.Wrapf(ErrIncludeNotFound, "%q under %q", name, l.BaseDir)
}

// expandIncludes walks a constraint list, replacing every bare string that
// is neither a registered constraint name nor a Math shorthand expression
// with the (recursively expanded) constraint list of the file it names.
func (l *Loader) expandIncludes(entries []interface{}, currentFile string, visited map[string]bool) ([]interface{}, error) {
	out := make([]interface{}, 0, len(entries))
	for _, raw := range entries {
		name, ok := raw.(string)
		if !ok || strings.Contains(name, "=") {
			out = append(out, raw)
			continue
		}
		if _, known := registry[name]; known {
			out = append(out, raw)
			continue
		}

		l.Logger.WithFields(logrus.Fields{"from": currentFile, "include": name}).Trace("config: resolving include")
		// Copy the ancestor path per branch: a diamond include (two
		// siblings naming the same file) is not a cycle, only a file
		// revisiting itself along a single inclusion chain is.
		included, err := l.loadDocument(name, cloneVisited(visited))
		if err != nil {
			return nil, errors.Wrapf(err, "config: resolving include %q from %q", name, currentFile)
		}
		out = append(out, included.Constraints...)
	}
	return out, nil
}

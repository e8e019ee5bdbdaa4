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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestLoaderResolvesDiskInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "boxes.yaml", "constraints:\n  - a1+a2=3\n")
	writeFile(t, dir, "main.yaml", "dimensions: 2\nconstraints:\n  - boxes\n")

	l := NewLoader(dir)
	p, err := l.Load("main")
	require.NoError(t, err)
	rows, cols, ok := p.Size()
	assert.True(t, ok)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
}

func TestLoaderDetectsIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "constraints:\n  - b\n")
	writeFile(t, dir, "b.yaml", "constraints:\n  - a\n")

	l := NewLoader(dir)
	_, err := l.Load("a")
	assert.ErrorIs(t, err, ErrIncludeCycle)
}

func TestLoaderMissingIncludeErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.yaml", "dimensions: 2\nconstraints:\n  - nonexistent\n")

	l := NewLoader(dir)
	_, err := l.Load("main")
	assert.ErrorIs(t, err, ErrIncludeNotFound)
}

func TestLoaderAllowsDiamondInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.yaml", "constraints:\n  - a1+a2=3\n")
	writeFile(t, dir, "left.yaml", "constraints:\n  - shared\n")
	writeFile(t, dir, "right.yaml", "constraints:\n  - shared\n")
	writeFile(t, dir, "main.yaml", "dimensions: 2\nconstraints:\n  - left\n  - right\n")

	l := NewLoader(dir)
	_, err := l.Load("main")
	assert.NoError(t, err)
}

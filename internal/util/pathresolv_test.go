//
// reversicore - Othello/Reversi search and evaluation engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The reversicore Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "weights.bin")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, f)
	if err != nil {
		t.Skip("temp dir not reachable as a relative path from the working directory")
	}

	resolved, err := ResolveFile(rel)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(f), resolved)
}

func TestResolveFileAbsoluteMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.toml")
	_, err := ResolveFile(missing)
	assert.Error(t, err)
}

func TestResolveCreateFolderCreatesUnderWorkingDirectory(t *testing.T) {
	name := "reversicore-test-folder-xyz"
	resolved, err := ResolveCreateFolder(name)
	require.NoError(t, err)
	defer os.RemoveAll(resolved)
	assert.DirExists(t, resolved)
}

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

package probcut

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/fkopp/reversicore/internal/util"
)

// LoadStats reads a fitted Stats table from path: two back-to-back
// maxEmpties*maxDepth*maxReduction little-endian float64 arrays (Mu, then
// Sigma), resolved via internal/util.ResolveFile. An empty path is not an
// error and returns a zero-value Stats, which disables cutting (see
// Stats' doc comment). A missing or unreadable file returns a zero-value
// Stats together with the error; callers log the fallback themselves.
func LoadStats(path string) (*Stats, error) {
	if path == "" {
		return &Stats{}, nil
	}
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return &Stats{}, fmt.Errorf("probcut: resolving stats file %q: %w", path, err)
	}
	f, err := os.Open(resolved)
	if err != nil {
		return &Stats{}, fmt.Errorf("probcut: opening stats file %q: %w", resolved, err)
	}
	defer f.Close()

	var s Stats
	if err := binary.Read(f, binary.LittleEndian, &s.Mu); err != nil {
		return &Stats{}, fmt.Errorf("probcut: reading mu table from %q: %w", resolved, err)
	}
	if err := binary.Read(f, binary.LittleEndian, &s.Sigma); err != nil {
		return &Stats{}, fmt.Errorf("probcut: reading sigma table from %q: %w", resolved, err)
	}
	return &s, nil
}

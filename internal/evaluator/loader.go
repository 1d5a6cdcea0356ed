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

package evaluator

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/fkopp/reversicore/internal/pattern"
	"github.com/fkopp/reversicore/internal/util"
)

// weightFileMagic identifies a reversicore weight file so a misconfigured
// path fails fast instead of loading garbage into the evaluator.
const weightFileMagic = "RCW1"

// LoadNetwork reads a weight file: a 4-byte magic, a little-endian uint32
// length, then that many little-endian int32 weights (ScaledScore units).
// A path ending in ".zst" is transparently decompressed first. path is
// resolved relative to the working directory, the executable, or the
// user's home via internal/util.ResolveFile.
func LoadNetwork(path string) (*Network, error) {
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("evaluator: resolving weight file %q: %w", path, err)
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("evaluator: opening weight file %q: %w", resolved, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(resolved, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("evaluator: opening zstd stream in %q: %w", resolved, err)
		}
		defer zr.Close()
		r = zr
	}

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("evaluator: reading magic from %q: %w", resolved, err)
	}
	if string(magic[:]) != weightFileMagic {
		return nil, fmt.Errorf("evaluator: %q is not a reversicore weight file (got magic %q)", resolved, magic)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("evaluator: reading weight count from %q: %w", resolved, err)
	}
	if int32(count) != pattern.FeatureSpaceSize() {
		return nil, fmt.Errorf("evaluator: %q has %d weights, want %d", resolved, count, pattern.FeatureSpaceSize())
	}

	weights := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, weights); err != nil {
		return nil, fmt.Errorf("evaluator: reading weights from %q: %w", resolved, err)
	}

	return &Network{weights: weights}, nil
}

// NewZeroNetwork returns a Network with every weight zero, suitable for
// tests and for the fast evaluator path when no trained weight file is
// configured.
func NewZeroNetwork() *Network {
	return &Network{weights: make([]int32, pattern.FeatureSpaceSize())}
}

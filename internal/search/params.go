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

package search

import "github.com/fkopp/reversicore/internal/bitboard"

// This file holds static, precomputed parameters too specific to belong
// in internal/config, mirroring how the teacher's params.go keeps its
// late-move-reduction and futility-margin tables separate from its
// config structs.

// aspirationWindow returns the half-width of the aspiration window for
// research attempt n (0 = first attempt after the initial guess fails).
// Widens geometrically from config's AspirationStep and gives up (returns
// a window covering the whole score range) after three widenings, at
// which point the caller should fall back to a full-window search.
func aspirationWindow(step bitboard.ScaledScore, n int) bitboard.ScaledScore {
	switch n {
	case 0:
		return step
	case 1:
		return step * 4
	case 2:
		return step * 16
	default:
		return bitboard.ScaleMax - bitboard.ScaleMin
	}
}

// etcSampleLimit caps how many sibling moves Enhanced Transposition
// Cutoff probes before giving up and searching normally; probing every
// sibling blindly would spend more time in TT lookups than the
// full-depth search it is meant to shortcut.
const etcSampleLimit = 8

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

// Statistics are extra counters kept alongside a search, not required for
// correctness but useful for tuning move ordering and pruning.
type Statistics struct {
	NodesVisited uint64
	Evaluations  uint64

	TTHit  uint64
	TTMiss uint64
	TTCuts uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	AspirationResearches uint64
	PVSResearches        uint64
	ReductionResearches  uint64
	BestMoveChanges      uint64

	ETCCuts     uint64
	ProbCutCuts uint64
	WipeoutCuts uint64

	NwsEndgameCacheHits   uint64
	NwsEndgameCacheMisses uint64

	ExactSolves uint64

	CurrentIterationDepth int
	CurrentBestMove        bitboard.Square
	CurrentBestValue       bitboard.ScaledScore
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}

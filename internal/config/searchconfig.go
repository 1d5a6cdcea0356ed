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

package config

// searchConfiguration holds the configuration of one engine instance's
// search: transposition table sizing, the midgame/endgame transition
// thresholds, ProbCut and ETC toggles, and threading.
type searchConfiguration struct {
	// Transposition table
	UseTT        bool
	TTSizeMb     int
	TTBucketSize int

	// Aspiration windows
	UseAspiration  bool
	AspirationStep int // half-width of the first window, in ScaledScore units; widened x4, then x16

	// Enhanced Transposition Cutoff
	UseETC   bool
	ETCDepth int

	// ProbCut
	UseProbCut     bool
	ProbCutDepth   int
	MaxSelectivity int // index into the Selectivity enum, 0..5

	// Move ordering
	UseSearchBasedOrdering bool
	ScoreReductionSigma    float64

	// Endgame transition thresholds, in empty-square counts
	DepthToNwsEndgameCache int
	DepthToShallowSearch   int
	DepthToExactSolve      int // >= 1 enables the hand-written 1-empty solver; 2..4 empties use the generic solver

	// Parallel search
	UseParallelSearch bool
	MaxThreads        int
	MinSplitDepth     int

	// Time management
	MaxExtensionSteps int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSizeMb = 128
	Settings.Search.TTBucketSize = 4

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationStep = 2 * 1024 // two discs, in ScaledScore units

	Settings.Search.UseETC = true
	Settings.Search.ETCDepth = 5

	Settings.Search.UseProbCut = true
	Settings.Search.ProbCutDepth = 4
	Settings.Search.MaxSelectivity = 5

	Settings.Search.UseSearchBasedOrdering = true
	Settings.Search.ScoreReductionSigma = 2.0

	Settings.Search.DepthToNwsEndgameCache = 11
	Settings.Search.DepthToShallowSearch = 7
	Settings.Search.DepthToExactSolve = 4

	Settings.Search.UseParallelSearch = true
	Settings.Search.MaxThreads = 1
	Settings.Search.MinSplitDepth = 4

	Settings.Search.MaxExtensionSteps = 3
}

// setupSearch applies any adjustments that depend on values outside the
// Search sub-config once Setup has decoded the config file.
func setupSearch() {
	if Settings.Search.MaxThreads < 1 {
		Settings.Search.MaxThreads = 1
	}
	if Settings.Search.TTBucketSize < 1 {
		Settings.Search.TTBucketSize = 1
	}
}

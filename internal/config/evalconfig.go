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

// evalConfiguration holds the configuration of the pattern-feature
// evaluator: weight-file locations, which network tier to use at which
// depth, and the fast/shallow evaluator's hand-tuned term weights.
type evalConfiguration struct {
	// Weight files for the two-network evaluator. Paths are resolved via
	// internal/util.ResolveFile relative to the working directory, the
	// executable, or the user's home, in that order. A ".zst" suffix is
	// decompressed transparently on load.
	LargeNetworkWeights string
	SmallNetworkWeights string

	// SmallNetworkEmptiesThreshold switches the evaluator to the cheaper
	// small network at or below this many empty squares; 0 disables the
	// small network.
	SmallNetworkEmptiesThreshold int

	// UseSimd selects the unrolled feature-summation routine when the host
	// CPU reports AVX2; when false or unsupported the scalar loop is used.
	UseSimd bool

	// Fast (non-network) evaluator term weights, used for move ordering at
	// shallow internal nodes and at leaves of endgame shallow search.
	// FastEval reads the mobility, potential-mobility and corner-stability
	// weights only; SquareStaticWeight is not read by any evaluator.
	CornerStabilityWeight int
	MobilityWeight        int
	PotentialMobilityWeight int
	SquareStaticWeight    int

	// ProbCut statistics table path; there are no built-in statistics, so
	// an empty path leaves every sigma at zero and ProbCut never cuts.
	ProbCutStatsPath string
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.LargeNetworkWeights = "./assets/weights/large.weights.zst"
	Settings.Eval.SmallNetworkWeights = "./assets/weights/small.weights.zst"
	Settings.Eval.SmallNetworkEmptiesThreshold = 16
	Settings.Eval.UseSimd = true

	Settings.Eval.CornerStabilityWeight = 25
	Settings.Eval.MobilityWeight = 10
	Settings.Eval.PotentialMobilityWeight = 3
	Settings.Eval.SquareStaticWeight = 1

	Settings.Eval.ProbCutStatsPath = ""
}

// setupEval applies any adjustments that depend on values outside the Eval
// sub-config once Setup has decoded the config file.
func setupEval() {
	if Settings.Eval.SmallNetworkEmptiesThreshold < 0 {
		Settings.Eval.SmallNetworkEmptiesThreshold = 0
	}
}

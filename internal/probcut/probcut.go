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

// Package probcut implements the statistical shallow/deep-search
// correlation tables ProbCut uses to skip a full-depth search whenever a
// cheap shallow search already makes the result overwhelmingly likely.
//
// The idea: at a node of depth d with a reduced search of depth d-r
// available, many positions' deep value v and shallow value v' are
// related by v ~= v' + N(mu, sigma) for mu/sigma estimated empirically
// per (empties, d, r). If a cutoff bound lies more than t*sigma away from
// the shallow value (t chosen from the desired confidence, i.e.
// Selectivity), the shallow search alone is enough to decide the cutoff,
// and the deep search can be skipped entirely.
package probcut

import "math"

// Selectivity picks a confidence level for the statistical cutoff: higher
// levels cut off more aggressively (and more often wrongly). Matches
// config.Settings.Search.MaxSelectivity's 0..5 range, one level short of
// original_source/reversi_core/src/probcut.rs's 0..6 SELECTIVITY table,
// whose level 6 sets t so high (999.0) it never actually cuts - the same
// "effectively disabled" state SelectivityNone already covers here.
type Selectivity uint8

const (
	SelectivityNone Selectivity = iota // ProbCut disabled: 0 (never cut)
	Selectivity1
	Selectivity2
	Selectivity3
	Selectivity4
	Selectivity5
	numSelectivity
)

// tValue is the number of standard deviations the shallow estimate must
// clear for a cutoff at each selectivity level, decreasing as the level
// rises (a smaller t accepts a smaller deviation, so cuts happen more often).
var tValue = [numSelectivity]float64{
	SelectivityNone: math.Inf(1), // never satisfied: ProbCut effectively off
	Selectivity1:    2.652,       // ~99.6% one-sided confidence
	Selectivity2:    2.326,       // ~99%
	Selectivity3:    1.960,       // ~97.5%
	Selectivity4:    1.645,       // ~95%
	Selectivity5:    1.282,       // ~90%
}

// TValue returns the confidence multiplier for a selectivity level.
func TValue(s Selectivity) float64 {
	if s >= numSelectivity {
		s = Selectivity5
	}
	return tValue[s]
}

// maxEmpties/maxDepth/maxReduction bound the statistical tables at 60 rows
// each (indices 0..59); larger indices, such as the 60 empties of the
// opening position, read row 59 via clampIndex.
const (
	maxEmpties   = 60
	maxDepth     = 60
	maxReduction = 60
)

// Stats holds the empirically fitted mu/sigma of the shallow/deep value
// difference, indexed [empties][depth][reduction]. A zero-value Stats
// (mu=0, sigma=0 everywhere) makes every cutoff test trivially fail
// (Bounds returns a window no shallow score can reach wherever sigma is
// zero), so an engine with no fitted statistics file simply runs with
// ProbCut disabled rather than crashing.
type Stats struct {
	Mu    [maxEmpties][maxDepth][maxReduction]float64
	Sigma [maxEmpties][maxDepth][maxReduction]float64
}

// clampIndex keeps table lookups in range for positions/depths beyond
// what the fitted tables cover, reusing the most extreme row fitted.
func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

// Sigma returns the fitted standard deviation of the shallow/deep value
// difference for a shallow search at depth-reduction estimating a
// full-depth result at `depth` with `empties` empty squares, or 0 if the
// table has no fitted data for this cell - callers should treat 0 exactly
// as Bounds does, as "statistically disabled" rather than "zero spread".
// internal/search's score-based move reduction uses this directly (it
// needs the raw spread, not a ready-made cutoff window).
func Sigma(stats *Stats, empties, depth, reduction int) float64 {
	e := clampIndex(empties, maxEmpties)
	d := clampIndex(depth, maxDepth)
	r := clampIndex(reduction, maxReduction)
	return stats.Sigma[e][d][r]
}

// Bounds computes the deep-search alpha/beta window a shallow search of
// depth-reduction `reduction` needs to clear to prove a cutoff at the
// full window [alpha, beta], for a node with `empties` empty squares at
// full search depth `depth`, at confidence level s.
//
// If the shallow search (caller-run, at depth-reduction) returns a score
// >= the returned upper bound, the position fails high with the given
// confidence and the caller may return beta without a full-depth search.
// If it returns <= the returned lower bound, it fails low and the caller
// may return alpha. A sigma of zero (no fitted data for this cell), or
// SelectivityNone's infinite t, disables cutting entirely by returning
// bounds no shallow score could ever reach.
func Bounds(stats *Stats, empties, depth, reduction int, alpha, beta int32, s Selectivity) (shallowLower, shallowUpper int32) {
	e := clampIndex(empties, maxEmpties)
	d := clampIndex(depth, maxDepth)
	r := clampIndex(reduction, maxReduction)

	sigma := stats.Sigma[e][d][r]
	t := TValue(s)
	if sigma <= 0 || math.IsInf(t, 1) {
		return math.MinInt32, math.MaxInt32 // unreachable: disables cutting
	}
	mu := stats.Mu[e][d][r]

	// v_deep ~= v_shallow + mu, stderr sigma. Solve v_shallow such that
	// v_deep's t-sigma confidence interval clears beta (fail high) or
	// alpha (fail low).
	shallowUpper = int32(math.Round(float64(beta) - mu + t*sigma))
	shallowLower = int32(math.Round(float64(alpha) - mu - t*sigma))
	return shallowLower, shallowUpper
}

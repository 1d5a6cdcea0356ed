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

// Package evaluator turns the incremental pattern features maintained in
// internal/pattern into a ScaledScore, via one of two trained weight sets
// (a large network, and a cheaper small network used once the empty-square
// count is at or below config's SmallNetworkEmptiesThreshold) plus a
// hand-weighted fast evaluator used purely for move ordering.
package evaluator

import "github.com/fkopp/reversicore/internal/pattern"

// Network is a flat table of pattern weights, one entry per
// (pattern, base-3 feature value) pair, laid out at the BaseOffset each
// pattern.Patterns entry was assigned. A Network's weights are always
// stored from the mover's perspective, so evaluating just sums the
// weights addressed by pattern.Stack's player vector - there is never a
// separate table for the opponent's perspective.
type Network struct {
	weights []int32 // ScaledScore units, length pattern.FeatureSpaceSize()
}

// Evaluate returns the network's ScaledScore for the side to move at ply,
// reading its feature vector out of stack. The actual summation goes
// through sumFeatures, a function variable chosen once at process start by
// DetectSimd based on what the host CPU supports.
func (n *Network) Evaluate(stack *pattern.Stack, ply int) int32 {
	return sumFeatures(n.weights, stack.Player(ply))
}

// sumFeaturesScalar is the portable summation: one lookup and add per
// pattern, in pattern order.
func sumFeaturesScalar(weights []int32, vec *pattern.Vector) int32 {
	var sum int32
	for k, p := range pattern.Patterns {
		sum += weights[p.BaseOffset+vec[k]]
	}
	return sum
}

// sumFeaturesUnrolled4 is functionally identical to sumFeaturesScalar but
// processes four patterns per iteration. pattern.NumPatterns is a multiple
// of 4 (six base shapes times four rotations), so there is never a
// remainder loop. Selected on hosts with AVX2, where the four independent
// load/add chains give the compiler's autovectorizer a real chance to pack
// them, unlike the single dependent accumulator in sumFeaturesScalar.
func sumFeaturesUnrolled4(weights []int32, vec *pattern.Vector) int32 {
	var s0, s1, s2, s3 int32
	for k := 0; k < pattern.NumPatterns; k += 4 {
		s0 += weights[pattern.Patterns[k].BaseOffset+vec[k]]
		s1 += weights[pattern.Patterns[k+1].BaseOffset+vec[k+1]]
		s2 += weights[pattern.Patterns[k+2].BaseOffset+vec[k+2]]
		s3 += weights[pattern.Patterns[k+3].BaseOffset+vec[k+3]]
	}
	return s0 + s1 + s2 + s3
}

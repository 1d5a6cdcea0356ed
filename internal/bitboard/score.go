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

package bitboard

import "fmt"

// ScaledScore is an integer evaluation in units of 1/1024 of a disc. The
// search's internal arithmetic (aspiration windows, TT scores, negamax
// propagation) stays in scaled units throughout the midgame; the endgame
// solver switches to raw disc-difference integers below the shallow
// threshold and the boundary between the two performs an explicit
// conversion.
type ScaledScore int32

// DiscScale is the number of ScaledScore units per whole disc.
const DiscScale = 1024

const (
	// ScaleMin and ScaleMax bound the representable range with one unit of
	// headroom on each side, so arithmetic such as negation or a +/-1
	// adjustment (mate-distance style bookkeeping in the TT) can never
	// overflow into a sentinel value.
	ScaleMin ScaledScore = -64*DiscScale - 1
	ScaleMax ScaledScore = 64*DiscScale + 1

	// ScaleZero is the neutral (drawn) scaled score.
	ScaleZero ScaledScore = 0

	// AbortedScore is the sentinel returned by any search call that
	// observed the abort flag; callers above must discard it rather than
	// propagate it into alpha/beta or the TT.
	AbortedScore ScaledScore = ScaleMin - 1

	// WipeoutScore represents a move that captures every opponent disc;
	// it must outrank every other move, including TT_MOVE_VALUE ordering,
	// so it sits comfortably above ScaleMax.
	WipeoutScore ScaledScore = 1 << 30
)

// ToDiscs converts a scaled score to whole-disc units, rounding toward zero.
func (s ScaledScore) ToDiscs() int {
	return int(s) / DiscScale
}

// FromDiscs converts a raw disc-difference score into scaled units.
func FromDiscs(discs int) ScaledScore {
	return ScaledScore(discs * DiscScale)
}

// Clamp restricts s to the representable range (ScaleMin+1, ScaleMax-1),
// matching the evaluator contract that a returned scaled score is never a
// sentinel value.
func (s ScaledScore) Clamp() ScaledScore {
	if s <= ScaleMin {
		return ScaleMin + 1
	}
	if s >= ScaleMax {
		return ScaleMax - 1
	}
	return s
}

func (s ScaledScore) String() string {
	return fmt.Sprintf("%d (%.2f discs)", int(s), float64(s)/DiscScale)
}

// Value is a raw disc-difference score (endgame exact scores, and the
// public SearchResult score after conversion). Range is [-64, 64].
type Value int8

const (
	ValueDraw Value = 0
	ValueMin  Value = -64
	ValueMax  Value = 64
)

// ToScaled converts a disc-difference Value to scaled units.
func (v Value) ToScaled() ScaledScore {
	return FromDiscs(int(v))
}

func (v Value) String() string {
	return fmt.Sprintf("%+d", int(v))
}

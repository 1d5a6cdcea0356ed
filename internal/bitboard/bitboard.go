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

// Package bitboard provides the 64-bit board geometry primitives shared by
// every other package: squares, files, ranks, directions and the Bitboard
// type itself together with the bit-parallel shift helpers move generation
// and flip computation are built on.
package bitboard

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per square. Squares are
// numbered file-major: index = file*8 + rank, file 0=A..7=H, rank 0..7
// corresponding to Othello ranks 1..8.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
	BbOne  Bitboard = 1
)

// PushSquare returns b with the bit for the given square set.
func (b Bitboard) PushSquare(s Square) Bitboard {
	return b | s.Bb()
}

// PopSquare returns b with the bit for the given square cleared.
func (b Bitboard) PopSquare(s Square) Bitboard {
	return b &^ s.Bb()
}

// Has tests if a square (bit) is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// Lsb returns the least significant set bit as a Square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns and clears the least significant set bit.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits (the population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftOne shifts every bit of b by one square in direction d, clearing any
// bits that would wrap around the edge of the board. This is the building
// block for the Kogge-Stone style fill used by legal-move and flip
// generation: repeated ShiftOne calls walk a ray one step at a time, each
// masked so a shift off file H or file A can never reappear on the other
// side.
func ShiftOne(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (b &^ rank8Mask) << 1
	case South:
		return (b &^ rank1Mask) >> 1
	case East:
		return (b &^ fileHMask) << 8
	case West:
		return (b &^ fileAMask) >> 8
	case Northeast:
		return (b &^ (rank8Mask | fileHMask)) << 9
	case Southeast:
		return (b &^ (rank1Mask | fileHMask)) << 7
	case Southwest:
		return (b &^ (rank1Mask | fileAMask)) >> 9
	case Northwest:
		return (b &^ (rank8Mask | fileAMask)) >> 7
	}
	return b
}

// String returns the raw 64-bit binary representation.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", uint64(b))
}

// StringBoard renders the bitboard as an 8x8 ASCII board, rank 8 on top,
// mirroring the teacher's board-printing convention.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString(fmt.Sprintf("| %d\n+---+---+---+---+---+---+---+---+\n", r+1))
	}
	return os.String()
}

var sqBb [SqLength]Bitboard

var (
	fileAMask, fileHMask Bitboard
	rank1Mask, rank8Mask Bitboard
)

func init() {
	for s := SqA1; s < SqLength; s++ {
		sqBb[s] = Bitboard(1) << uint(s)
	}
	for r := Rank1; r <= Rank8; r++ {
		fileAMask |= SquareOf(FileA, r).Bb()
		fileHMask |= SquareOf(FileH, r).Bb()
	}
	for f := FileA; f <= FileH; f++ {
		rank1Mask |= SquareOf(f, Rank1).Bb()
		rank8Mask |= SquareOf(f, Rank8).Bb()
	}
}

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

// Square identifies one of the 64 board squares, file-major: A1=0, A2=1, ...
// A8=7, B1=8, ... H8=63. SqNone is the distinguished "no move"/"no square"
// sentinel and must fit in 8 bits.
type Square int8

const (
	SqA1 Square = iota
	SqA2
	SqA3
	SqA4
	SqA5
	SqA6
	SqA7
	SqA8
	SqB1
	SqB2
	SqB3
	SqB4
	SqB5
	SqB6
	SqB7
	SqB8
	SqC1
	SqC2
	SqC3
	SqC4
	SqC5
	SqC6
	SqC7
	SqC8
	SqD1
	SqD2
	SqD3
	SqD4
	SqD5
	SqD6
	SqD7
	SqD8
	SqE1
	SqE2
	SqE3
	SqE4
	SqE5
	SqE6
	SqE7
	SqE8
	SqF1
	SqF2
	SqF3
	SqF4
	SqF5
	SqF6
	SqF7
	SqF8
	SqG1
	SqG2
	SqG3
	SqG4
	SqG5
	SqG6
	SqG7
	SqG8
	SqH1
	SqH2
	SqH3
	SqH4
	SqH5
	SqH6
	SqH7
	SqH8
	SqLength = 64
	SqNone   = Square(-1)
)

// SquareOf returns the square for the given file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int8(f)*8 + int8(r))
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqLength
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq / 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq % 8)
}

// Bb returns the square's Bitboard (a single set bit).
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// String renders the square in algebraic notation, e.g. "d3". SqNone
// renders as "-".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}

// ParseSquare parses algebraic notation such as "a2" or "H4" (case
// insensitive) into a Square. Used by internal/testsuite to read FFO-style
// best-move annotations without pulling in a full PGN/SAN-style parser.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("square: invalid notation %q", s)
	}
	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return SqNone, fmt.Errorf("square: invalid file in %q", s)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return SqNone, fmt.Errorf("square: invalid rank in %q", s)
	}
	return SquareOf(File(file-'a'), Rank(rank-'1')), nil
}

// Direction is one of the eight compass directions used by ray-walking
// move generation, flip computation and stability propagation.
type Direction int8

const (
	North Direction = iota
	East
	South
	West
	Northeast
	Southeast
	Southwest
	Northwest
)

// Directions lists all eight compass directions in a fixed, stable order
// used whenever code needs to iterate "all rays from a square".
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// Player identifies a side: the disc color to move, or its opponent.
// Unlike chess, search never needs a third "neither" value - the board
// is always exactly two bitboards, player-to-move and opponent.
type Player uint8

const (
	Black Player = iota
	White
	PlayerLength
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return p ^ 1
}

// String renders the player as "Black" or "White".
func (p Player) String() string {
	if p == Black {
		return "Black"
	}
	return "White"
}

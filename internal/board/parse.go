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

package board

import (
	"fmt"

	"github.com/fkopp/reversicore/internal/bitboard"
)

// ParseBoardString parses a 64-character board string such as the FFO test
// suite positions use: one character per square in file-major order (A1,
// A2, ... A8, B1, ... H8), 'X' for black, 'O' for white, '-' for empty. mover
// selects which color the returned Board treats as the side to move.
func ParseBoardString(s string, mover bitboard.Player) (Board, error) {
	if len(s) != 64 {
		return Board{}, fmt.Errorf("board string must be 64 characters, got %d", len(s))
	}
	var black, white bitboard.Bitboard
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		switch s[sq] {
		case 'X', 'x':
			black |= sq.Bb()
		case 'O', 'o':
			white |= sq.Bb()
		case '-':
			// empty
		default:
			return Board{}, fmt.Errorf("board string: invalid character %q at index %d", s[sq], sq)
		}
	}
	if mover == bitboard.Black {
		return Board{Player: black, Opponent: white}, nil
	}
	return Board{Player: white, Opponent: black}, nil
}

// BoardString renders b back into the 64-character notation ParseBoardString
// accepts, from the given player's absolute color.
func (b Board) BoardString(mover bitboard.Player) string {
	black, white := b.Player, b.Opponent
	if mover != bitboard.Black {
		black, white = white, black
	}
	buf := make([]byte, 64)
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		switch {
		case black.Has(sq):
			buf[sq] = 'X'
		case white.Has(sq):
			buf[sq] = 'O'
		default:
			buf[sq] = '-'
		}
	}
	return string(buf)
}

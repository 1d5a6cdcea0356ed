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

import "github.com/fkopp/reversicore/internal/bitboard"

// sentinel is the EmptyList's dummy head node, index 64 - one past the last
// real square - so every real Square fits the same prev/next array without
// a separate nil representation.
const sentinel = bitboard.Square(64)

type emptyNode struct {
	prev, next bitboard.Square
}

// EmptyList is a doubly-linked list threaded through the empty squares of a
// position, grouped by quadrant. Remove and Restore are O(1), which is what
// lets the endgame solver recurse through dozens of plies without ever
// rebuilding a move list from scratch: the search calls Remove when it
// plays a square and Restore, in reverse order, when it undoes the move.
//
// Parity tracks, per quadrant, whether the number of empty squares in it is
// currently odd - the classic Othello heuristic of preferring moves into
// odd-parity quadrants in the endgame. Because Remove/Restore always touch
// exactly one square, parity is maintained with a single XOR per call
// rather than a recount.
type EmptyList struct {
	nodes  [65]emptyNode
	parity uint8
}

// NewEmptyList builds an EmptyList over every empty square of empty.
func NewEmptyList(empty bitboard.Bitboard) *EmptyList {
	el := &EmptyList{}
	el.nodes[sentinel] = emptyNode{prev: sentinel, next: sentinel}
	prev := sentinel
	var oddCount [4]int
	for q := 0; q < 4; q++ {
		b := empty
		for b != bitboard.BbZero {
			sq := b.PopLsb()
			if QuadrantOf(sq) != q {
				continue
			}
			el.nodes[prev].next = sq
			el.nodes[sq].prev = prev
			prev = sq
			oddCount[q]++
		}
	}
	el.nodes[prev].next = sentinel
	el.nodes[sentinel].prev = prev
	for q := 0; q < 4; q++ {
		if oddCount[q]%2 == 1 {
			el.parity |= 1 << uint(q)
		}
	}
	return el
}

// QuadrantOf maps a square to one of the four board quadrants (0=A1-D4,
// 1=E1-H4, 2=A5-D8, 3=E5-H8).
func QuadrantOf(sq bitboard.Square) int {
	q := 0
	if sq.FileOf() >= bitboard.FileE {
		q |= 1
	}
	if sq.RankOf() >= bitboard.Rank5 {
		q |= 2
	}
	return q
}

// Remove unlinks sq from the list in O(1) and toggles its quadrant's
// parity bit. The node's prev/next pointers are left untouched so a later
// Restore can splice it back in without re-deriving its neighbors.
func (el *EmptyList) Remove(sq bitboard.Square) {
	n := el.nodes[sq]
	el.nodes[n.prev].next = n.next
	el.nodes[n.next].prev = n.prev
	el.parity ^= 1 << uint(QuadrantOf(sq))
}

// Restore re-inserts sq at the position it occupied before the most recent
// matching Remove call. Remove/Restore calls must nest like a stack, the
// same discipline the search already uses for make/undo.
func (el *EmptyList) Restore(sq bitboard.Square) {
	n := el.nodes[sq]
	el.nodes[n.prev].next = sq
	el.nodes[n.next].prev = sq
	el.parity ^= 1 << uint(QuadrantOf(sq))
}

// ParityOdd reports whether quadrant q currently holds an odd number of
// empty squares.
func (el *EmptyList) ParityOdd(q int) bool {
	return el.parity&(1<<uint(q)) != 0
}

// ForEach walks the remaining empty squares in list order: quadrant 0
// first, and ascending square index within each quadrant.
func (el *EmptyList) ForEach(f func(sq bitboard.Square)) {
	for sq := el.nodes[sentinel].next; sq != sentinel; sq = el.nodes[sq].next {
		f(sq)
	}
}

// Len counts the remaining empty squares by walking the list; used only in
// tests and assertions, never on a search hot path.
func (el *EmptyList) Len() int {
	n := 0
	el.ForEach(func(bitboard.Square) { n++ })
	return n
}

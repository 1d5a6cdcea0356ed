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

package movelist

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fkopp/reversicore/internal/board"
)

// MoveList is a generated, partially-ordered set of legal moves for one
// position. Moves are scored by the caller (the search assigns a static
// or shallow-search-based score after generation) and consumed either via
// Sort+range, NextBest's lazy selection sort, or an atomic Cursor shared
// by several search threads.
type MoveList []Move

// Generate builds the move list for b: one Move per set bit of
// b.LegalMoves(), each with its flip bitboard precomputed and Score left
// at zero for the caller to fill in.
func Generate(b board.Board) MoveList {
	legal := b.LegalMoves()
	ml := make(MoveList, 0, legal.PopCount())
	rest := legal
	for rest != 0 {
		sq := rest.PopLsb()
		ml = append(ml, Move{Sq: sq, Flip: b.FlipsFor(sq)})
	}
	return ml
}

// Len, as for any slice-backed collection.
func (ml MoveList) Len() int { return len(ml) }

// Clear empties the list while retaining its backing array's capacity.
func (ml *MoveList) Clear() { *ml = (*ml)[:0] }

// WipeoutMove returns the first move in ml that flips every disc b's
// opponent holds, and true, or the zero Move and false if none does. A
// caller that finds one can play it immediately without evaluating or
// searching the rest of the list.
func (ml MoveList) WipeoutMove(b board.Board) (Move, bool) {
	for _, m := range ml {
		if m.IsWipeout(b.Opponent) {
			return m, true
		}
	}
	return Move{}, false
}

// Sort orders ml from highest Score to lowest using a stable insertion
// sort: move lists are short (at most 30-ish entries, usually far fewer)
// and often nearly sorted already from the previous iterative-deepening
// pass, which insertion sort handles in close to linear time.
func (ml MoveList) Sort() {
	for i := 1; i < len(ml); i++ {
		tmp := ml[i]
		j := i
		for j > 0 && tmp.Score > ml[j-1].Score {
			ml[j] = ml[j-1]
			j--
		}
		ml[j] = tmp
	}
}

// NextBest implements a lazy selection sort: it scans from index
// (already-yielded) to the end of ml for the highest-Score remaining
// move, swaps it into position, and returns it. Unlike Sort, which orders
// the whole list up front, NextBest only pays for as many moves as the
// caller actually asks for - useful at nodes that beta-cut after the
// first one or two moves, which is the common case in a well-ordered
// search.
func (ml MoveList) NextBest(alreadyYielded int) (Move, bool) {
	if alreadyYielded >= len(ml) {
		return Move{}, false
	}
	best := alreadyYielded
	for i := alreadyYielded + 1; i < len(ml); i++ {
		if ml[i].Score > ml[best].Score {
			best = i
		}
	}
	ml[alreadyYielded], ml[best] = ml[best], ml[alreadyYielded]
	return ml[alreadyYielded], true
}

// Cursor hands out moves from a single MoveList to any number of search
// threads concurrently, each move going to exactly one caller. It assumes
// ml is already sorted (or drained via NextBest up to some point) by the
// owning thread before other threads are allowed to pull from it - the
// atomic index only arbitrates the handout race, not the ordering.
type Cursor struct {
	ml   MoveList
	next int32
}

// NewCursor wraps ml for concurrent consumption.
func NewCursor(ml MoveList) *Cursor {
	return &Cursor{ml: ml}
}

// Next atomically claims and returns the next unclaimed move, or false
// once the list is exhausted. Safe for concurrent use by multiple
// goroutines.
func (c *Cursor) Next() (Move, int, bool) {
	i := atomic.AddInt32(&c.next, 1) - 1
	if int(i) >= len(c.ml) {
		return Move{}, 0, false
	}
	return c.ml[i], int(i), true
}

// String renders the list as "MoveList: [n] { a1(+3), b2(+1), ... }".
func (ml MoveList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList: [%d] { ", len(ml))
	for i, m := range ml {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

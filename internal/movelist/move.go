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

// Package movelist generates and orders Othello moves: a flip-annotated
// move list, a lazy selection-sort iterator for single-threaded search,
// and an atomic cursor so several search threads can drain the same list
// without a lock.
package movelist

import (
	"fmt"

	"github.com/fkopp/reversicore/internal/bitboard"
)

// Move is one legal move: the square played, the bitboard of discs it
// flips (precomputed at generation time so MakeMove never has to recompute
// it), and a search-assigned ordering score.
//
// Flip is carried on the move itself, not recomputed from Board.FlipsFor
// at make-time, because move ordering in the search routinely evaluates
// many moves' resulting positions before actually descending into most of
// them (ETC, ProbCut, static ordering) - precomputing once amortizes
// across all of that.
type Move struct {
	Sq    bitboard.Square
	Flip  bitboard.Bitboard
	Score int32

	// Reduction is the number of plies orderMidgame's score-based
	// reduction (see internal/search) wants shaved off this move's
	// initial search depth: set once per node, from a shallow-search
	// comparison against the node's best shallow value, and consumed by
	// the midgame move loop before the usual null-window re-search.
	Reduction int8
}

// IsWipeout reports whether this move flips every disc the opponent had
// before the move, leaving them with none - an immediate win that ends
// the game without further search. opponentDiscs is Board.Opponent as it
// stood before the move.
func (m Move) IsWipeout(opponentDiscs bitboard.Bitboard) bool {
	return m.Flip == opponentDiscs
}

// String renders the move as its square plus flip count, e.g. "d3(+5)".
func (m Move) String() string {
	return fmt.Sprintf("%s(+%d)", m.Sq.String(), m.Flip.PopCount())
}

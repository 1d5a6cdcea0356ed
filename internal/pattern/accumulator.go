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

package pattern

import (
	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
)

// MaxPly bounds the accumulator stack. An Othello game tree can go no
// deeper than the number of empty squares at the root (at most 60), so 64
// leaves headroom for the few plies of search overhead above the root.
const MaxPly = 64

// Stack threads the incremental feature vectors through a search
// recursion's make/undo calls, indexed by ply so undo is a pointer
// decrement rather than an inverse arithmetic pass.
//
// player[ply] and opponent[ply] are always the feature vectors for
// whichever color is Board.Player / Board.Opponent at that ply - not a
// fixed absolute color. Push computes ply+1 from ply's already-known
// vectors in O(patterns touched), typically 2-4 per flipped square.
type Stack struct {
	player   [MaxPly + 1]Vector
	opponent [MaxPly + 1]Vector
}

// NewStack builds a Stack with ply 0 seeded from b.
func NewStack(b board.Board) *Stack {
	s := &Stack{}
	s.player[0], s.opponent[0] = ComputeFull(b)
	return s
}

// Player returns the side-to-move's feature vector at ply.
func (s *Stack) Player(ply int) *Vector { return &s.player[ply] }

// Opponent returns the non-moving side's feature vector at ply.
func (s *Stack) Opponent(ply int) *Vector { return &s.opponent[ply] }

// Push computes ply+1's vectors from ply's, given the square just played
// and the bitboard of discs it flipped, both in ply's own Board
// perspective (i.e. bitboard.Square/flip as returned by Board.MakeMove).
//
// The mover's own vector becomes the new opponent vector: its trits at sq
// and at every flipped square go from empty/enemy to self. The non-mover's
// vector becomes the new player vector: its trits at the same squares go
// from empty/self to enemy. In trits (0=self, 1=enemy, 2=empty): at sq the
// mover goes 2->0 and the other side 2->1; at a flipped square the mover
// goes 1->0 and the other side 0->1.
func (s *Stack) Push(ply int, sq bitboard.Square, flip bitboard.Bitboard) {
	newOpponent := s.player[ply]
	newPlayer := s.opponent[ply]

	for _, ref := range squarePatterns[sq] {
		newOpponent[ref.pattern] -= 2 * ref.placeValue
		newPlayer[ref.pattern] -= ref.placeValue
	}

	rest := flip
	for rest != 0 {
		fsq := rest.PopLsb()
		for _, ref := range squarePatterns[fsq] {
			newOpponent[ref.pattern] -= ref.placeValue
			newPlayer[ref.pattern] += ref.placeValue
		}
	}

	s.player[ply+1] = newPlayer
	s.opponent[ply+1] = newOpponent
}

// PushPass copies ply's vectors into ply+1 with the player/opponent roles
// swapped and no square changes, mirroring Board.Pass.
func (s *Stack) PushPass(ply int) {
	s.player[ply+1] = s.opponent[ply]
	s.opponent[ply+1] = s.player[ply]
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
)

func TestFeatureSpaceSize(t *testing.T) {
	// 5 non-corner shapes * 4 rotations * 3^8 + 1 corner shape * 4 rotations * 3^9
	assert.EqualValues(t, 5*4*6561+4*19683, FeatureSpaceSize())
	assert.EqualValues(t, 209952, FeatureSpaceSize())
}

func TestPatternsCoverSpansAndOffsets(t *testing.T) {
	var total int32
	for i, p := range Patterns {
		assert.Len(t, p.Squares, len(p.PlaceValue))
		assert.Equal(t, total, p.BaseOffset, "pattern %d base offset must follow the previous pattern's span", i)
		total += p.Span
	}
	assert.Equal(t, FeatureSpaceSize(), total)
}

func TestComputeFullOnStartBoardIsSymmetric(t *testing.T) {
	b := board.StartBoard()
	player, opponent := ComputeFull(b)
	// Swapping the colors of the opening position gives the same position
	// rotated by 90 degrees, so each pattern's opponent vector equals the
	// player vector of the next rotation of the same base shape.
	for s := 0; s < NumPatterns; s += 4 {
		for r := 0; r < 4; r++ {
			assert.Equal(t, opponent[s+r], player[s+(r+1)%4], "pattern %d", s+r)
		}
	}
}

func TestComputeFullTritsAreInRange(t *testing.T) {
	b := board.StartBoard()
	player, opponent := ComputeFull(b)
	for k, p := range Patterns {
		assert.True(t, player[k] >= 0 && player[k] < p.Span)
		assert.True(t, opponent[k] >= 0 && opponent[k] < p.Span)
	}
}

// TestPushMatchesComputeFullFromScratch exercises the incremental feature
// update: for every legal move from the standard opening, Stack.Push's
// result must equal ComputeFull on the resulting board, for both the new
// player's and new opponent's vectors.
func TestPushMatchesComputeFullFromScratch(t *testing.T) {
	b := board.StartBoard()
	legal := b.LegalMoves()
	require.True(t, legal.PopCount() > 0)

	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		if !legal.Has(sq) {
			continue
		}
		next, flip := b.MakeMove(sq)
		require.NotEqual(t, bitboard.BbZero, flip, "square %s", sq)

		stack := NewStack(b)
		stack.Push(0, sq, flip)

		wantPlayer, wantOpponent := ComputeFull(next)
		assert.Equal(t, wantPlayer, *stack.Player(1), "player vector mismatch after move %s", sq)
		assert.Equal(t, wantOpponent, *stack.Opponent(1), "opponent vector mismatch after move %s", sq)
	}
}

// TestPushPassSwapsVectorsOnly mirrors board.Board.Pass: the feature
// vectors swap roles with no square changes.
func TestPushPassSwapsVectorsOnly(t *testing.T) {
	b := board.StartBoard()
	sq := firstLegalSquare(t, b)
	afterMove, _ := b.MakeMove(sq)

	stack := NewStack(afterMove)
	stack.PushPass(0)

	passed := afterMove.Pass()
	wantPlayer, wantOpponent := ComputeFull(passed)
	assert.Equal(t, wantPlayer, *stack.Player(1))
	assert.Equal(t, wantOpponent, *stack.Opponent(1))
}

func firstLegalSquare(t *testing.T, b board.Board) bitboard.Square {
	t.Helper()
	legal := b.LegalMoves()
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		if legal.Has(sq) {
			return sq
		}
	}
	t.Fatal("no legal move found")
	return bitboard.SqNone
}

func TestSquarePatternsHaveNoMoreThanFourMemberships(t *testing.T) {
	// Every square belongs to at least one pattern and never more than all
	// of them; this is a sanity bound, not a tight one.
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		refs := squarePatterns[sq]
		assert.True(t, len(refs) > 0, "square %s should belong to at least one pattern", sq)
		assert.True(t, len(refs) <= NumPatterns, "square %s", sq)
	}
}

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

// Package board represents an Othello position and the geometry operations
// built on top of it: legal- and potential-move masks, the flip bitboard for
// a candidate move, corner stability, a 64-bit hash, and the doubly-linked
// empty-square list the endgame solver threads through its recursion.
//
// Board is a small value type - two bitboards, always given from the
// perspective of the side to move. There is no explicit "color" field: after
// MakeMove or Pass the two bitboards swap roles, matching a negamax search's
// expectations directly.
package board

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/fkopp/reversicore/internal/bitboard"
)

// Board holds the two bitboards of an Othello position, Player (the side to
// move) and Opponent. It is immutable: every transition (MakeMove, Pass)
// returns a new value rather than mutating the receiver, so a Board can be
// freely copied, stored in a slice, or captured by a closure.
type Board struct {
	Player   bitboard.Bitboard
	Opponent bitboard.Bitboard
}

// StartBoard returns the standard Othello starting position, Black to move.
func StartBoard() Board {
	black := bitboard.SquareOf(bitboard.FileD, bitboard.Rank5).Bb() |
		bitboard.SquareOf(bitboard.FileE, bitboard.Rank4).Bb()
	white := bitboard.SquareOf(bitboard.FileD, bitboard.Rank4).Bb() |
		bitboard.SquareOf(bitboard.FileE, bitboard.Rank5).Bb()
	return Board{Player: black, Opponent: white}
}

// Empty returns the bitboard of empty squares.
func (b Board) Empty() bitboard.Bitboard {
	return ^(b.Player | b.Opponent)
}

// PlayerCount returns the side-to-move's disc count.
func (b Board) PlayerCount() int {
	return b.Player.PopCount()
}

// OpponentCount returns the opponent's disc count.
func (b Board) OpponentCount() int {
	return b.Opponent.PopCount()
}

// EmptyCount returns the number of empty squares.
func (b Board) EmptyCount() int {
	return 64 - b.Player.PopCount() - b.Opponent.PopCount()
}

// PotentialMoves returns the empty squares adjacent (in any of the eight
// directions) to at least one opponent disc - a cheap superset of the legal
// moves used by the fast evaluator's "potential mobility" term.
func (b Board) PotentialMoves() bitboard.Bitboard {
	empty := b.Empty()
	var pm bitboard.Bitboard
	for _, d := range bitboard.Directions {
		pm |= bitboard.ShiftOne(b.Opponent, d)
	}
	return pm & empty
}

// LegalMoves returns the bitboard of squares the side to move may legally
// play on. A square is legal iff playing there flips at least one opponent
// disc. Computed directionally with the same bit-parallel fill technique as
// ShiftOne's single-step masking: for each of the eight directions, run the
// opponent occupancy up to six squares out from Player, then test whether
// the next square in that run is empty.
func (b Board) LegalMoves() bitboard.Bitboard {
	empty := b.Empty()
	var moves bitboard.Bitboard
	for _, d := range bitboard.Directions {
		moves |= legalMovesDir(b.Player, b.Opponent, empty, d)
	}
	return moves
}

func legalMovesDir(player, opponent, empty bitboard.Bitboard, d bitboard.Direction) bitboard.Bitboard {
	run := bitboard.ShiftOne(player, d) & opponent
	for i := 0; i < 5; i++ {
		run |= bitboard.ShiftOne(run, d) & opponent
	}
	return bitboard.ShiftOne(run, d) & empty
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without materializing the full move bitboard.
func (b Board) HasLegalMove() bool {
	return b.LegalMoves() != bitboard.BbZero
}

// IsTerminal reports whether neither side can move: the game has ended.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMove() && !b.Pass().HasLegalMove()
}

// FlipsFor returns the bitboard of opponent discs that playing on sq would
// flip. A square is legal iff this is non-empty; a square whose flip
// bitboard equals the entire Opponent occupancy is a wipeout move.
func (b Board) FlipsFor(sq bitboard.Square) bitboard.Bitboard {
	var total bitboard.Bitboard
	for _, d := range bitboard.Directions {
		total |= b.flipDir(sq, d)
	}
	return total
}

// flipDir walks one ray from sq in direction d, collecting opponent discs
// until it either runs off the board / hits an empty square (no flip in
// this direction) or is capped by a Player disc (the run flips).
func (b Board) flipDir(sq bitboard.Square, d bitboard.Direction) bitboard.Bitboard {
	var run bitboard.Bitboard
	cur := bitboard.ShiftOne(sq.Bb(), d)
	for cur != bitboard.BbZero && cur&b.Opponent != 0 {
		run |= cur
		cur = bitboard.ShiftOne(cur, d)
	}
	if cur&b.Player != 0 {
		return run
	}
	return bitboard.BbZero
}

// MakeMove plays sq for the side to move and returns the resulting Board,
// from the new side to move's perspective, together with the bitboard of
// discs that were flipped (the evaluator needs this to update its
// incremental pattern-feature state in lockstep). The caller is responsible
// for verifying sq is legal; MakeMove on an illegal square silently places a
// disc that flips nothing.
func (b Board) MakeMove(sq bitboard.Square) (Board, bitboard.Bitboard) {
	flip := b.FlipsFor(sq)
	moverDiscs := b.Player | flip | sq.Bb()
	opponentDiscs := b.Opponent &^ flip
	return Board{Player: opponentDiscs, Opponent: moverDiscs}, flip
}

// Pass swaps perspective without changing the disc layout, used when the
// side to move has no legal move but the game is not yet over.
func (b Board) Pass() Board {
	return Board{Player: b.Opponent, Opponent: b.Player}
}

// StableDiscs returns an approximation of the discs of the given color that
// can never be flipped: a disc is stable along an axis (the rank, the file,
// or either diagonal through it) if that whole line is already full - no
// future move can ever land on it - or if, looking each way along the axis,
// every square out to the edge is either off the board or already a stable
// disc of the same color. A disc is globally stable once every one of its
// four axes is safe. The four axis checks are transitive-closure iterated
// to a fixpoint, seeded at the corners (always stable, and always safe on
// every axis trivially).
func (b Board) StableDiscs(discs bitboard.Bitboard) bitboard.Bitboard {
	empty := b.Empty()
	stable := discs & corners
	for {
		next := stable
		var sq bitboard.Square
		candidates := discs &^ stable
		for candidates != bitboard.BbZero {
			sq = candidates.PopLsb()
			if b.squareStableOnAllAxes(sq, discs, stable, empty) {
				next |= sq.Bb()
			}
		}
		if next == stable {
			return stable
		}
		stable = next
	}
}

// axisPairs groups the eight directions into the four line axes a disc must
// be safe on to be stable: rank, file, and the two diagonals.
var axisPairs = [4][2]bitboard.Direction{
	{bitboard.East, bitboard.West},
	{bitboard.North, bitboard.South},
	{bitboard.Northeast, bitboard.Southwest},
	{bitboard.Northwest, bitboard.Southeast},
}

func (b Board) squareStableOnAllAxes(sq bitboard.Square, discs, stable, empty bitboard.Bitboard) bool {
	for axis, pair := range axisPairs {
		if lineFull(sq, axis, empty) {
			continue
		}
		if !edgeOrStable(sq, pair[0], discs, stable) || !edgeOrStable(sq, pair[1], discs, stable) {
			return false
		}
	}
	return true
}

// edgeOrStable reports whether walking one step from sq in direction d
// either runs off the board, or lands on a disc already known to be stable.
func edgeOrStable(sq bitboard.Square, d bitboard.Direction, discs, stable bitboard.Bitboard) bool {
	next := bitboard.ShiftOne(sq.Bb(), d)
	if next == bitboard.BbZero {
		return true
	}
	return next&discs != 0 && next&stable != 0
}

func lineFull(sq bitboard.Square, axis int, empty bitboard.Bitboard) bool {
	return axisLineMask[axis][sq]&empty == bitboard.BbZero
}

var corners = bitboard.SquareOf(bitboard.FileA, bitboard.Rank1).Bb() |
	bitboard.SquareOf(bitboard.FileA, bitboard.Rank8).Bb() |
	bitboard.SquareOf(bitboard.FileH, bitboard.Rank1).Bb() |
	bitboard.SquareOf(bitboard.FileH, bitboard.Rank8).Bb()

// axisLineMask[axis][sq] is the full line (rank, file, or one of the two
// diagonals) passing through sq, precomputed once at package init.
var axisLineMask [4][bitboard.SqLength]bitboard.Bitboard

func init() {
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		axisLineMask[0][sq] = sq.RankOf().Bb()
		axisLineMask[1][sq] = sq.FileOf().Bb()
		axisLineMask[2][sq] = diagonalMask(sq, bitboard.Northeast, bitboard.Southwest)
		axisLineMask[3][sq] = diagonalMask(sq, bitboard.Northwest, bitboard.Southeast)
	}
	// lineFlipCount depends on axisLineMask above, so it is built here
	// rather than in its own init(): Go does not guarantee init() order
	// across files beyond lexical order, and this keeps the dependency
	// explicit instead of relying on that convention.
	for axis := 0; axis < 4; axis++ {
		for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
			precomputeLineFlipCount(axis, sq)
		}
	}
}

func diagonalMask(sq bitboard.Square, fwd, back bitboard.Direction) bitboard.Bitboard {
	line := sq.Bb()
	cur := sq.Bb()
	for cur != bitboard.BbZero {
		cur = bitboard.ShiftOne(cur, fwd)
		line |= cur
	}
	cur = sq.Bb()
	for cur != bitboard.BbZero {
		cur = bitboard.ShiftOne(cur, back)
		line |= cur
	}
	return line
}

// Hash returns a 64-bit digest of the position. Unlike a chess Position,
// Board has no piece-square array to maintain an incremental Zobrist key
// for - it is exactly two uint64s - so the hash is a direct xxhash of the
// two bitboards rather than an XOR-accumulated key threaded through
// make/unmake.
func (b Board) Hash() uint64 {
	var buf [16]byte
	putUint64(buf[0:8], uint64(b.Player))
	putUint64(buf[8:16], uint64(b.Opponent))
	return xxhash.Sum64(buf[:])
}

func putUint64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}

// String renders the board as an 8x8 ASCII diagram from White's absolute
// perspective is not meaningful here since Board has no absolute color; X
// marks the side to move, O marks the opponent.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("side to move: %d  opponent: %d  empty: %d\n",
		b.PlayerCount(), b.OpponentCount(), b.EmptyCount()))
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := bitboard.Rank8; r >= bitboard.Rank1; r-- {
		for f := bitboard.FileA; f <= bitboard.FileH; f++ {
			sq := bitboard.SquareOf(f, r)
			switch {
			case b.Player.Has(sq):
				sb.WriteString("| X ")
			case b.Opponent.Has(sq):
				sb.WriteString("| O ")
			default:
				sb.WriteString("|   ")
			}
		}
		sb.WriteString(fmt.Sprintf("| %d\n+---+---+---+---+---+---+---+---+\n", r+1))
	}
	return sb.String()
}

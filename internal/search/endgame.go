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

package search

import (
	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/movelist"
)

// oddParityBonus breaks ties between moves the least-mover heuristic scores
// identically: playing into an odd-parity quadrant leaves the opponent the
// last move in that quadrant, the classic Othello endgame parity edge.
const oddParityBonus = 1

// orderEndgame scores each move by the "least mover" heuristic: the
// fewer legal replies the opponent has afterward, the sooner this move
// is tried. It ignores the fast evaluator entirely - near the end of the
// game mobility dominates every other term, and skipping the network
// call matters when millions of endgame nodes are visited per second. el
// (the empty squares remaining in b) supplies a quadrant-parity tie-break
// on top of that heuristic; el may be nil, in which case the tie-break is
// skipped.
func (w *Worker) orderEndgame(b board.Board, ml movelist.MoveList, el *board.EmptyList) {
	for i := range ml {
		child, _ := b.MakeMove(ml[i].Sq)
		score := -int32(child.LegalMoves().PopCount())
		if el != nil && el.ParityOdd(board.QuadrantOf(ml[i].Sq)) {
			score += oddParityBonus
		}
		ml[i].Score = score
	}
}

// solveOneEmpty is the hand-written 1-empty solver: the board has
// exactly one empty square left, so the result is decided by a single
// O(1) flip-count lookup (board.CountLastFlip) rather than a full
// FlipsFor ray walk, matching config.Settings.Search.DepthToExactSolve's
// documented "hand-written solvers" tier.
func (w *Worker) solveOneEmpty(b board.Board) bitboard.Value {
	sq := b.Empty().Lsb()

	if flips := board.CountLastFlip(b.Player, b.Opponent, sq); flips > 0 {
		p := b.PlayerCount() + 1 + flips
		o := b.OpponentCount() - flips
		return bitboard.Value(p - o)
	}
	if flips := board.CountLastFlip(b.Opponent, b.Player, sq); flips > 0 {
		o := b.OpponentCount() + 1 + flips
		p := b.PlayerCount() - flips
		return bitboard.Value(p - o)
	}
	// Neither side can play the last square: it stays empty forever: the
	// game is over with the board as it stands.
	return finalValue(b)
}

// solveEndgame is the exact disc-difference solver used once
// b.EmptyCount() falls to or below DepthToShallowSearch: a fail-soft
// alpha-beta recursion in raw Value units, all the way to the end of the
// game, backed by the thread-local endgameCache for positions reached by
// more than one move order within the same null-window search. el tracks
// b's empty squares incrementally across the recursion - Remove before each
// recursive call, Restore after - rather than being rebuilt from b at every
// node, so the quadrant-parity tie-break orderEndgame uses stays O(1) per
// move all the way down.
func (w *Worker) solveEndgame(b board.Board, el *board.EmptyList, alpha, beta bitboard.Value) bitboard.Value {
	w.Stats.NodesVisited++
	w.Stats.ExactSolves++

	empties := b.EmptyCount()
	if empties == 0 {
		return finalValue(b)
	}
	if empties == 1 && config.Settings.Search.DepthToExactSolve >= 1 {
		return w.solveOneEmpty(b)
	}

	nwsWindow := alpha+1 == beta
	key := b.Hash()
	if nwsWindow && empties <= config.Settings.Search.DepthToNwsEndgameCache {
		if w.shared != nil {
			if v, ok := w.shared.Get(key); ok {
				w.Stats.NwsEndgameCacheHits++
				return bitboard.Value(v)
			}
		}
		if v, ok := w.nwsCache.get(key); ok {
			w.Stats.NwsEndgameCacheHits++
			return bitboard.Value(v)
		}
		w.Stats.NwsEndgameCacheMisses++
	}

	ml := movelist.Generate(b)
	if ml.Len() == 0 {
		passed := b.Pass()
		if !passed.HasLegalMove() {
			return finalValue(b)
		}
		return -w.solveEndgame(passed, el, -beta, -alpha)
	}

	if _, ok := ml.WipeoutMove(b); ok {
		return bitboard.ValueMax
	}

	w.orderEndgame(b, ml, el)
	ml.Sort()

	bestValue := bitboard.ValueMin - 1
	for i := 0; i < ml.Len(); i++ {
		m, _ := ml.NextBest(i)
		child, _ := b.MakeMove(m.Sq)
		el.Remove(m.Sq)
		v := -w.solveEndgame(child, el, -beta, -alpha)
		el.Restore(m.Sq)

		if v > bestValue {
			bestValue = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}

	if nwsWindow && empties <= config.Settings.Search.DepthToNwsEndgameCache {
		w.nwsCache.put(key, int32(bestValue))
		if w.shared != nil {
			w.shared.Put(key, int32(bestValue))
		}
	}
	return bestValue
}

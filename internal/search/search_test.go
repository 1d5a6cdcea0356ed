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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/evaluator"
	"github.com/fkopp/reversicore/internal/movelist"
	"github.com/fkopp/reversicore/internal/pattern"
	"github.com/fkopp/reversicore/internal/probcut"
	"github.com/fkopp/reversicore/internal/transposition"
)

func newTestSearch() *Search {
	tt := transposition.NewTable(1, transposition.BucketSize)
	eval := evaluator.NewEvaluator()
	return NewSearch(tt, eval, nil)
}

func TestRunReturnsLegalRootMove(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	limits := &Limits{Depth: 3}

	r := s.Run(b, limits, nil)
	assert.True(t, b.LegalMoves().Has(r.Best))
	assert.True(t, r.Depth >= 1)
}

func TestRunInvokesProgressForEveryIteration(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	limits := &Limits{Depth: 3}

	var seenDepths []int
	s.Run(b, limits, func(r Result) { seenDepths = append(seenDepths, r.Depth) })
	assert.Equal(t, []int{1, 2, 3}, seenDepths)
}

func TestStopAbortsRun(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	// Run clears the abort flag when it starts, so Stop is called from the
	// progress callback once the first iteration has been reported; the
	// aborted depth-2 iteration is discarded rather than reported.
	r := s.Run(b, &Limits{Depth: 20}, func(Result) { s.Stop() })
	assert.True(t, r.Depth <= 1)
}

func TestFinalValueAwardsEmptiesToLeader(t *testing.T) {
	var player, opponent bitboard.Bitboard
	for _, sq := range []bitboard.Square{bitboard.SqA1, bitboard.SqA2, bitboard.SqA3} {
		player = player.PushSquare(sq)
	}
	opponent = opponent.PushSquare(bitboard.SqH8)
	b := board.Board{Player: player, Opponent: opponent}

	// 3 player discs + 60 empties awarded to the leader = 63, vs 1 for
	// the trailing side: 63 - 1 = 62.
	assert.EqualValues(t, 62, finalValue(b))
}

func TestFinalValueOnFullBoardIsJustTheDiscCount(t *testing.T) {
	player, opponent := splitBoardHalves()
	b := board.Board{Player: player, Opponent: opponent}
	require.Equal(t, 0, b.EmptyCount())
	assert.EqualValues(t, b.PlayerCount()-b.OpponentCount(), finalValue(b))
}

// splitBoardHalves fills every square: files a-d to the player, e-h to the
// opponent, leaving no empties.
func splitBoardHalves() (player, opponent bitboard.Bitboard) {
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		if sq.FileOf() <= bitboard.FileD {
			player = player.PushSquare(sq)
		} else {
			opponent = opponent.PushSquare(sq)
		}
	}
	return player, opponent
}

func TestScaledToValueFloorAndCeilRoundOutward(t *testing.T) {
	assert.EqualValues(t, 1, scaledToValueFloor(bitboard.FromDiscs(1)))
	assert.EqualValues(t, -1, scaledToValueFloor(bitboard.ScaledScore(-1)))
	assert.EqualValues(t, 0, scaledToValueCeil(bitboard.ScaledScore(-1)))
	assert.EqualValues(t, 1, scaledToValueCeil(bitboard.ScaledScore(1)))
}

func TestClampValueBounds(t *testing.T) {
	assert.Equal(t, bitboard.ValueMin, clampValue(int(bitboard.ValueMin)-100))
	assert.Equal(t, bitboard.ValueMax, clampValue(int(bitboard.ValueMax)+100))
}

func TestAspirationWindowWidensThenGivesUp(t *testing.T) {
	step := bitboard.ScaledScore(100)
	assert.Equal(t, step, aspirationWindow(step, 0))
	assert.Equal(t, step*4, aspirationWindow(step, 1))
	assert.Equal(t, step*16, aspirationWindow(step, 2))
	assert.Equal(t, bitboard.ScaleMax-bitboard.ScaleMin, aspirationWindow(step, 3))
}

func TestSolveEndgameOnFullBoardMatchesFinalValue(t *testing.T) {
	s := newTestSearch()
	player, opponent := splitBoardHalves()
	b := board.Board{Player: player, Opponent: opponent}

	el := board.NewEmptyList(b.Empty())
	v := s.worker.solveEndgame(b, el, bitboard.ValueMin, bitboard.ValueMax)
	assert.Equal(t, finalValue(b), v)
}

func TestNegamaxReturnsScoreWithinWindowBounds(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	stack := pattern.NewStack(b)
	v := s.worker.Negamax(b, stack, 0, 4, bitboard.ScaleMin, bitboard.ScaleMax)
	assert.True(t, v >= bitboard.ScaleMin && v <= bitboard.ScaleMax)
}

func TestEtcCutoffFindsNoCutoffOnEmptyTable(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	ml := movelist.Generate(b)
	_, ok := s.worker.etcCutoff(b, ml, bitboard.ScaleMax)
	assert.False(t, ok, "an empty transposition table can never support an ETC cutoff")
}

func TestOrderMidgameBoostsTTMove(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	stack := pattern.NewStack(b)
	ml := movelist.Generate(b)
	ttMove := ml[len(ml)-1].Sq

	s.worker.orderMidgame(b, stack, 0, 4, ml, ttMove, bitboard.ScaleMin, bitboard.ScaleMax)
	for _, m := range ml {
		if m.Sq == ttMove {
			for _, other := range ml {
				if other.Sq != ttMove {
					assert.True(t, m.Score > other.Score, "the TT-remembered move must outscore every other move")
				}
			}
		}
	}
}

func TestSortDepthForClampsToZeroToTwo(t *testing.T) {
	assert.Equal(t, 0, sortDepthFor(0))
	assert.Equal(t, 0, sortDepthFor(reductionMinDepth))
	assert.Equal(t, 2, sortDepthFor(reductionMinDepth+100))
}

func TestOrderMidgameAtDepthUsesShallowSearchAndFlagsReductions(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	stack := pattern.NewStack(b)
	ml := movelist.Generate(b)

	// A fitted sigma makes assignReductions' margin finite, so any move
	// scoring far enough below the best shallow value gets flagged. The
	// table has rows 0..59, so the opening's 60 empties read row 59.
	s.worker.probcutStats.Sigma[b.EmptyCount()-1][reductionMinDepth][0] = 1
	s.worker.orderMidgame(b, stack, 0, reductionMinDepth, ml, bitboard.SqNone, bitboard.ScaleMin, bitboard.ScaleMax)

	best := int32(bitboard.ScaleMin)
	for _, m := range ml {
		if m.Score > best {
			best = m.Score
		}
	}
	for _, m := range ml {
		if int32(best)-m.Score >= 1000 {
			assert.EqualValues(t, 1, m.Reduction)
		}
	}
}

func TestNegamaxWithReductionStillReturnsWindowBoundScore(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	stack := pattern.NewStack(b)
	s.worker.probcutStats.Sigma[40][reductionMinDepth][0] = 1
	v := s.worker.Negamax(b, stack, 0, reductionMinDepth+1, bitboard.ScaleMin, bitboard.ScaleMax)
	assert.True(t, v >= bitboard.ScaleMin && v <= bitboard.ScaleMax)
}

func TestOrderEndgamePrefersFewerOpponentReplies(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	ml := movelist.Generate(b)
	s.worker.orderEndgame(b, ml, nil)
	for _, m := range ml {
		child, _ := b.MakeMove(m.Sq)
		assert.EqualValues(t, -child.LegalMoves().PopCount(), m.Score)
	}
}

func TestRunOnNearFullBoardReportsEndgameAndPVLine(t *testing.T) {
	s := newTestSearch()
	player, opponent := splitBoardHalves()
	// Open up a handful of empties so iterative deepening reaches the end
	// of the game within this test's depth budget. The e-h half moves, since
	// only it has a legal move into the emptied squares; a root with no
	// legal move has no PV to report.
	for _, sq := range []bitboard.Square{bitboard.SqA1, bitboard.SqB1, bitboard.SqC1, bitboard.SqD1} {
		player = player.PopSquare(sq)
		opponent = opponent.PopSquare(sq)
	}
	b := board.Board{Player: opponent, Opponent: player}
	require.Equal(t, 4, b.EmptyCount())

	r := s.Run(b, NewLimits(), nil)
	assert.True(t, r.IsEndgame)
	assert.NotEmpty(t, r.PVLine)
}

func TestRunWithMultiPVPopulatesSortedRootMoves(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	limits := &Limits{Depth: 2, MultiPV: true}

	r := s.Run(b, limits, nil)
	require.NotEmpty(t, r.RootMoves)
	assert.Equal(t, r.Best, r.RootMoves[0].Sq)
	for i := 1; i < len(r.RootMoves); i++ {
		assert.True(t, r.RootMoves[i-1].Score >= r.RootMoves[i].Score)
	}
}

func TestRunWithoutMultiPVLeavesRootMovesNil(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	r := s.Run(b, &Limits{Depth: 2}, nil)
	assert.Nil(t, r.RootMoves)
}

func TestRefineEndgameSelectivityStepsDownToCapAndReportsProgress(t *testing.T) {
	s := newTestSearch()
	player, opponent := splitBoardHalves()
	for _, sq := range []bitboard.Square{bitboard.SqA1, bitboard.SqB1} {
		player = player.PopSquare(sq)
		opponent = opponent.PopSquare(sq)
	}
	b := board.Board{Player: player, Opponent: opponent}
	require.Equal(t, 2, b.EmptyCount())

	var seenSelectivity []probcut.Selectivity
	limits := &Limits{Selectivity: probcut.SelectivityNone}
	r := s.Run(b, limits, func(res Result) {
		if res.IsEndgame {
			seenSelectivity = append(seenSelectivity, res.Selectivity)
		}
	})
	assert.True(t, r.IsEndgame)
	require.NotEmpty(t, seenSelectivity)
	assert.Equal(t, probcut.SelectivityNone, seenSelectivity[len(seenSelectivity)-1])
}

func TestBuildPVLineStopsOnTTMiss(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	pv := s.buildPVLine(b, pvLineMaxLen)
	assert.Empty(t, pv)
}

func TestUpdateRootAverageSmoothsAcrossCalls(t *testing.T) {
	s := newTestSearch()
	first := s.updateRootAverage(bitboard.SqD3, bitboard.FromDiscs(10))
	assert.EqualValues(t, bitboard.FromDiscs(10), first)

	second := s.updateRootAverage(bitboard.SqD3, bitboard.FromDiscs(20))
	assert.EqualValues(t, bitboard.FromDiscs(15), second)
}

func TestOrderEndgameBreaksTiesByOddQuadrantParity(t *testing.T) {
	s := newTestSearch()
	b := board.StartBoard()
	ml := movelist.Generate(b)
	el := board.NewEmptyList(b.Empty())

	withoutParity := make(movelist.MoveList, len(ml))
	copy(withoutParity, ml)
	s.worker.orderEndgame(b, withoutParity, nil)

	s.worker.orderEndgame(b, ml, el)
	for i := range ml {
		want := withoutParity[i].Score
		if el.ParityOdd(board.QuadrantOf(ml[i].Sq)) {
			want += oddParityBonus
		}
		assert.EqualValues(t, want, ml[i].Score)
	}
}

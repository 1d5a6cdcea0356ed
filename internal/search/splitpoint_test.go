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
	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/evaluator"
	"github.com/fkopp/reversicore/internal/pattern"
	"github.com/fkopp/reversicore/internal/transposition"
)

func TestSplitPointUpdateBestTracksBestMoveAndValue(t *testing.T) {
	sp := &SplitPoint{Alpha: 0, Beta: 100}
	sp.updateBest(10, bitboard.SqC4, 1)
	sp.updateBest(20, bitboard.SqD3, 1)
	sp.updateBest(5, bitboard.SqE6, 1)

	assert.EqualValues(t, 20, sp.BestValue)
	assert.Equal(t, bitboard.SqD3, sp.BestMove)
	assert.EqualValues(t, 3, sp.Nodes)
	assert.False(t, sp.Cutoff)
}

func TestSplitPointUpdateBestSetsCutoffOnceAlphaReachesBeta(t *testing.T) {
	sp := &SplitPoint{Alpha: 0, Beta: 50}
	sp.updateBest(60, bitboard.SqC4, 1)
	assert.True(t, sp.Cutoff)
	assert.EqualValues(t, 60, sp.Alpha)
}

func TestSplitPointUpdateBestIgnoresFurtherUpdatesAfterCutoff(t *testing.T) {
	sp := &SplitPoint{Alpha: 0, Beta: 50}
	sp.updateBest(60, bitboard.SqC4, 1)
	sp.updateBest(1000, bitboard.SqD3, 1)

	assert.Equal(t, bitboard.SqC4, sp.BestMove, "a cutoff split point must not let a late straggler overwrite its result")
	assert.EqualValues(t, 60, sp.BestValue)
	assert.EqualValues(t, 2, sp.Nodes, "node counts from every caller still accumulate even once cut off")
}

func TestSplitPointCutoffOccurredWalksTheParentChain(t *testing.T) {
	grandparent := &SplitPoint{Alpha: 0, Beta: 100}
	parent := &SplitPoint{Parent: grandparent, Alpha: 0, Beta: 100}
	child := &SplitPoint{Parent: parent, Alpha: 0, Beta: 100}

	assert.False(t, child.cutoffOccurred())

	grandparent.Cutoff = true
	assert.True(t, child.cutoffOccurred(), "a cutoff anywhere up the parent chain must be visible to every descendant")
}

func TestSplitPointSnapshotReflectsLatestAlpha(t *testing.T) {
	sp := &SplitPoint{Alpha: 10, Beta: 90}
	sp.updateBest(40, bitboard.SqC4, 0)

	alpha, beta, cutoff := sp.snapshot()
	assert.EqualValues(t, 40, alpha)
	assert.EqualValues(t, 90, beta)
	assert.False(t, cutoff)
}

func newTestThreadPool(t *testing.T, threads int) (*ThreadPool, []*Search) {
	t.Helper()
	tt := transposition.NewTable(1, transposition.BucketSize)
	eval := evaluator.NewEvaluator()
	searches := make([]*Search, threads)
	for i := range searches {
		searches[i] = NewSearch(tt, eval, nil)
		searches[i].SetWorkerID(i)
	}
	return NewThreadPool(searches), searches
}

func TestNewThreadPoolStartsEveryWorkerButTheLeadIdle(t *testing.T) {
	tp, _ := newTestThreadPool(t, 4)
	ids := tp.recruit(10)
	assert.ElementsMatch(t, []int{1, 2, 3}, ids, "worker 0 is the permanent lead and must never be handed out as an idle token")
}

func TestThreadPoolRecruitReturnsFewerThanWantWhenExhausted(t *testing.T) {
	tp, _ := newTestThreadPool(t, 3)
	ids := tp.recruit(10)
	require.Len(t, ids, 2)

	assert.Empty(t, tp.recruit(1), "every idle token is already claimed")
}

func TestThreadPoolReleaseReturnsTokenToIdle(t *testing.T) {
	tp, _ := newTestThreadPool(t, 2)
	ids := tp.recruit(1)
	require.Len(t, ids, 1)

	tp.release(ids[0])
	assert.Equal(t, ids, tp.recruit(1))
}

func TestCanSplitRequiresAPoolWithMoreThanOneWorker(t *testing.T) {
	s := newTestSearch()
	defer func(d int) { config.Settings.Search.MinSplitDepth = d }(config.Settings.Search.MinSplitDepth)
	config.Settings.Search.MinSplitDepth = 1

	assert.False(t, s.worker.canSplit(10), "a worker with no pool at all can never split")

	NewThreadPool([]*Search{s})
	assert.False(t, s.worker.canSplit(10), "a lone-worker pool has nobody to recruit")
}

func TestCanSplitRequiresDepthAtOrAboveMinSplitDepth(t *testing.T) {
	_, searches := newTestThreadPool(t, 2)
	defer func(d int) { config.Settings.Search.MinSplitDepth = d }(config.Settings.Search.MinSplitDepth)
	config.Settings.Search.MinSplitDepth = 6

	assert.False(t, searches[0].worker.canSplit(5))
	assert.True(t, searches[0].worker.canSplit(6))
}

func TestCanSplitRespectsMaxSplitPointsPerThread(t *testing.T) {
	_, searches := newTestThreadPool(t, 2)
	defer func(d int) { config.Settings.Search.MinSplitDepth = d }(config.Settings.Search.MinSplitDepth)
	config.Settings.Search.MinSplitDepth = 1

	w := searches[0].worker
	for i := 0; i < MaxSplitPointsPerThread; i++ {
		w.pushSplitPoint(&SplitPoint{})
	}
	assert.False(t, w.canSplit(10), "a worker already MaxSplitPointsPerThread deep must not split further")
}

// TestNegamaxRecruitsHelpersAndStillReturnsWindowBoundScore exercises a
// real split point end to end: with MinSplitDepth lowered to 1, the root
// position's very first search node splits its younger siblings across
// three workers, and the result must still land inside the window
// Negamax was given, exactly as the single-threaded path guarantees.
func TestNegamaxRecruitsHelpersAndStillReturnsWindowBoundScore(t *testing.T) {
	_, searches := newTestThreadPool(t, 3)
	defer func(d int) { config.Settings.Search.MinSplitDepth = d }(config.Settings.Search.MinSplitDepth)
	config.Settings.Search.MinSplitDepth = 1

	b := board.StartBoard()
	lead := searches[0]
	stack := pattern.NewStack(b)
	v := lead.worker.Negamax(b, stack, 0, 4, bitboard.ScaleMin, bitboard.ScaleMax)
	assert.True(t, v >= bitboard.ScaleMin && v <= bitboard.ScaleMax)
	assert.True(t, lead.worker.Stats.NodesVisited > 0)
}

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

package parallel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/evaluator"
	"github.com/fkopp/reversicore/internal/search"
	"github.com/fkopp/reversicore/internal/transposition"
)

func newTestPool(t *testing.T, threads int) *Pool {
	t.Helper()
	tt := transposition.NewTable(1, transposition.BucketSize)
	eval := evaluator.NewEvaluator()
	cache, err := NewSharedCache(1024)
	require.NoError(t, err)
	t.Cleanup(cache.Close)
	return NewPool(threads, tt, eval, nil, cache)
}

func TestNewPoolClampsThreadsToAtLeastOne(t *testing.T) {
	p := newTestPool(t, 0)
	assert.Equal(t, 1, p.Threads())
}

func TestNewPoolBuildsRequestedThreadCount(t *testing.T) {
	p := newTestPool(t, 4)
	assert.Equal(t, 4, p.Threads())
}

func TestSingleThreadPoolRunsDirectlyWithoutHelpers(t *testing.T) {
	p := newTestPool(t, 1)
	b := board.StartBoard()
	r := p.Run(context.Background(), b, &search.Limits{Depth: 2}, nil)
	assert.True(t, b.LegalMoves().Has(r.Best))
}

func TestMultiThreadPoolReturnsLeadThreadResult(t *testing.T) {
	p := newTestPool(t, 3)
	b := board.StartBoard()
	r := p.Run(context.Background(), b, &search.Limits{Depth: 2}, nil)
	assert.True(t, b.LegalMoves().Has(r.Best))
	assert.True(t, r.Depth >= 1)
}

func TestPoolRunStopsEarlyWhenContextCancelled(t *testing.T) {
	p := newTestPool(t, 3)
	b := board.StartBoard()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A pre-cancelled context must not hang or panic the pool, even though
	// the lead thread may still complete a shallow iteration before
	// noticing cancellation.
	r := p.Run(ctx, b, &search.Limits{Depth: 10}, nil)
	assert.True(t, b.LegalMoves().Has(r.Best))
}

func TestPoolStatsReflectsLeadThreadOnly(t *testing.T) {
	p := newTestPool(t, 1)
	b := board.StartBoard()
	p.Run(context.Background(), b, &search.Limits{Depth: 2}, nil)
	assert.True(t, p.Stats().NodesVisited > 0)
}

func TestPoolStatsOnEmptyPoolIsZeroValue(t *testing.T) {
	p := &Pool{}
	assert.Equal(t, search.Statistics{}, p.Stats())
}

func TestRunDedupedSharesResultAcrossConcurrentCallers(t *testing.T) {
	p := newTestPool(t, 1)
	b := board.StartBoard()
	limits := &search.Limits{Depth: 2}

	results := make(chan search.Result, 4)
	for i := 0; i < 4; i++ {
		go func() {
			results <- p.RunDeduped(context.Background(), b, limits, nil)
		}()
	}
	first := <-results
	for i := 0; i < 3; i++ {
		r := <-results
		assert.Equal(t, first.Best, r.Best)
	}
}

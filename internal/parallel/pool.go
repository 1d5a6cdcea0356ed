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

// Package parallel turns several independent search.Search instances into
// one Young Brothers Wait Concept (YBWC) split-point pool: every thread
// shares one transposition.Table, one Evaluator, one probcut.Stats and
// one SharedCache, and thread 0 (the "lead") drives the reported
// iterative-deepening result exactly as a single-threaded search.Search
// would. The difference from a bare Search is entirely inside
// internal/search itself: once a midgame node's first ("eldest brother")
// move has been searched alone and depth is still at least
// config.Settings.Search.MinSplitDepth, internal/search.Worker.split turns
// the node's remaining moves into a search.SplitPoint and recruits
// whichever of this pool's other threads are currently idle to search
// them alongside the lead, folding every participant's alpha/best-score
// contribution into the split point's mutex-guarded shared state. This
// package's only job is to build the search.ThreadPool those Workers
// share and hand back the lead's Run result - unlike a Lazy-SMP scheme,
// idle threads never redundantly re-search the lead's own work, they only
// ever run once recruited into one of its split points.
//
// Grounded on original_source/reversi_core/src/search/threading.rs'
// SplitPoint/Thread::split/ThreadPool, adapted from Stockfish-style
// persistent OS threads parked in a condvar idle loop to Go's
// goroutine-per-recruitment model (see search.ThreadPool's doc comment).
package parallel

import (
	"context"
	"strconv"

	"github.com/op/go-logging"
	"golang.org/x/sync/singleflight"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	myLogging "github.com/fkopp/reversicore/internal/logging"
	"github.com/fkopp/reversicore/internal/pattern"
	"github.com/fkopp/reversicore/internal/probcut"
	"github.com/fkopp/reversicore/internal/search"
	"github.com/fkopp/reversicore/internal/transposition"
)

// Evaluator is the subset of *evaluator.Evaluator the pool's workers
// need, mirrored from internal/search's own unexported evaluatorFace so
// this package does not have to import internal/evaluator's
// network-loading machinery either.
type Evaluator interface {
	Evaluate(b board.Board, stack *pattern.Stack, ply int) bitboard.ScaledScore
	FastEval(b board.Board) bitboard.ScaledScore
}

// Pool runs a split-point YBWC search across config.Settings.Search.MaxThreads
// goroutines sharing one transposition.Table, one Evaluator, one
// probcut.Stats and one SharedCache.
type Pool struct {
	log *logging.Logger

	searches []*search.Search
	threads  *search.ThreadPool
	shared   *SharedCache

	dedup singleflight.Group
}

// NewPool builds a Pool of threads search.Search instances, all sharing
// tt, eval and probcutStats, all wired to share cache, and all wired into
// one search.ThreadPool so the lead's Negamax recursion may recruit the
// rest as split-point helpers. threads is clamped to at least 1; a Pool
// of 1 behaves exactly like a bare search.Search (split() never finds
// another worker to recruit, since canSplit requires more than one).
func NewPool(threads int, tt *transposition.Table, eval Evaluator, probcutStats *probcut.Stats, cache *SharedCache) *Pool {
	if threads < 1 {
		threads = 1
	}
	p := &Pool{
		log:    myLogging.GetSearchLog(config.SearchLogLevel),
		shared: cache,
	}
	for i := 0; i < threads; i++ {
		s := search.NewSearch(tt, eval, probcutStats)
		s.SetWorkerID(i)
		if cache != nil {
			s.SetShared(cache)
		}
		p.searches = append(p.searches, s)
	}
	p.threads = search.NewThreadPool(p.searches)
	return p
}

// Threads returns the number of search.Search instances in the pool.
func (p *Pool) Threads() int {
	return len(p.searches)
}

// Stats returns the lead thread's search statistics, folded together with
// every split-point helper's node count along the way (see
// search.Worker.split) - unlike a Lazy-SMP pool's helper threads, a
// split-point helper's work is part of the lead's own result, not a
// redundant duplicate of it, so there is no double-counting to guard
// against here.
func (p *Pool) Stats() search.Statistics {
	if len(p.searches) == 0 {
		return search.Statistics{}
	}
	return p.searches[0].Stats()
}

// Stop requests every thread in the pool to abort at its next safe point.
func (p *Pool) Stop() {
	for _, s := range p.searches {
		s.Stop()
	}
}

// Run drives a split-point search of b: thread 0 is the lead, running the
// reported iterative-deepening search under limits and progress exactly as
// a bare search.Search would. Threads 1..N-1 never run their own
// independent Run call - they sit idle in the pool's search.ThreadPool
// until the lead's own Negamax recursion recruits them into a split
// point, at which point they search a share of that node's remaining
// moves and fold their result back into it before returning to idle. ctx
// being cancelled stops the lead (and, transitively, every split point it
// is waiting on) the same "never return a partial iteration" guarantee
// search.Search.Run makes on its own.
func (p *Pool) Run(ctx context.Context, b board.Board, limits *search.Limits, progress search.Progress) search.Result {
	lead := p.searches[0]

	stopCh := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			lead.Stop()
		case <-stopCh:
		}
	}()
	defer close(stopCh)

	return lead.Run(b, limits, progress)
}

// RunDeduped behaves like Run, except concurrent callers asking about the
// same position (same Board.Hash) share one underlying search instead of
// each driving their own split-point pool over the same work - useful
// when an outer engine facade lets several callers poll the same
// in-flight analysis (e.g. a position evaluated for both a hint and a
// ponder request at once).
func (p *Pool) RunDeduped(ctx context.Context, b board.Board, limits *search.Limits, progress search.Progress) search.Result {
	key := strconv.FormatUint(b.Hash(), 16)
	v, _, _ := p.dedup.Do(key, func() (interface{}, error) {
		return p.Run(ctx, b, limits, progress), nil
	})
	return v.(search.Result)
}

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

// Package engine is the CLI-free facade that wires evaluator, transposition,
// parallel and timecontrol into one New/Init/Run/Abort/QuickMove surface -
// the thing a caller embeds, not a protocol. cmd/reversicore is a thin
// example driver on top of it; there is deliberately no UCI or GUI layer
// here, unlike the teacher's internal/uci, which this package replaces in
// role without reproducing.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/evaluator"
	myLogging "github.com/fkopp/reversicore/internal/logging"
	"github.com/fkopp/reversicore/internal/movelist"
	"github.com/fkopp/reversicore/internal/parallel"
	"github.com/fkopp/reversicore/internal/probcut"
	"github.com/fkopp/reversicore/internal/search"
	"github.com/fkopp/reversicore/internal/timecontrol"
	"github.com/fkopp/reversicore/internal/transposition"
)

var out = message.NewPrinter(language.German)

// sharedCacheEntries bounds the split-point pool's cross-worker endgame
// cache; see parallel.NewSharedCache.
const sharedCacheEntries = 1 << 20

// Config configures an Engine at construction time. DefaultConfig fills
// one from config.Settings, so an Engine built from DefaultConfig() after
// config.Setup() has run picks up whatever config.toml specifies. New
// only clamps Threads to at least 1; other fields are used as given.
type Config struct {
	Threads          int
	TTSizeMB         int
	TTBucketSize     int
	ProbCutStatsPath string
}

// DefaultConfig reads the current config.Settings, mirroring the
// teacher's pattern of letting config.toml (via config.Setup) supply
// every value a caller doesn't override explicitly.
func DefaultConfig() Config {
	return Config{
		Threads:          config.Settings.Search.MaxThreads,
		TTSizeMB:         config.Settings.Search.TTSizeMb,
		TTBucketSize:     config.Settings.Search.TTBucketSize,
		ProbCutStatsPath: config.Settings.Eval.ProbCutStatsPath,
	}
}

// RunOptions describes one search request: the position, how far/long to
// search it (Limits), and the clock governing that duration (Clock -
// Mode Infinite means Limits alone decides when to stop).
type RunOptions struct {
	Board    board.Board
	Limits   search.Limits
	Clock    timecontrol.Limits
	Progress search.Progress
}

// SearchResult is Run/QuickMove's reply - a protocol-agnostic copy of
// search.Result, so callers never need to import internal/search just to
// read an answer back.
type SearchResult struct {
	Best    bitboard.Square
	Value   bitboard.ScaledScore
	Depth   int
	Nodes   uint64
	Elapsed time.Duration

	// PVLine, Selectivity, IsEndgame and RootMoves mirror search.Result's
	// fields of the same name; see that type for what each means.
	PVLine      []bitboard.Square
	Selectivity probcut.Selectivity
	IsEndgame   bool
	RootMoves   []search.RootMove
}

// fromResult copies a search.Result into the protocol-agnostic shape
// Run/QuickMove/FixedDepth hand back to a caller.
func fromResult(r search.Result) SearchResult {
	return SearchResult{
		Best:        r.Best,
		Value:       r.Value,
		Depth:       r.Depth,
		Nodes:       r.Nodes,
		Elapsed:     r.Elapsed,
		PVLine:      r.PVLine,
		Selectivity: r.Selectivity,
		IsEndgame:   r.IsEndgame,
		RootMoves:   r.RootMoves,
	}
}

// Engine wires together one evaluator, one transposition table, one
// split-point pool and one time manager behind New/Init/Run/Abort/QuickMove.
// Safe for concurrent Running/Abort calls from any goroutine; Run itself
// rejects a second concurrent call rather than queuing it, exactly as the
// teacher's Search.run rejects a second StartSearch while one is active.
type Engine struct {
	log *logging.Logger

	cfg Config

	tt           *transposition.Table
	eval         *evaluator.Evaluator
	probcutStats *probcut.Stats
	shared       *parallel.SharedCache
	pool         *parallel.Pool
	clock        *timecontrol.Manager

	initSem    *semaphore.Weighted
	runningSem *semaphore.Weighted

	initialized bool
}

// New allocates an Engine. It does not load weights or build the
// transposition table yet - call Init before Run or QuickMove.
func New(cfg Config) *Engine {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	return &Engine{
		log:        myLogging.GetEngineLog(config.LogLevel),
		cfg:        cfg,
		clock:      timecontrol.NewManager(),
		initSem:    semaphore.NewWeighted(1),
		runningSem: semaphore.NewWeighted(1),
	}
}

// Init loads the pattern network weights, builds the transposition table
// and the split-point pool, and optionally loads ProbCut's fitted statistics.
// Safe to call more than once; later calls are no-ops. Mirrors the
// teacher's Search.initialize/IsReady, folded into one blocking call
// since there is no UCI "isready"/"readyok" round trip here to defer it
// across.
func (e *Engine) Init() error {
	_ = e.initSem.Acquire(context.Background(), 1)
	defer e.initSem.Release(1)

	if e.initialized {
		return nil
	}

	evaluator.DetectSimd()
	e.eval = evaluator.NewEvaluator()
	e.tt = transposition.NewTable(e.cfg.TTSizeMB, e.cfg.TTBucketSize)

	e.probcutStats = &probcut.Stats{}
	if e.cfg.ProbCutStatsPath != "" {
		stats, err := probcut.LoadStats(e.cfg.ProbCutStatsPath)
		if err != nil {
			e.log.Warning(out.Sprintf("probcut stats not loaded, ProbCut disabled (%v)", err))
		} else {
			e.probcutStats = stats
		}
	}

	cache, err := parallel.NewSharedCache(sharedCacheEntries)
	if err != nil {
		return fmt.Errorf("engine: building shared endgame cache: %w", err)
	}
	e.shared = cache

	e.pool = parallel.NewPool(e.cfg.Threads, e.tt, e.eval, e.probcutStats, e.shared)
	e.initialized = true
	e.log.Info(out.Sprintf("engine initialized: %d threads, %d MB hash", e.cfg.Threads, e.cfg.TTSizeMB))
	return nil
}

// Running reports whether a Run call is currently in flight.
func (e *Engine) Running() bool {
	if !e.runningSem.TryAcquire(1) {
		return true
	}
	e.runningSem.Release(1)
	return false
}

// Abort stops a running search as quickly as possible and blocks until
// it has actually stopped. A no-op if nothing is running.
func (e *Engine) Abort() {
	e.clock.Stop()
	if e.pool != nil {
		e.pool.Stop()
	}
	_ = e.runningSem.Acquire(context.Background(), 1)
	e.runningSem.Release(1)
}

// Run performs one full search request: thinks according to opts.Clock
// (or opts.Limits alone, if Clock.Mode is timecontrol.Infinite) and
// returns the result of the deepest iteration completed before stopping.
// Only one Run may be active at a time; a concurrent call returns an
// error immediately rather than queuing, the same guard the teacher's
// Search.run applies via isRunning.TryAcquire.
func (e *Engine) Run(opts RunOptions) (SearchResult, error) {
	if !e.initialized {
		return SearchResult{}, fmt.Errorf("engine: Init not called")
	}
	if !e.runningSem.TryAcquire(1) {
		return SearchResult{}, fmt.Errorf("engine: search already running")
	}
	defer e.runningSem.Release(1)

	limits := opts.Limits
	progress := opts.Progress
	if opts.Clock.Mode != timecontrol.Infinite {
		e.clock.Start(opts.Clock, opts.Board.EmptyCount(), e.pool.Stop)
		defer e.clock.Stop()
		limits.Infinite = true
		progress = e.withInstabilityExtension(opts.Progress)
	}

	r := e.pool.Run(context.Background(), opts.Board, &limits, progress)
	if r.Best == bitboard.SqNone {
		// Aborted before even the first iteration completed: Result's
		// zero value has no move to report. Fall back to the 1-ply,
		// no-TT, no-recursion quick move rather than hand the caller an
		// empty SearchResult.
		return e.QuickMove(opts.Board)
	}
	return fromResult(r), nil
}

// withInstabilityExtension wraps progress so every completed iteration
// also feeds e.clock.ExtendOnInstability: a root score that just fell
// sharply, or a root best move that just changed at a meaningful depth,
// buys the search a little more time before the clock's timer goroutine
// calls e.pool.Stop. inner may be nil.
func (e *Engine) withInstabilityExtension(inner search.Progress) search.Progress {
	var prevBest bitboard.Square = bitboard.SqNone
	return func(r search.Result) {
		e.clock.ExtendOnInstability(float64(r.Value.ToDiscs()), prevBest != bitboard.SqNone && r.Best != prevBest, r.Depth)
		prevBest = r.Best
		if inner != nil {
			inner(r)
		}
	}
}

// QuickMove picks the legal move that directly minimizes the opponent's
// fast evaluation after it - a 1-ply, no-TT, no-move-ordering,
// no-recursion fallback, used internally by Run when a search aborts
// before its first iteration finishes and exposed directly for a caller
// that wants an instant, cheap suggestion without a real search.
func (e *Engine) QuickMove(b board.Board) (SearchResult, error) {
	if !e.initialized {
		return SearchResult{}, fmt.Errorf("engine: Init not called")
	}
	ml := movelist.Generate(b)
	if ml.Len() == 0 {
		return SearchResult{Best: bitboard.SqNone}, nil
	}
	best := ml[0].Sq
	bestValue := bitboard.ScaleMin
	for _, m := range ml {
		child, _ := b.MakeMove(m.Sq)
		v := -e.eval.FastEval(child)
		if v > bestValue {
			bestValue = v
			best = m.Sq
		}
	}
	return SearchResult{Best: best, Value: bestValue, Depth: 1}, nil
}

// FixedDepth runs a single fixed-depth, single-threaded search with no
// timer and no split-point helpers - for a deterministic result in tests
// (FFO-style regression positions) without pool/clock nondeterminism.
func (e *Engine) FixedDepth(b board.Board, depth int) (SearchResult, error) {
	if !e.initialized {
		return SearchResult{}, fmt.Errorf("engine: Init not called")
	}
	s := search.NewSearch(e.tt, e.eval, e.probcutStats)
	r := s.Run(b, &search.Limits{Depth: depth}, nil)
	return fromResult(r), nil
}

// Stats returns the pool's lead-thread search statistics from the most
// recent (or still-running) Run call.
func (e *Engine) Stats() search.Statistics {
	if e.pool == nil {
		return search.Statistics{}
	}
	return e.pool.Stats()
}

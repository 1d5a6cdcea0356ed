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
	"sort"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	myLogging "github.com/fkopp/reversicore/internal/logging"
	"github.com/fkopp/reversicore/internal/movelist"
	"github.com/fkopp/reversicore/internal/pattern"
	"github.com/fkopp/reversicore/internal/probcut"
	"github.com/fkopp/reversicore/internal/transposition"
	"github.com/fkopp/reversicore/internal/util"
)

var out = message.NewPrinter(language.German)

// pvLineMaxLen bounds how many plies buildPVLine walks out of the
// transposition table - just a sanity cap against a corrupted/cyclic
// chain, never expected to bind in practice since a game is at most 60
// plies deep.
const pvLineMaxLen = 60

// RootMove is one candidate root move's own score, smoothed running
// average and principal variation - the shape multi-PV reporting keeps
// one of per kept root move. Grounded on
// original_source/reversi_core/src/search/root_move.rs's RootMove{sq,
// score, average_score, pv}; AverageScore's smoothing (a simple
// exponential moving average across iterations, weight 0.5) is this
// port's own choice, since root_move.rs is a bare struct definition with
// no update method to port.
type RootMove struct {
	Sq           bitboard.Square
	Score        bitboard.ScaledScore
	AverageScore bitboard.ScaledScore
	PV           []bitboard.Square
}

// Result is the outcome of one completed iterative-deepening iteration:
// the move the root should play, its score, and enough bookkeeping for a
// caller to report progress the way a UCI "info" line would, without
// this package knowing anything about an outer protocol.
type Result struct {
	Best    bitboard.Square
	Value   bitboard.ScaledScore
	Depth   int
	Nodes   uint64
	Elapsed time.Duration

	// PVLine is the principal variation from Best onward, read back from
	// the transposition table after the iteration completed rather than
	// threaded through the move loop as a triangular array - the same
	// after-the-fact approach the teacher's getPVLine/savePV use.
	PVLine []bitboard.Square

	// Selectivity is the confidence level this iteration's nodes were
	// pruned at. Equal to Limits.Selectivity's effective cap outside the
	// endgame refinement cascade; during the cascade it is whichever
	// level that particular pass just completed.
	Selectivity probcut.Selectivity

	// IsEndgame is true once this iteration searched all the way to the
	// end of the game (depth == the position's empty count at the time
	// Run started), as opposed to a depth-limited midgame iteration.
	IsEndgame bool

	// RootMoves carries every candidate root move's own score/PV when
	// Limits.MultiPV was set; nil otherwise.
	RootMoves []RootMove
}

// Progress is called once per completed iteration during Run, letting
// the caller surface intermediate results as they land.
type Progress func(Result)

// Search is the single-threaded root driver: one Worker plus the
// iterative-deepening and aspiration-window loop around it.
// internal/parallel builds several of these sharing one Table and one
// Evaluator and drives them concurrently at the split points below
// config.Settings.Search.MinSplitDepth, rather than using Search alone.
type Search struct {
	log *logging.Logger

	tt    *transposition.Table
	abort *util.Bool

	worker *Worker

	// rootAvgScore/rootAvgSet back RootMove.AverageScore: one slot per
	// square, carried across an entire Run call's iterations and reset at
	// the start of the next one.
	rootAvgScore [bitboard.SqLength]bitboard.ScaledScore
	rootAvgSet   [bitboard.SqLength]bool
}

// NewSearch builds a Search around tt and eval. probcutStats may be nil,
// in which case ProbCut's cutoff test always reports "no fitted data"
// and is effectively disabled - see probcut.Stats' zero value.
func NewSearch(tt *transposition.Table, eval evaluatorFace, probcutStats *probcut.Stats) *Search {
	if probcutStats == nil {
		probcutStats = &probcut.Stats{}
	}
	abort := util.NewBool(false)
	return &Search{
		log:    myLogging.GetSearchLog(config.SearchLogLevel),
		tt:     tt,
		abort:  abort,
		worker: NewWorker(0, tt, eval, probcutStats, abort),
	}
}

// Stop requests the running Run call to abort at its next safe point.
func (s *Search) Stop() {
	s.abort.Store(true)
}

// SetWorkerID overrides the worker's id, used by internal/parallel right
// after building each Search in a pool so every worker's id matches its
// slot in the shared search.ThreadPool - NewSearch itself always starts a
// lone worker at id 0, which is only correct for the first Search a pool
// builds.
func (s *Search) SetWorkerID(id int) {
	s.worker.id = id
}

// SetShared installs a cross-worker endgame cache shared with other
// Search instances - see SharedCache. internal/parallel calls this on
// every Search in a split-point pool so they benefit from each other's
// already-solved endgame subtrees.
func (s *Search) SetShared(c SharedCache) {
	s.worker.SetShared(c)
}

// Stats returns the worker's accumulated statistics for the most recent
// (or still-running) Run call.
func (s *Search) Stats() Statistics {
	return s.worker.Stats
}

// Run performs iterative deepening from b until limits stop it (depth,
// node count, or time budget), calling progress after every iteration
// that completed without hitting the abort flag. The returned Result
// always reflects the last fully-completed iteration; a partial,
// aborted iteration's score is discarded rather than returned, so a
// caller never sees a result it did not actually finish computing. Once
// an iteration reaches the end of the game, Run additionally runs the
// endgame refinement cascade described on refineEndgameSelectivity
// before returning.
func (s *Search) Run(b board.Board, limits *Limits, progress Progress) Result {
	s.abort.Store(false)
	s.tt.NewSearch()
	s.worker.Stats = Statistics{}
	s.rootAvgScore = [bitboard.SqLength]bitboard.ScaledScore{}
	s.rootAvgSet = [bitboard.SqLength]bool{}

	if limits == nil {
		limits = NewLimits()
	}

	runSelectivity := probcut.Selectivity(config.Settings.Search.MaxSelectivity)
	s.worker.SetSelectivity(runSelectivity)

	stack := pattern.NewStack(b)

	var deadline time.Time
	if !limits.Infinite {
		think := limits.MoveTime
		if think == 0 && limits.TimeLeft > 0 {
			think = limits.TimeLeft / 20
		}
		if think > 0 {
			deadline = time.Now().Add(think)
		}
	}

	totalEmpties := b.EmptyCount()
	maxDepth := totalEmpties
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	start := time.Now()
	var result Result
	guess := s.worker.eval.Evaluate(b, stack, 0)

	for depth := 1; depth <= maxDepth; depth++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		if limits.Nodes > 0 && s.worker.Stats.NodesVisited >= limits.Nodes {
			break
		}

		value, best, rootMoves, ok := s.searchAspiration(b, stack, depth, guess, limits.MultiPV)
		if !ok {
			break
		}
		guess = value

		result = s.buildResult(b, best, value, depth, time.Since(start), runSelectivity, depth == totalEmpties, rootMoves)
		s.worker.Stats.CurrentIterationDepth = depth
		s.worker.Stats.CurrentBestMove = best
		s.worker.Stats.CurrentBestValue = value

		if progress != nil {
			progress(result)
		}

		if value >= bitboard.WipeoutScore {
			break
		}
	}

	if result.IsEndgame && !s.abort.Load() {
		result = s.refineEndgameSelectivity(b, stack, result, runSelectivity, limits.Selectivity, limits.MultiPV, start, deadline, progress)
	}

	s.log.Info(out.Sprintf("search done: depth %d best %s value %s nodes %d in %s",
		result.Depth, result.Best.String(), result.Value.String(), result.Nodes, result.Elapsed))
	return result
}

// refineEndgameSelectivity re-verifies an already-complete, full-depth
// result at progressively less aggressive selectivity levels: starting
// one step below runSelectivity (the level the main iterative-deepening
// loop just finished at) and stepping down to cap, it re-searches the
// same final depth with a tight window around the previous pass's value,
// reporting progress after each pass with Result.Selectivity set to that
// pass's level and Result.IsEndgame true throughout. Grounded on
// spec.md's root-driver module ("for each selectivity level up to the
// user's cap ... run aspiration search ... invoke the progress callback
// with the current best PV"), itself distilled from
// original_source/reversi_core/src/probcut.rs's SELECTIVITY cascade and
// original_source/reversi_core/src/search/time_control.rs's root driver.
// cap's zero value (probcut.SelectivityNone) runs the cascade all the
// way to an exact answer; a caller in a hurry can stop it earlier by
// raising cap.
func (s *Search) refineEndgameSelectivity(b board.Board, stack *pattern.Stack, result Result, runSelectivity, cap probcut.Selectivity, multiPV bool, start time.Time, deadline time.Time, progress Progress) Result {
	const refineWindow = bitboard.ScaledScore(2 * bitboard.DiscScale)

	guess := result.Value
	for level := runSelectivity; level > cap; level-- {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		next := level - 1
		s.worker.SetSelectivity(next)

		alpha, beta := guess-refineWindow, guess+refineWindow
		if alpha < bitboard.ScaleMin {
			alpha = bitboard.ScaleMin
		}
		if beta > bitboard.ScaleMax {
			beta = bitboard.ScaleMax
		}

		value, best, rootMoves, ok := s.searchRoot(b, stack, result.Depth, alpha, beta, multiPV)
		if !ok {
			break
		}
		if value <= alpha || value >= beta {
			value, best, rootMoves, ok = s.searchRoot(b, stack, result.Depth, bitboard.ScaleMin, bitboard.ScaleMax, multiPV)
			if !ok {
				break
			}
		}
		guess = value

		result = s.buildResult(b, best, value, result.Depth, time.Since(start), next, true, rootMoves)
		s.worker.Stats.CurrentBestMove = best
		s.worker.Stats.CurrentBestValue = value

		if progress != nil {
			progress(result)
		}
	}
	return result
}

// buildResult assembles a Result, including a fresh PV line read back
// from the transposition table - see buildPVLine.
func (s *Search) buildResult(b board.Board, best bitboard.Square, value bitboard.ScaledScore, depth int, elapsed time.Duration, sel probcut.Selectivity, isEndgame bool, rootMoves []RootMove) Result {
	return Result{
		Best:        best,
		Value:       value,
		Depth:       depth,
		Nodes:       s.worker.Stats.NodesVisited,
		Elapsed:     elapsed,
		PVLine:      s.buildPVLine(b, pvLineMaxLen),
		Selectivity: sel,
		IsEndgame:   isEndgame,
		RootMoves:   rootMoves,
	}
}

// buildPVLine walks the transposition table's stored best-move chain
// from b, collecting the principal variation the search just found.
// Grounded on the teacher's getPVLine/savePV (walking the TT after a
// completed search instead of threading a triangular PV array through
// the move loop), the same approach
// original_source/reversi_core/src/search/root_move.rs's RootMove.pv is
// built with.
func (s *Search) buildPVLine(b board.Board, maxLen int) []bitboard.Square {
	pv := make([]bitboard.Square, 0, maxLen)
	for len(pv) < maxLen {
		e, ok := s.tt.Probe(b.Hash())
		if !ok || e.Move == bitboard.SqNone {
			break
		}
		pv = append(pv, e.Move)
		b, _ = b.MakeMove(e.Move)
	}
	return pv
}

// updateRootAverage folds v into sq's running average (a simple
// exponential moving average, weight 0.5) and returns the new average.
func (s *Search) updateRootAverage(sq bitboard.Square, v bitboard.ScaledScore) bitboard.ScaledScore {
	if s.rootAvgSet[sq] {
		s.rootAvgScore[sq] = (s.rootAvgScore[sq] + v) / 2
	} else {
		s.rootAvgScore[sq] = v
		s.rootAvgSet[sq] = true
	}
	return s.rootAvgScore[sq]
}

// searchAspiration runs one iterative-deepening iteration with a window
// narrowed around guess, widening geometrically via aspirationWindow and
// falling back to a full window once the widening exhausts itself. Depth 1
// and 2 iterations (too shallow for a meaningful guess) and a disabled
// config.Settings.Search.UseAspiration both go straight to a full window.
func (s *Search) searchAspiration(b board.Board, stack *pattern.Stack, depth int, guess bitboard.ScaledScore, multiPV bool) (bitboard.ScaledScore, bitboard.Square, []RootMove, bool) {
	if !config.Settings.Search.UseAspiration || depth < 3 {
		return s.searchRoot(b, stack, depth, bitboard.ScaleMin, bitboard.ScaleMax, multiPV)
	}

	for n := 0; ; n++ {
		window := aspirationWindow(bitboard.ScaledScore(config.Settings.Search.AspirationStep), n)
		alpha, beta := guess-window, guess+window
		if alpha < bitboard.ScaleMin {
			alpha = bitboard.ScaleMin
		}
		if beta > bitboard.ScaleMax {
			beta = bitboard.ScaleMax
		}

		value, best, rootMoves, ok := s.searchRoot(b, stack, depth, alpha, beta, multiPV)
		if !ok {
			return 0, bitboard.SqNone, nil, false
		}
		if value > alpha && value < beta {
			return value, best, rootMoves, true
		}
		s.worker.Stats.AspirationResearches++
		if alpha <= bitboard.ScaleMin && beta >= bitboard.ScaleMax {
			return value, best, rootMoves, true
		}
	}
}

// searchRoot searches every legal root move at depth within one window,
// returning the best move and its value, or false if the abort flag was
// observed before the sweep finished. When multiPV is true it also
// returns every root move's own score, running average and PV, sorted
// best-first; otherwise the returned slice is nil.
func (s *Search) searchRoot(b board.Board, stack *pattern.Stack, depth int, alpha, beta bitboard.ScaledScore, multiPV bool) (bitboard.ScaledScore, bitboard.Square, []RootMove, bool) {
	ml := movelist.Generate(b)
	if ml.Len() == 0 {
		return bitboard.ScaleZero, bitboard.SqNone, nil, true
	}
	if wm, ok := ml.WipeoutMove(b); ok {
		return bitboard.WipeoutScore, wm.Sq, nil, true
	}

	ttMove := bitboard.SqNone
	if e, ok := s.tt.Probe(b.Hash()); ok {
		ttMove = e.Move
	}
	s.worker.orderMidgame(b, stack, 0, depth, ml, ttMove, alpha, beta)
	ml.Sort()

	origAlpha := alpha
	best := ml[0].Sq
	bestValue := bitboard.ScaleMin
	var rootMoves []RootMove
	if multiPV {
		rootMoves = make([]RootMove, 0, ml.Len())
	}
	for i := 0; i < ml.Len(); i++ {
		m, _ := ml.NextBest(i)
		child, _ := b.MakeMove(m.Sq)
		stack.Push(0, m.Sq, m.Flip)

		v := -s.worker.Negamax(child, stack, 1, depth-1, -beta, -alpha)
		if s.abort.Load() {
			return 0, bitboard.SqNone, nil, false
		}

		if v > bestValue {
			bestValue = v
			best = m.Sq
		}
		if v > alpha {
			alpha = v
		}

		if multiPV {
			pv := append([]bitboard.Square{m.Sq}, s.buildPVLine(child, pvLineMaxLen-1)...)
			rootMoves = append(rootMoves, RootMove{
				Sq:           m.Sq,
				Score:        v,
				AverageScore: s.updateRootAverage(m.Sq, v),
				PV:           pv,
			})
		}
	}

	if multiPV {
		sort.SliceStable(rootMoves, func(i, j int) bool { return rootMoves[i].Score > rootMoves[j].Score })
	}

	// Store the root node itself, the same way Negamax stores every node
	// it visits, so buildPVLine's walk has somewhere to start from.
	if config.Settings.Search.UseTT {
		bound := transposition.BoundExact
		switch {
		case bestValue <= origAlpha:
			bound = transposition.BoundUpper
		case bestValue >= beta:
			bound = transposition.BoundLower
		}
		s.tt.Store(b.Hash(), bestValue, uint8(depth), bound, best)
	}

	return bestValue, best, rootMoves, true
}

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

// Package search implements the midgame principal-variation search and
// the endgame exact solver that together make up one worker's view of a
// position: alphabeta.go is the heuristic midgame recursion (network
// evaluation at depth 0, a transposition table, Enhanced Transposition
// Cutoff and ProbCut pruning), endgame.go is the exact disc-difference
// solver it hands off to once few enough empty squares remain, and
// search.go is the root iterative-deepening driver built on top of both.
package search

import (
	"math"

	"github.com/op/go-logging"

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

// probCutReduction is the fixed depth reduction used for ProbCut's
// shallow probe. The teacher's params.go keeps tuning constants like
// this one out of config.searchConfiguration, reserving the config
// struct for the knobs a user might plausibly want to override.
const probCutReduction = 2

// reductionMinDepth is the shallowest depth at which orderMidgame's
// score-based reduction runs at all: below it, the shallow searches the
// scoring needs would cost more nodes than the reductions they unlock
// would ever save, so ordering falls back to the plain fast-eval score.
const reductionMinDepth = 9

// sortDepthFor picks the shallow-search depth (0, 1 or 2 plies) that
// score-based reduction uses to rank every move at a midgame node of the
// given depth: deep enough to say something about move quality once depth
// itself is large, shallow enough to stay far cheaper than the real
// recursion it is ranking moves for.
func sortDepthFor(depth int) int {
	d := (depth - reductionMinDepth) / 3
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	default:
		return d
	}
}

// Worker holds one search thread's mutable state: its own endgame cache
// (thread-local, unlike the shared Table) and a pointer to the abort flag
// every recursive call checks. Several Workers may share one Table and
// one Evaluator - those are read-mostly once loaded - but never share a
// Worker itself across goroutines.
type Worker struct {
	id  int
	log *logging.Logger

	tt           *transposition.Table
	eval         evaluatorFace
	probcutStats *probcut.Stats
	nwsCache     *endgameCache
	shared       SharedCache
	abort        *util.Bool

	selectivity probcut.Selectivity

	pool       *ThreadPool
	splitStack []*SplitPoint

	Stats Statistics
}

// SetSelectivity overrides the confidence level probCutTest/assignReductions
// test shallow probes against, letting the root driver re-verify the same
// position at a sequence of progressively less aggressive levels (see
// Search.Run's endgame refinement passes) instead of every node reading
// config.Settings.Search.MaxSelectivity directly.
func (w *Worker) SetSelectivity(s probcut.Selectivity) {
	w.selectivity = s
}

// SharedCache is an optional, externally-owned cache the endgame solver
// consults before (and populates alongside) its own thread-local
// endgameCache. internal/parallel sets one on every Worker in a split-point
// pool so a subtree one goroutine has already solved is visible to its
// siblings too, not just to the worker that solved it. A nil SharedCache
// (the default - see NewWorker) disables this and a Worker behaves exactly
// as it does run single-threaded.
type SharedCache interface {
	Get(key uint64) (int32, bool)
	Put(key uint64, value int32)
}

// SetShared installs (or, with nil, removes) the cross-worker cache.
func (w *Worker) SetShared(c SharedCache) {
	w.shared = c
}

// evaluatorFace is the subset of *evaluator.Evaluator the search needs,
// declared locally so this package does not import internal/evaluator's
// network-loading machinery just to call two methods.
type evaluatorFace interface {
	Evaluate(b board.Board, stack *pattern.Stack, ply int) bitboard.ScaledScore
	FastEval(b board.Board) bitboard.ScaledScore
}

// NewWorker builds a Worker sharing tt, eval and probcutStats with any
// sibling workers; abort is shared too, so any worker (or the root
// driver) can signal every worker at once.
func NewWorker(id int, tt *transposition.Table, eval evaluatorFace, probcutStats *probcut.Stats, abort *util.Bool) *Worker {
	return &Worker{
		id:           id,
		log:          myLogging.GetSearchLog(config.SearchLogLevel),
		tt:           tt,
		eval:         eval,
		probcutStats: probcutStats,
		nwsCache:     newEndgameCache(nwsCacheMaxSizeMB),
		abort:        abort,
		selectivity:  probcut.Selectivity(config.Settings.Search.MaxSelectivity),
	}
}

// finalValue scores a terminal position from b.Player's perspective,
// awarding every still-empty square to whichever side holds more discs -
// the official Othello scoring rule, also used by WTHOR-format game
// records and every endgame solver in the example pack's reach.
func finalValue(b board.Board) bitboard.Value {
	p := b.PlayerCount()
	o := b.OpponentCount()
	empties := 64 - p - o
	switch {
	case p > o:
		p += empties
	case o > p:
		o += empties
	}
	return bitboard.Value(p - o)
}

// scaledToValueFloor and scaledToValueCeil convert a ScaledScore bound
// into the Value domain the endgame solver works in, rounding outward
// (floor for a lower bound, ceil for an upper bound) so the conversion
// never narrows a window the midgame search handed down.
func scaledToValueFloor(s bitboard.ScaledScore) bitboard.Value {
	q := int(s) / bitboard.DiscScale
	if int(s)%bitboard.DiscScale != 0 && s < 0 {
		q--
	}
	return clampValue(q)
}

func scaledToValueCeil(s bitboard.ScaledScore) bitboard.Value {
	q := int(s) / bitboard.DiscScale
	if int(s)%bitboard.DiscScale != 0 && s > 0 {
		q++
	}
	return clampValue(q)
}

func clampValue(q int) bitboard.Value {
	if q < int(bitboard.ValueMin) {
		return bitboard.ValueMin
	}
	if q > int(bitboard.ValueMax) {
		return bitboard.ValueMax
	}
	return bitboard.Value(q)
}

// orderMidgame scores each move, then boosts the transposition table's
// remembered best move far above any heuristic score so it is always
// tried first. With search-based ordering turned off every move scores 0,
// so only the TT move is ordered. Otherwise, below reductionMinDepth each
// move is scored by the fast evaluator's opinion of the resulting
// position, negated since a good reply for the opponent is a bad move for
// us. At or above reductionMinDepth each move is instead
// scored by a shallow Negamax probe (sortDepthFor plies deep), and
// assignReductions compares those probe values against the node's best
// one to mark the clearly-worse moves for a reduced initial search in the
// caller's move loop.
func (w *Worker) orderMidgame(b board.Board, stack *pattern.Stack, ply, depth int, ml movelist.MoveList, ttMove bitboard.Square, alpha, beta bitboard.ScaledScore) {
	useShallow := config.Settings.Search.UseSearchBasedOrdering && depth >= reductionMinDepth
	sortDepth := 0
	if useShallow {
		sortDepth = sortDepthFor(depth)
	}

	best := bitboard.ScaleMin
	for i := range ml {
		ml[i].Reduction = 0
		switch {
		case !config.Settings.Search.UseSearchBasedOrdering:
			ml[i].Score = 0
		case useShallow:
			child, _ := b.MakeMove(ml[i].Sq)
			stack.Push(ply, ml[i].Sq, ml[i].Flip)
			v := -w.Negamax(child, stack, ply+1, sortDepth, -beta, -alpha)
			ml[i].Score = int32(v)
		default:
			child, _ := b.MakeMove(ml[i].Sq)
			ml[i].Score = -int32(w.eval.FastEval(child))
		}
		if ml[i].Score > int32(best) {
			best = bitboard.ScaledScore(ml[i].Score)
		}
	}

	if useShallow && !w.abort.Load() {
		w.assignReductions(ml, ttMove, b.EmptyCount(), depth, sortDepth, best)
	}

	for i := range ml {
		if ml[i].Sq == ttMove {
			ml[i].Score += 1 << 24
		}
	}
}

// assignReductions implements score-based reduction: using the same
// mu/sigma statistics ProbCut fits for its shallow/deep correlation, it
// turns the spread between each move's shallow probe value and the best
// one seen into a confidence interval, and marks every move whose probe
// value falls clearly below the best as a candidate for a shallower
// initial search. ttMove is never reduced - its score already carries the
// whole search's best knowledge of the position, shallow probe notwithstanding.
func (w *Worker) assignReductions(ml movelist.MoveList, ttMove bitboard.Square, empties, depth, sortDepth int, best bitboard.ScaledScore) {
	sel := w.selectivity
	t := probcut.TValue(sel)
	if math.IsInf(t, 1) {
		return
	}
	sigma := probcut.Sigma(w.probcutStats, empties, depth, sortDepth)
	if sigma <= 0 {
		return
	}
	margin := bitboard.ScaledScore(math.Ceil(config.Settings.Search.ScoreReductionSigma * t * sigma))
	threshold := best - margin
	for i := range ml {
		if ml[i].Sq == ttMove {
			continue
		}
		if bitboard.ScaledScore(ml[i].Score) < threshold {
			ml[i].Reduction = 1
		}
	}
}

// etcCutoff implements Enhanced Transposition Cutoff: before searching
// any of b's children, it probes the table for each child position
// directly. A child entry proves a cutoff for the parent when the
// child's own search already established an upper bound on its value
// (Bound upper or exact) tight enough that the corresponding move's
// value from the parent's perspective - the negation - already reaches
// beta, without searching a single node of that child's subtree.
func (w *Worker) etcCutoff(b board.Board, ml movelist.MoveList, beta bitboard.ScaledScore) (bitboard.ScaledScore, bool) {
	limit := ml.Len()
	if limit > etcSampleLimit {
		limit = etcSampleLimit
	}
	for i := 0; i < limit; i++ {
		child, _ := b.MakeMove(ml[i].Sq)
		e, ok := w.tt.Probe(child.Hash())
		if !ok || (e.Bound != transposition.BoundUpper && e.Bound != transposition.BoundExact) {
			continue
		}
		v := -e.Value
		if v >= beta {
			return v, true
		}
	}
	return 0, false
}

// probCutTest runs a reduced-depth shallow search and compares it against
// probcut.Bounds' statistically fitted cutoff thresholds. This is a
// single-probe simplification of the textbook two-probe ProbCut (one
// probe for the high cutoff, one for the low): both thresholds are
// tested against one shallow value, which misses a handful of cutoffs a
// full two-probe version would catch but costs exactly one reduced
// search instead of two.
func (w *Worker) probCutTest(b board.Board, stack *pattern.Stack, ply, depth int, alpha, beta bitboard.ScaledScore) (bitboard.ScaledScore, bool) {
	reduction := probCutReduction
	if depth-reduction < 1 {
		return 0, false
	}
	sel := w.selectivity
	shallowLower, shallowUpper := probcut.Bounds(w.probcutStats, b.EmptyCount(), depth, reduction, int32(alpha), int32(beta), sel)
	if shallowLower == math.MinInt32 && shallowUpper == math.MaxInt32 {
		return 0, false // disabled: no fitted sigma for this cell, or SelectivityNone
	}

	shallow := w.Negamax(b, stack, ply, depth-reduction, bitboard.ScaledScore(shallowLower), bitboard.ScaledScore(shallowUpper))
	if w.abort.Load() {
		return 0, false
	}
	if int32(shallow) >= shallowUpper {
		return beta, true
	}
	if int32(shallow) <= shallowLower {
		return alpha, true
	}
	return 0, false
}

// Negamax is the midgame search: a fail-soft alpha-beta recursion over
// board.Board with transposition-table probing/storing, ETC and ProbCut
// pruning, and a principal-variation (null-window re-search) move loop.
// Once b.EmptyCount() falls to config.Settings.Search.DepthToShallowSearch
// or below, it hands off entirely to the exact endgame solver instead of
// continuing the heuristic recursion - near the end of the game an exact
// solve of the same size is both cheap and strictly more accurate than
// any network evaluation.
func (w *Worker) Negamax(b board.Board, stack *pattern.Stack, ply, depth int, alpha, beta bitboard.ScaledScore) bitboard.ScaledScore {
	if w.abort.Load() {
		return bitboard.AbortedScore
	}
	w.Stats.NodesVisited++

	if b.EmptyCount() <= config.Settings.Search.DepthToShallowSearch {
		el := board.NewEmptyList(b.Empty())
		v := w.solveEndgame(b, el, scaledToValueFloor(alpha), scaledToValueCeil(beta))
		return v.ToScaled()
	}

	if depth <= 0 {
		w.Stats.Evaluations++
		return w.eval.Evaluate(b, stack, ply)
	}

	origAlpha := alpha
	key := b.Hash()
	ttMove := bitboard.SqNone
	if config.Settings.Search.UseTT {
		if e, ok := w.tt.Probe(key); ok {
			w.Stats.TTHit++
			ttMove = e.Move
			if int(e.Depth) >= depth {
				switch e.Bound {
				case transposition.BoundExact:
					w.Stats.TTCuts++
					return e.Value
				case transposition.BoundLower:
					if e.Value > alpha {
						alpha = e.Value
					}
				case transposition.BoundUpper:
					if e.Value < beta {
						beta = e.Value
					}
				}
				if alpha >= beta {
					w.Stats.TTCuts++
					return e.Value
				}
			}
		} else {
			w.Stats.TTMiss++
		}
	}

	ml := movelist.Generate(b)
	if ml.Len() == 0 {
		passed := b.Pass()
		if !passed.HasLegalMove() {
			return finalValue(b).ToScaled()
		}
		stack.PushPass(ply)
		v := -w.Negamax(passed, stack, ply+1, depth, -beta, -alpha)
		if w.abort.Load() {
			return bitboard.AbortedScore
		}
		return v
	}

	if _, ok := ml.WipeoutMove(b); ok {
		w.Stats.WipeoutCuts++
		return bitboard.WipeoutScore
	}

	w.orderMidgame(b, stack, ply, depth, ml, ttMove, alpha, beta)

	if config.Settings.Search.UseETC && depth >= config.Settings.Search.ETCDepth {
		if v, ok := w.etcCutoff(b, ml, beta); ok {
			w.Stats.ETCCuts++
			return v
		}
	}

	if config.Settings.Search.UseProbCut && depth >= config.Settings.Search.ProbCutDepth {
		if v, ok := w.probCutTest(b, stack, ply, depth, alpha, beta); ok {
			w.Stats.ProbCutCuts++
			return v
		}
	}

	ml.Sort()

	// The eldest brother is always searched alone, sequentially: YBWC
	// never parallelizes a node's first move, since its result is what
	// the remaining siblings' null-window searches and any split point
	// below need as their alpha bound in the first place.
	m0, _ := ml.NextBest(0)
	child0, _ := b.MakeMove(m0.Sq)
	stack.Push(ply, m0.Sq, m0.Flip)
	v0 := -w.Negamax(child0, stack, ply+1, depth-1, -beta, -alpha)
	if w.abort.Load() {
		return bitboard.AbortedScore
	}

	best := m0.Sq
	bestValue := v0
	if v0 > alpha {
		alpha = v0
	}
	if alpha >= beta {
		w.Stats.BetaCuts1st++
		w.Stats.BetaCuts++
	} else if ml.Len() > 1 {
		if w.canSplit(depth) {
			sp := w.split(b, ply, depth, ml, 1, alpha, beta, bestValue, best)
			if sp.BestValue > bestValue {
				w.Stats.BestMoveChanges++
				bestValue = sp.BestValue
				best = sp.BestMove
			}
			if w.abort.Load() {
				return bitboard.AbortedScore
			}
			if sp.Cutoff {
				w.Stats.BetaCuts++
			}
		} else {
			for i := 1; i < ml.Len(); i++ {
				m, _ := ml.NextBest(i)
				child, _ := b.MakeMove(m.Sq)
				stack.Push(ply, m.Sq, m.Flip)

				searchDepth := depth - 1 - int(m.Reduction)
				if searchDepth < 1 {
					searchDepth = depth - 1
				}
				v := -w.Negamax(child, stack, ply+1, searchDepth, -alpha-1, -alpha)
				if !w.abort.Load() && searchDepth < depth-1 && v > alpha {
					w.Stats.ReductionResearches++
					v = -w.Negamax(child, stack, ply+1, depth-1, -alpha-1, -alpha)
				}
				if !w.abort.Load() && v > alpha && v < beta {
					w.Stats.PVSResearches++
					v = -w.Negamax(child, stack, ply+1, depth-1, -beta, -alpha)
				}

				if w.abort.Load() {
					return bitboard.AbortedScore
				}

				if v > bestValue {
					w.Stats.BestMoveChanges++
					bestValue = v
					best = m.Sq
				}
				if v > alpha {
					alpha = v
				}
				if alpha >= beta {
					w.Stats.BetaCuts++
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT {
		bound := transposition.BoundExact
		switch {
		case bestValue <= origAlpha:
			bound = transposition.BoundUpper
		case bestValue >= beta:
			bound = transposition.BoundLower
		}
		w.tt.Store(key, bestValue, uint8(depth), bound, best)
	}

	return bestValue
}

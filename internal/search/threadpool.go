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
	"github.com/fkopp/reversicore/internal/pattern"
)

// ThreadPool owns every Worker a split point may recruit as a helper, and
// an idle-token channel identifying which worker ids are currently free
// to be lent out. Unlike the persistent OS threads blocked in a condvar
// idle loop this is modelled on, a Go worker with nothing to do simply
// has its id parked in idle - recruiting it spawns a goroutine for the
// lifetime of one split point and returns the id to idle when that
// goroutine exits, rather than waking a thread that was already running.
type ThreadPool struct {
	workers []*Worker
	idle    chan int
}

// NewThreadPool wires searches' own workers into one split-point pool:
// worker 0 (searches[0]) is the permanent lead driving the reported
// iterative-deepening search and is never itself handed out as an idle
// token, but it still participates in split points as a worker the same
// way any recruited helper does, once it calls split() from inside its
// own Negamax recursion. searches[1:]'s workers start idle.
func NewThreadPool(searches []*Search) *ThreadPool {
	workers := make([]*Worker, len(searches))
	for i, s := range searches {
		workers[i] = s.worker
	}
	tp := &ThreadPool{workers: workers, idle: make(chan int, len(workers))}
	for _, w := range workers {
		w.pool = tp
	}
	for _, w := range workers[1:] {
		tp.idle <- w.id
	}
	return tp
}

// recruit non-blockingly claims up to want idle worker ids, returning
// however many were actually available (possibly zero).
func (tp *ThreadPool) recruit(want int) []int {
	ids := make([]int, 0, want)
	for len(ids) < want {
		select {
		case id := <-tp.idle:
			ids = append(ids, id)
		default:
			return ids
		}
	}
	return ids
}

func (tp *ThreadPool) release(id int) {
	tp.idle <- id
}

// canSplit reports whether w may turn its current node into a split
// point: parallel search must be enabled and have more than one worker,
// w's own split-point stack must have room left, and depth must meet
// config.Settings.Search.MinSplitDepth - splitting a shallow node would
// spend more on coordination than the parallelism could ever recoup.
func (w *Worker) canSplit(depth int) bool {
	return w.pool != nil &&
		len(w.pool.workers) > 1 &&
		config.Settings.Search.UseParallelSearch &&
		depth >= config.Settings.Search.MinSplitDepth &&
		len(w.splitStack) < MaxSplitPointsPerThread
}

// split turns the remaining (not-yet-searched) moves of ml into a split
// point: it recruits up to MaxSlavesPerSplitPoint-1 idle workers (the
// master itself always counts as one participant), hands every
// participant - master included - a Cursor over ml, and blocks until the
// cursor is drained or a cutoff is reported. The master's own alpha/beta
// window at call time seeds the split point's shared state; ml's moves
// before nextIndex (the eldest brother, and anything a caller already
// special-cased) are assumed already searched and are not revisited.
func (w *Worker) split(b board.Board, ply, depth int, ml movelist.MoveList, nextIndex int, alpha, beta bitboard.ScaledScore, bestValue bitboard.ScaledScore, bestMove bitboard.Square) *SplitPoint {
	sp := &SplitPoint{
		Parent:    w.activeSplitPoint(),
		Board:     b,
		Ply:       ply,
		Depth:     depth,
		Alpha:     alpha,
		Beta:      beta,
		BestValue: bestValue,
		BestMove:  bestMove,
		MasterID:  w.id,
		Cursor:    movelist.NewCursor(ml[nextIndex:]),
	}
	sp.Slaves |= 1 << uint(w.id)

	helpers := w.pool.recruit(MaxSlavesPerSplitPoint - 1)
	helperNodesBefore := make([]uint64, len(helpers))
	sp.wg.Add(len(helpers))
	for i, id := range helpers {
		id := id
		sp.Slaves |= 1 << uint(id)
		helper := w.pool.workers[id]
		helperNodesBefore[i] = helper.Stats.NodesVisited
		go func() {
			defer sp.wg.Done()
			defer w.pool.release(id)
			helper.pushSplitPoint(sp)
			helper.participate(sp)
			helper.popSplitPoint()
		}()
	}

	w.pushSplitPoint(sp)
	w.participate(sp)
	w.popSplitPoint()
	sp.wg.Wait()

	// Fold every helper's node count into the master's own Statistics:
	// helpers run on their own Worker structs, invisible to whichever
	// Search.Stats the caller reports from otherwise.
	for i, id := range helpers {
		helper := w.pool.workers[id]
		w.Stats.NodesVisited += helper.Stats.NodesVisited - helperNodesBefore[i]
	}

	return sp
}

// participate is the loop every split-point worker (master and helpers
// alike) runs: pull the next move from the shared cursor, search it at a
// fresh local pattern.Stack seeded at the split point's board, and fold
// the result back in. pattern.Stack indexes its per-ply arrays relative
// to whatever ply the stack itself started counting from (see
// pattern.NewStack/Push), so each participant is free to use its own
// zero-based stack rather than needing a copy of the master's - nothing
// outside the Negamax recursion that produced it ever reads a stack at an
// absolute, cross-goroutine ply.
func (w *Worker) participate(sp *SplitPoint) {
	stack := pattern.NewStack(sp.Board)
	nodesBefore := w.Stats.NodesVisited

	for {
		if w.abort.Load() || sp.cutoffOccurred() {
			break
		}
		m, _, ok := sp.Cursor.Next()
		if !ok {
			break
		}

		alpha, beta, cutoff := sp.snapshot()
		if cutoff {
			break
		}

		child, _ := sp.Board.MakeMove(m.Sq)
		stack.Push(0, m.Sq, m.Flip)

		searchDepth := sp.Depth - 1 - int(m.Reduction)
		if searchDepth < 1 {
			searchDepth = sp.Depth - 1
		}
		v := -w.Negamax(child, stack, 1, searchDepth, -alpha-1, -alpha)
		if !w.abort.Load() && searchDepth < sp.Depth-1 && v > alpha {
			w.Stats.ReductionResearches++
			v = -w.Negamax(child, stack, 1, sp.Depth-1, -alpha-1, -alpha)
		}
		if !w.abort.Load() && v > alpha && v < beta {
			w.Stats.PVSResearches++
			freshAlpha, freshBeta, _ := sp.snapshot()
			v = -w.Negamax(child, stack, 1, sp.Depth-1, -freshBeta, -freshAlpha)
		}
		if w.abort.Load() {
			break
		}

		nodes := w.Stats.NodesVisited - nodesBefore
		nodesBefore = w.Stats.NodesVisited
		sp.updateBest(v, m.Sq, nodes)
	}
}

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
	"sync"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/movelist"
)

// MaxSlavesPerSplitPoint bounds how many helper workers may join one
// split point (the master included counts as one of its own slaves),
// matching the bound real YBWC pools use: beyond a handful of helpers,
// contention on the shared alpha/best-score state costs more than the
// extra parallelism returns.
const MaxSlavesPerSplitPoint = 3

// MaxSplitPointsPerThread bounds how deep one worker's own split-point
// stack may nest, so a pathological chain of nested splits cannot grow a
// single worker's bookkeeping without limit.
const MaxSplitPointsPerThread = 8

// SplitPoint is the Young Brothers Wait Concept's shared node state: the
// master has already searched the node's first ("eldest brother") move
// alone; every remaining sibling is handed out one at a time, via
// Cursor, to however many workers (the master included) end up
// participating, each folding its result into the mutex-guarded
// alpha/best-score/best-move below until a cutoff is proven. Parent
// links the chain of split points a worker is nested under, so
// cutoffOccurred can walk all the way to the root looking for any
// ancestor that has already proven the whole subtree moot.
type SplitPoint struct {
	mu sync.Mutex

	Parent *SplitPoint

	Board board.Board // the position being split, before any of Cursor's moves
	Ply   int
	Depth int

	Alpha     bitboard.ScaledScore
	Beta      bitboard.ScaledScore
	BestValue bitboard.ScaledScore
	BestMove  bitboard.Square
	Nodes     uint64
	Cutoff    bool

	MasterID int
	Slaves   uint32 // bitmask of worker ids (master included) working this split point

	Cursor *movelist.Cursor

	wg sync.WaitGroup
}

// cutoffOccurred walks from sp up through every ancestor split point,
// reporting true the instant any of them has already proven a cutoff -
// lets a participating worker abandon its share of the work the moment
// it becomes provably irrelevant to the final result, without a separate
// polled abort flag.
func (sp *SplitPoint) cutoffOccurred() bool {
	for p := sp; p != nil; p = p.Parent {
		p.mu.Lock()
		cut := p.Cutoff
		p.mu.Unlock()
		if cut {
			return true
		}
	}
	return false
}

// snapshot returns the split point's current alpha/beta/cutoff under
// lock, for a participant about to search its next move: alpha only ever
// rises as siblings report in, so every participant must always search
// against the latest value, not the one the split point was initialized
// with.
func (sp *SplitPoint) snapshot() (alpha, beta bitboard.ScaledScore, cutoff bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.Alpha, sp.Beta, sp.Cutoff
}

// updateBest folds one participant's result for move sq into the split
// point's shared alpha/best state, marking Cutoff once alpha reaches
// beta. Safe for concurrent callers; a no-op once Cutoff is already set,
// so a slow straggler cannot un-cut a split point a faster sibling
// already closed out.
func (sp *SplitPoint) updateBest(value bitboard.ScaledScore, sq bitboard.Square, nodes uint64) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.Nodes += nodes
	if sp.Cutoff {
		return
	}
	if value > sp.BestValue {
		sp.BestValue = value
		sp.BestMove = sq
	}
	if value > sp.Alpha {
		sp.Alpha = value
	}
	if sp.Alpha >= sp.Beta {
		sp.Cutoff = true
	}
}

// pushSplitPoint and popSplitPoint maintain a worker's own split-point
// stack (ThreadState::split_points in the original), bounding nesting and
// letting cutoffOccurred/canJoin reason about what a worker is currently
// busy with.
func (w *Worker) pushSplitPoint(sp *SplitPoint) {
	w.splitStack = append(w.splitStack, sp)
}

func (w *Worker) popSplitPoint() {
	w.splitStack = w.splitStack[:len(w.splitStack)-1]
}

func (w *Worker) activeSplitPoint() *SplitPoint {
	if len(w.splitStack) == 0 {
		return nil
	}
	return w.splitStack[len(w.splitStack)-1]
}

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
	"time"

	"github.com/fkopp/reversicore/internal/movelist"
	"github.com/fkopp/reversicore/internal/probcut"
)

// Limits controls how far and how long one call to Search.Run is allowed
// to go. The zero value means "search until mate/exact solve or Stop is
// called" - the same meaning as Infinite true.
type Limits struct {
	Infinite bool
	Depth    int // stop iterative deepening after this many empties-deep
	Nodes    uint64
	MoveTime time.Duration // fixed think time for this move, 0 = use TimeLeft
	TimeLeft time.Duration // remaining game clock for the side to move
	Increment time.Duration

	// Moves restricts the root to this set, e.g. for solving a single
	// candidate move rather than the whole position. Empty means "all
	// legal moves".
	Moves movelist.MoveList

	// Selectivity caps how far Run's endgame refinement cascade descends
	// once an iteration reaches the end of the game: the cascade starts
	// at probcut.Selectivity5 (most aggressive) and steps down one level
	// per pass, stopping at Selectivity rather than always continuing to
	// probcut.SelectivityNone's exact solve. The zero value,
	// SelectivityNone, is "go all the way to an exact answer" - the most
	// thorough and also the default.
	Selectivity probcut.Selectivity

	// MultiPV, when true, makes Run populate Result.RootMoves with every
	// root move's own score, running average and principal variation,
	// not just the best move's.
	MultiPV bool
}

// NewLimits returns an unrestricted Limits (infinite search).
func NewLimits() *Limits {
	return &Limits{Infinite: true}
}

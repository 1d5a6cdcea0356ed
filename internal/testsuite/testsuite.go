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

// Package testsuite loads and runs FFO-style endgame benchmark positions:
// a 64-character board string plus an expected perfect-play score and
// best move, each searched to its named end-depth and checked for an
// exact match. This replaces the teacher's EPD-based (bm/am/dm) chess
// test suite with the much narrower thing endgame Othello solvers are
// actually benchmarked against - there is no "avoid move" or "mate in N"
// concept here, only "the exact disc differential at full depth".
package testsuite

import (
	"fmt"
	"time"

	"github.com/op/go-logging"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/engine"
	myLogging "github.com/fkopp/reversicore/internal/logging"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetTestLog(config.LogLevel)
	}
	return log
}

// Position is one FFO-style benchmark case: a board string searched Depth
// plies deep (the full empty count for the built-in cases), with a known perfect-play score (in
// whole discs, relative to Mover) and best move.
type Position struct {
	Name          string
	BoardString   string
	Mover         bitboard.Player
	Depth         int
	ExpectedScore int
	ExpectedMove  string
}

// FFO40 is Edax's FFO test #40: 20 empties, black to move.
var FFO40 = Position{
	Name:          "FFO-40",
	BoardString:   "O--OOOOX-OOOOOOXOOXXOOOXOOXOOOXXOOOOOOXX---OOOOX----O--X--------",
	Mover:         bitboard.Black,
	Depth:         20,
	ExpectedScore: 38,
	ExpectedMove:  "A2",
}

// FFO41 is Edax's FFO test #41: 22 empties, black to move.
var FFO41 = Position{
	Name:          "FFO-41",
	BoardString:   "-OOOOO----OOOOX--OOOOOO-XXXXXOO--XXOOX--OOXOXX----OXXO---OOO--O-",
	Mover:         bitboard.Black,
	Depth:         22,
	ExpectedScore: 0,
	ExpectedMove:  "H4",
}

// Suite is the built-in benchmark set spec.md names (§8, scenarios 2-3).
var Suite = []Position{FFO40, FFO41}

// Result is one Position's outcome after running it through an Engine.
type Result struct {
	Position Position
	Best     bitboard.Square
	Score    int
	Elapsed  time.Duration
	Passed   bool
}

// Board parses p's board string, panicking on a malformed built-in
// Position - a typo here is a programming error, not a runtime one.
func (p Position) Board() board.Board {
	b, err := board.ParseBoardString(p.BoardString, p.Mover)
	if err != nil {
		panic(fmt.Sprintf("testsuite: position %s: %v", p.Name, err))
	}
	return b
}

// Run searches p to its named depth on e and checks the result against
// p's expected score and best move. e must already be initialized
// (e.Init called) before Run is invoked.
func Run(e *engine.Engine, p Position) Result {
	getLog()
	start := time.Now()
	r, err := e.FixedDepth(p.Board(), p.Depth)
	elapsed := time.Since(start)
	if err != nil {
		log.Errorf("testsuite: %s: %v", p.Name, err)
		return Result{Position: p, Elapsed: elapsed}
	}
	score := r.Value.ToDiscs()
	passed := score == p.ExpectedScore && r.Best.String() == normalizeMove(p.ExpectedMove)
	return Result{
		Position: p,
		Best:     r.Best,
		Score:    score,
		Elapsed:  elapsed,
		Passed:   passed,
	}
}

func normalizeMove(s string) string {
	sq, err := bitboard.ParseSquare(s)
	if err != nil {
		return s
	}
	return sq.String()
}

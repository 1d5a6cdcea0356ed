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

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/search"
	"github.com/fkopp/reversicore/internal/timecontrol"
)

func testConfig() Config {
	return Config{Threads: 1, TTSizeMB: 1, TTBucketSize: 4}
}

func TestNewClampsThreadsToAtLeastOne(t *testing.T) {
	e := New(Config{Threads: 0})
	assert.Equal(t, 1, e.cfg.Threads)
}

func TestRunBeforeInitReturnsError(t *testing.T) {
	e := New(testConfig())
	_, err := e.Run(RunOptions{Board: board.StartBoard(), Limits: search.Limits{Depth: 2}})
	assert.Error(t, err)
}

func TestQuickMoveBeforeInitReturnsError(t *testing.T) {
	e := New(testConfig())
	_, err := e.QuickMove(board.StartBoard())
	assert.Error(t, err)
}

func TestInitIsIdempotent(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())
	require.NoError(t, e.Init())
	assert.True(t, e.initialized)
}

func TestRunReturnsLegalMoveWithFixedDepthLimits(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	b := board.StartBoard()
	r, err := e.Run(RunOptions{Board: b, Limits: search.Limits{Depth: 2}, Clock: timecontrol.Limits{Mode: timecontrol.Infinite}})
	require.NoError(t, err)
	assert.True(t, b.LegalMoves().Has(r.Best))
}

func TestRunRejectsConcurrentCall(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	require.NoError(t, e.runningSem.Acquire(context.Background(), 1))
	defer e.runningSem.Release(1)

	_, err := e.Run(RunOptions{Board: board.StartBoard(), Limits: search.Limits{Depth: 2}})
	assert.Error(t, err)
}

func TestRunningReflectsInFlightSearch(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())
	assert.False(t, e.Running())

	require.NoError(t, e.runningSem.Acquire(context.Background(), 1))
	assert.True(t, e.Running())
	e.runningSem.Release(1)
	assert.False(t, e.Running())
}

func TestAbortOnIdleEngineDoesNotBlock(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())
	done := make(chan struct{})
	go func() {
		e.Abort()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Abort blocked on an idle engine")
	}
}

func TestQuickMoveReturnsNoneOnTerminalBoard(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	player, opponent := fullBoardHalves()
	b := board.Board{Player: player, Opponent: opponent}
	r, err := e.QuickMove(b)
	require.NoError(t, err)
	assert.Equal(t, bitboard.SqNone, r.Best)
}

func TestQuickMoveReturnsALegalMove(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	b := board.StartBoard()
	r, err := e.QuickMove(b)
	require.NoError(t, err)
	assert.True(t, b.LegalMoves().Has(r.Best))
	assert.Equal(t, 1, r.Depth)
}

func TestFixedDepthReturnsLegalMoveBeforeInitErrors(t *testing.T) {
	e := New(testConfig())
	_, err := e.FixedDepth(board.StartBoard(), 2)
	assert.Error(t, err)

	require.NoError(t, e.Init())
	r, err := e.FixedDepth(board.StartBoard(), 2)
	require.NoError(t, err)
	assert.True(t, board.StartBoard().LegalMoves().Has(r.Best))
}

func TestStatsOnUninitializedEngineIsZeroValue(t *testing.T) {
	e := New(testConfig())
	assert.Equal(t, search.Statistics{}, e.Stats())
}

func TestWithInstabilityExtensionStillCallsInnerProgress(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	var calls int
	wrapped := e.withInstabilityExtension(func(r search.Result) { calls++ })
	wrapped(search.Result{Best: bitboard.SqC4, Value: bitboard.FromDiscs(10), Depth: 5})
	wrapped(search.Result{Best: bitboard.SqD3, Value: bitboard.FromDiscs(10), Depth: 6})
	assert.Equal(t, 2, calls)
}

func TestWithInstabilityExtensionToleratesNilInner(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	wrapped := e.withInstabilityExtension(nil)
	assert.NotPanics(t, func() {
		wrapped(search.Result{Best: bitboard.SqC4, Value: bitboard.FromDiscs(10), Depth: 5})
	})
}

func TestRunWithATimedClockStillReturnsALegalMove(t *testing.T) {
	e := New(testConfig())
	require.NoError(t, e.Init())

	b := board.StartBoard()
	r, err := e.Run(RunOptions{
		Board:  b,
		Limits: search.Limits{Depth: 3},
		Clock:  timecontrol.Limits{Mode: timecontrol.MoveTime, MoveTime: 200 * time.Millisecond},
	})
	require.NoError(t, err)
	assert.True(t, b.LegalMoves().Has(r.Best))
}

func fullBoardHalves() (player, opponent bitboard.Bitboard) {
	for sq := bitboard.SqA1; sq < bitboard.SqLength; sq++ {
		if sq.FileOf() <= bitboard.FileD {
			player = player.PushSquare(sq)
		} else {
			opponent = opponent.PushSquare(sq)
		}
	}
	return player, opponent
}

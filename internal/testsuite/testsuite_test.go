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

package testsuite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/engine"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e := engine.New(engine.Config{Threads: 1, TTSizeMB: 1, TTBucketSize: 4})
	require.NoError(t, e.Init())
	return e
}

func TestPositionBoardParsesBuiltInSuite(t *testing.T) {
	for _, p := range Suite {
		b := p.Board()
		assert.Equal(t, 64-strings.Count(p.BoardString, "-"), b.PlayerCount()+b.OpponentCount())
	}
}

func TestPositionBoardPanicsOnMalformedString(t *testing.T) {
	bad := Position{Name: "bad", BoardString: "too-short", Mover: bitboard.Black}
	assert.Panics(t, func() { bad.Board() })
}

func TestNormalizeMoveAcceptsAlgebraicNotation(t *testing.T) {
	assert.Equal(t, "A2", normalizeMove("A2"))
	assert.Equal(t, "A2", normalizeMove("a2"))
}

func TestNormalizeMoveLeavesUnparseableStringsAsIs(t *testing.T) {
	assert.Equal(t, "garbage", normalizeMove("garbage"))
}

func TestRunOnFullBoardReturnsNoMoveWithoutError(t *testing.T) {
	e := testEngine(t)
	full := Position{
		Name:          "full",
		BoardString:   strings.Repeat("X", 32) + strings.Repeat("O", 32),
		Mover:         bitboard.Black,
		Depth:         1,
		ExpectedScore: 0,
		ExpectedMove:  "A1",
	}

	r := Run(e, full)
	assert.False(t, r.Passed, "a position with no legal continuation cannot match a named expected move")
}

func TestRunOnUninitializedEngineReportsFailureNotPanic(t *testing.T) {
	e := engine.New(engine.Config{Threads: 1})
	r := Run(e, FFO40)
	assert.False(t, r.Passed)
}

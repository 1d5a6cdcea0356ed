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

	"github.com/fkopp/reversicore/internal/bitboard"
)

func TestRunSuiteReturnsOneResultPerPositionInOrder(t *testing.T) {
	e := testEngine(t)
	cases := []Position{
		{Name: "a", BoardString: strings.Repeat("X", 32) + strings.Repeat("O", 32), Mover: bitboard.Black, Depth: 1},
		{Name: "b", BoardString: strings.Repeat("X", 32) + strings.Repeat("O", 32), Mover: bitboard.White, Depth: 1},
	}

	results := RunSuite(e, cases)
	assert.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Position.Name)
	assert.Equal(t, "b", results[1].Position.Name)
}

func TestReportListsEveryPositionSortedByName(t *testing.T) {
	results := []Result{
		{Position: Position{Name: "zeta", ExpectedMove: "A1"}, Best: bitboard.SqA1, Passed: true},
		{Position: Position{Name: "alpha", ExpectedMove: "B2"}, Best: bitboard.SqB2, Passed: false},
	}

	report := Report(results)
	assert.True(t, strings.Index(report, "alpha") < strings.Index(report, "zeta"))
	assert.Contains(t, report, "Passed: 1 / 2")
}

func TestReportOnEmptyResultsStillRendersAFrame(t *testing.T) {
	report := Report(nil)
	assert.Contains(t, report, "Number of tests  : 0")
	assert.Contains(t, report, "Passed: 0 / 0")
}

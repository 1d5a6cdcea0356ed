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
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/engine"
)

var out = message.NewPrinter(language.German)

// RunSuite runs every Position in cases against e concurrently - each
// FixedDepth call builds its own single-threaded search.Search sharing
// only e's read-only evaluator and its transposition.Table (safe for
// concurrent use by construction, see internal/transposition), so the
// whole suite completes in roughly the time of its slowest single
// position rather than their sum. e must already be initialized.
func RunSuite(e *engine.Engine, cases []Position) []Result {
	getLog()
	results := make([]Result, len(cases))
	g, _ := errgroup.WithContext(context.Background())
	var mu sync.Mutex
	for i, p := range cases {
		i, p := i, p
		g.Go(func() error {
			r := Run(e, p)
			mu.Lock()
			results[i] = r
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Report renders results as a fixed-width table in the teacher's
// feature-test report style, sorted by position name.
func Report(results []Result) string {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position.Name < sorted[j].Position.Name
	})

	var totalTime time.Duration
	passed := 0
	for _, r := range sorted {
		totalTime += r.Elapsed
		if r.Passed {
			passed++
		}
	}

	b := strings.Builder{}
	b.WriteString(out.Sprintf("Endgame Test Suite Result Report\n"))
	b.WriteString(out.Sprintf("==============================================================================\n"))
	b.WriteString(out.Sprintf("Date            : %s\n", time.Now()))
	b.WriteString(out.Sprintf("Number of tests  : %d\n", len(sorted)))
	b.WriteString(out.Sprintln())
	b.WriteString(out.Sprintf("===========================================================================================\n"))
	b.WriteString(out.Sprintf(" %-10s | %-8s | %-8s | %-8s | %-8s | %-10s | %s\n",
		"Position", "Result", "Move", "Expected", "Score", "Expected", "Time"))
	b.WriteString(out.Sprintf("===========================================================================================\n"))
	for _, r := range sorted {
		status := "FAILED"
		if r.Passed {
			status = "OK"
		}
		b.WriteString(out.Sprintf(" %-10s | %-8s | %-8s | %-8s | %-8d | %-10d | %s\n",
			r.Position.Name, status, r.Best.String(), r.Position.ExpectedMove,
			r.Score, r.Position.ExpectedScore, r.Elapsed))
	}
	b.WriteString(out.Sprintf("===========================================================================================\n"))
	b.WriteString(out.Sprintf("Passed: %d / %d\n", passed, len(sorted)))
	b.WriteString(out.Sprintf("Total time: %s\n", totalTime))
	b.WriteString(out.Sprintln())
	b.WriteString(out.Sprintf("Configuration: %s\n", config.Settings.String()))
	b.WriteString(out.Sprintln())
	return b.String()
}

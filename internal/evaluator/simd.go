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

package evaluator

import (
	"golang.org/x/sys/cpu"

	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/pattern"
)

// sumFeatures is chosen once by detectSimd, never reassigned afterwards.
// Both candidates are ordinary Go; there is no actual hand-written
// vector assembly here; the unrolled variant just gives the compiler's
// own autovectorizer independent accumulators to work with, and is
// disabled in configuration on hosts that can't benefit.
var sumFeatures func(weights []int32, vec *pattern.Vector) int32

func init() {
	DetectSimd()
}

// DetectSimd (re-)selects sumFeatures from current configuration and host
// CPU support. Called once at package init with default configuration,
// and again by internal/engine right after config.Setup() has applied any
// config.toml overrides, so a UseSimd=false in config.toml still takes
// effect even though this package initializes before Setup runs.
func DetectSimd() {
	if config.Settings.Eval.UseSimd && cpu.X86.HasAVX2 {
		sumFeatures = sumFeaturesUnrolled4
		return
	}
	sumFeatures = sumFeaturesScalar
}

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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupAppliesDefaultsWhenNoConfigFile(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist-config.toml"

	Setup()

	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 128, Settings.Search.TTSizeMb)
	assert.Equal(t, 16, Settings.Eval.SmallNetworkEmptiesThreshold)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Search.TTSizeMb = 999
	Setup()
	assert.Equal(t, 999, Settings.Search.TTSizeMb, "second Setup call must not reset values already applied")
}

func TestLogLevelsMapping(t *testing.T) {
	assert.Equal(t, 5, LogLevels["DEBUG"])
	assert.Equal(t, 0, LogLevels["CRITICAL"])
}

func TestConfStringIncludesSectionHeaders(t *testing.T) {
	initialized = false
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search Config:")
	assert.Contains(t, s, "Evaluation Config:")
	assert.Contains(t, s, "TTSizeMb")
}

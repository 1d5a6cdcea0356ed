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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndgameCacheGetMissOnEmpty(t *testing.T) {
	c := newEndgameCache(1)
	_, ok := c.get(12345)
	assert.False(t, ok)
}

func TestEndgameCachePutThenGetHits(t *testing.T) {
	c := newEndgameCache(1)
	c.put(777, 42)
	v, ok := c.get(777)
	assert.True(t, ok)
	assert.EqualValues(t, 42, v)
}

func TestEndgameCacheClearEmptiesAllSlots(t *testing.T) {
	c := newEndgameCache(1)
	c.put(1, 1)
	c.clear()
	_, ok := c.get(1)
	assert.False(t, ok)
	assert.EqualValues(t, 0, c.entries)
}

func TestEndgameCacheResizeNeverExceedsMax(t *testing.T) {
	c := newEndgameCache(nwsCacheMaxSizeMB * 4)
	maxEntries := uint64(nwsCacheMaxSizeMB) * 1024 * 1024 / nwsCacheEntrySize
	assert.True(t, uint64(len(c.data)) <= maxEntries)
}

func TestStatisticsStringIncludesFieldNames(t *testing.T) {
	var s Statistics
	s.NodesVisited = 7
	str := s.String()
	assert.Contains(t, str, "NodesVisited")
}

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
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/fkopp/reversicore/internal/config"
	myLogging "github.com/fkopp/reversicore/internal/logging"
)

// nwsCacheMaxSizeMB bounds the endgame null-window-search cache, which is
// thread-local (one per search worker) rather than shared like the main
// transposition table, so it is kept deliberately small.
const nwsCacheMaxSizeMB = 64

// nwsCacheEntrySize is the size in bytes of each endgameCacheEntry.
const nwsCacheEntrySize = 16

// endgameCacheEntry stores an exact disc-difference value computed by the
// endgame solver below config.Settings.Search.DepthToNwsEndgameCache
// empties, so a transposition reached again later in the same endgame
// search does not have to be solved twice.
type endgameCacheEntry struct {
	key   uint64
	value int32 // bitboard.Value widened; int8 would not byte-align to 16
}

// endgameCache is a thread-local, non-bucketed direct-mapped cache - one
// per search worker, cleared between unrelated searches. Adapted from the
// teacher's pawnCache, which has exactly this shape (a simple
// key-indexed-by-mask cache of a cheap-to-recompute-but-worth-reusing
// value) for a different quantity.
type endgameCache struct {
	log *logging.Logger

	data        []endgameCacheEntry
	hashKeyMask uint64
	entries     uint64
	hits        uint64
	misses      uint64
	replaces    uint64
}

func newEndgameCache(sizeInMByte int) *endgameCache {
	c := &endgameCache{log: myLogging.GetSearchLog(config.SearchLogLevel)}
	c.resize(sizeInMByte)
	return c
}

func (c *endgameCache) resize(sizeInMByte int) {
	if sizeInMByte > nwsCacheMaxSizeMB {
		sizeInMByte = nwsCacheMaxSizeMB
	}
	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	maxEntries := uint64(0)
	if sizeInByte >= nwsCacheEntrySize {
		maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/nwsCacheEntrySize))))
	}
	c.hashKeyMask = 0
	if maxEntries > 0 {
		c.hashKeyMask = maxEntries - 1
	}
	c.data = make([]endgameCacheEntry, maxEntries)
	c.log.Debug(out.Sprintf("endgame NWS cache: %d entries (%d bytes each)", maxEntries, unsafe.Sizeof(endgameCacheEntry{})))
}

func (c *endgameCache) get(key uint64) (int32, bool) {
	if len(c.data) == 0 {
		return 0, false
	}
	e := &c.data[key&c.hashKeyMask]
	if e.key == key {
		c.hits++
		return e.value, true
	}
	c.misses++
	return 0, false
}

func (c *endgameCache) put(key uint64, value int32) {
	if len(c.data) == 0 {
		return
	}
	e := &c.data[key&c.hashKeyMask]
	if e.key == 0 {
		c.entries++
	} else if e.key != key {
		c.replaces++
	}
	e.key = key
	e.value = value
}

func (c *endgameCache) clear() {
	c.data = make([]endgameCacheEntry, len(c.data))
	c.entries, c.hits, c.misses, c.replaces = 0, 0, 0, 0
}

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

package parallel

import "github.com/dgraph-io/ristretto/v2"

// sharedCacheCost is the per-entry cost ristretto's admission policy uses
// to decide what survives contention. Every endgame entry is fixed-size,
// so a flat cost of 1 against a MaxCost equal to the entry budget is
// sufficient - we don't need the variable-cost machinery ristretto
// supports for, say, caching values of differing byte sizes.
const sharedCacheCost = 1

// SharedCache is a concurrent, cost-bounded cache of exact endgame values
// shared by every search.Search in a Pool, satisfying search.SharedCache.
// It complements each worker's own thread-local, direct-mapped endgame
// cache (internal/search's endgameCache): a subtree one goroutine has
// already solved becomes visible to every sibling goroutine, not just to
// the one that solved it, without the lock contention a shared
// direct-mapped table under concurrent writers would suffer.
//
// No repo in the example pack calls into ristretto directly - it shows up
// only as an indirect, transitively-pulled dependency of another module.
// It is wired in here on its published purpose (a high-throughput
// concurrent cache with bounded memory and probabilistic admission,
// exactly the shape this shared cache needs) rather than on a specific
// pack call site; see DESIGN.md.
type SharedCache struct {
	cache *ristretto.Cache[uint64, int32]
}

// NewSharedCache builds a SharedCache bounded at roughly maxEntries
// 16-byte endgame values.
func NewSharedCache(maxEntries int64) (*SharedCache, error) {
	if maxEntries <= 0 {
		maxEntries = 1 << 20
	}
	c, err := ristretto.NewCache(&ristretto.Config[uint64, int32]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &SharedCache{cache: c}, nil
}

// Get satisfies search.SharedCache.
func (c *SharedCache) Get(key uint64) (int32, bool) {
	return c.cache.Get(key)
}

// Put satisfies search.SharedCache.
func (c *SharedCache) Put(key uint64, value int32) {
	c.cache.Set(key, value, sharedCacheCost)
}

// Close releases the cache's background goroutines. Call once the Pool
// that owns it is no longer needed.
func (c *SharedCache) Close() {
	c.cache.Close()
}

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

// Package transposition implements a bucketed, generation-tagged,
// lock-free transposition table for the search. Entries are written with
// plain atomic stores guarded by a XOR consistency check rather than a
// mutex, so any number of search threads can probe and store concurrently
// without ever blocking each other; the cost is a rare false miss when a
// probe races a store to the same slot, which the search simply treats as
// a normal cache miss.
package transposition

import (
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/config"
	myLogging "github.com/fkopp/reversicore/internal/logging"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB bounds how much memory a single table may claim.
const MaxSizeInMB = 65_536

// BucketSize is the default number of entries per hash bucket; probes and
// stores scan the whole bucket linearly, replacing the shallowest or
// stalest entry when full. Overridden by config.Settings.Search.TTBucketSize.
const BucketSize = 4

// Table is the transposition table. Resize and Clear are not safe to call
// concurrently with Probe/Store (or with each other); they are only ever
// called from the single root driver between searches, never from a
// search worker.
type Table struct {
	log *logging.Logger

	buckets     []entry // flat array, bucketSize consecutive slots per logical bucket
	bucketSize  int
	numBuckets  uint64
	bucketMask  uint64
	generation  uint8
	entryCount  int64

	Stats Stats
}

// Stats holds usage counters, incremented with atomic.AddInt64 from
// Probe/Store so every split-point worker sharing one Table can bump
// them concurrently without a data race - String reads them the same
// way, with atomic.LoadInt64.
type Stats struct {
	Puts       int64
	Overwrites int64
	Probes     int64
	Hits       int64
	Misses     int64
}

// NewTable creates a Table sized to the nearest power-of-two entry count
// fitting within sizeInMByte, bucketSize entries per bucket.
func NewTable(sizeInMByte int, bucketSize int) *Table {
	t := &Table{log: myLogging.GetLog(config.LogLevel), bucketSize: bucketSize}
	t.Resize(sizeInMByte)
	return t
}

// Resize clears the table and reallocates it to fit within sizeInMByte.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if t.bucketSize < 1 {
		t.bucketSize = BucketSize
	}

	const entrySize = 16 // bytes, two uint64 words
	totalBytes := uint64(sizeInMByte) * 1024 * 1024
	maxEntries := totalBytes / entrySize
	numBuckets := uint64(0)
	if n := maxEntries / uint64(t.bucketSize); n >= 1 {
		numBuckets = uint64(1) << (bits.Len64(n) - 1) // largest power of two <= n
	}

	t.numBuckets = numBuckets
	t.bucketMask = 0
	if numBuckets > 0 {
		t.bucketMask = numBuckets - 1
	}
	t.buckets = make([]entry, numBuckets*uint64(t.bucketSize))
	t.entryCount = 0
	t.Stats = Stats{}

	t.log.Info(out.Sprintf("TT size %d MB, %d buckets x %d entries (%d total, %d bytes each)",
		sizeInMByte, t.numBuckets, t.bucketSize, len(t.buckets), entrySize))
}

// Clear empties the table without resizing it: every entry is wiped and
// the entry count and Stats are reset to zero, while the generation
// counter is left as it is. Clear is for tests and for a hard reset
// between unrelated games.
func (t *Table) Clear() {
	t.buckets = make([]entry, len(t.buckets))
	t.entryCount = 0
	t.Stats = Stats{}
}

// NewSearch advances the generation counter, marking all entries from
// prior searches as lower priority for replacement without touching the
// table's contents - still-relevant positions (transpositions reachable
// again from the new root) stay cached.
func (t *Table) NewSearch() {
	t.generation++
}

func (t *Table) bucketOf(key uint64) []entry {
	if t.numBuckets == 0 {
		return nil
	}
	start := (key & t.bucketMask) * uint64(t.bucketSize)
	return t.buckets[start : start+uint64(t.bucketSize)]
}

// Probe looks up key and returns its entry and true on a hit.
func (t *Table) Probe(key uint64) (Entry, bool) {
	atomic.AddInt64(&t.Stats.Probes, 1)
	bucket := t.bucketOf(key)
	for i := range bucket {
		if e, ok := bucket[i].load(key); ok {
			atomic.AddInt64(&t.Stats.Hits, 1)
			return e, true
		}
	}
	atomic.AddInt64(&t.Stats.Misses, 1)
	return Entry{}, false
}

// Store writes value/depth/bound/move for key, replacing whichever slot
// in key's bucket already holds key, or failing that the slot with the
// lowest depth from an older generation, or failing that the shallowest
// slot overall.
func (t *Table) Store(key uint64, value bitboard.ScaledScore, depth uint8, bound Bound, move bitboard.Square) {
	bucket := t.bucketOf(key)
	if bucket == nil {
		return
	}
	atomic.AddInt64(&t.Stats.Puts, 1)

	victim := -1
	victimScore := math.MaxInt32
	for i := range bucket {
		if bucket[i].isEmpty() {
			victim = i
			break
		}
		if e, ok := bucket[i].load(key); ok {
			// same position: only overwrite with at-least-as-deep info.
			if int(depth) < int(e.Depth) && e.Gen == t.generation {
				return
			}
			victim = i
			victimScore = -1
			break
		}
		e := unpackData(bucket[i].data)
		score := int(e.Depth)
		if e.Gen != t.generation {
			score -= 64 // heavily prefer replacing stale-generation entries
		}
		if score < victimScore {
			victimScore = score
			victim = i
		}
	}
	if victim < 0 {
		return
	}
	if bucket[victim].isEmpty() {
		atomic.AddInt64(&t.entryCount, 1)
	} else if victimScore >= 0 {
		atomic.AddInt64(&t.Stats.Overwrites, 1)
	}
	bucket[victim].store(key, packData(value, depth, bound, t.generation, move))
}

// Len returns the number of non-empty entries stored in the table.
func (t *Table) Len() int64 {
	return atomic.LoadInt64(&t.entryCount)
}

// Hashfull returns how full the table is, in permille, sampling the first
// 1000 entries rather than scanning the whole table.
func (t *Table) Hashfull() int {
	if len(t.buckets) == 0 {
		return 0
	}
	sample := len(t.buckets)
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if !t.buckets[i].isEmpty() {
			used++
		}
	}
	return (used * 1000) / sample
}

// String reports the table's size and hit-rate statistics.
func (t *Table) String() string {
	puts := atomic.LoadInt64(&t.Stats.Puts)
	overwrites := atomic.LoadInt64(&t.Stats.Overwrites)
	probes := atomic.LoadInt64(&t.Stats.Probes)
	hits := atomic.LoadInt64(&t.Stats.Hits)
	misses := atomic.LoadInt64(&t.Stats.Misses)
	return out.Sprintf("TT: %d buckets x %d entries, %d%% full, puts %d overwrites %d probes %d hits %d (%d%%) misses %d",
		t.numBuckets, t.bucketSize, t.Hashfull()/10,
		puts, overwrites, probes, hits, (hits*100)/(1+probes), misses)
}

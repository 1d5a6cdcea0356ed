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

package transposition

import (
	"sync/atomic"

	"github.com/fkopp/reversicore/internal/bitboard"
)

// Bound says what an entry's stored Value actually means relative to the
// search window it was produced in.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // fail-high: true value >= Value
	BoundUpper // fail-low: true value <= Value
)

const noMove = 0xFF

// entry is one slot's raw lock-free storage: two machine words updated
// with plain atomic stores, no mutex. keyXorData always holds
// (key ^ data); a reader who loads data then keyXorData and finds
// data^keyXorData != the key they were probing for knows a concurrent
// writer tore the entry mid-update (or it simply holds a different
// position) and must treat the read as a miss. This is the classic
// lockless-hashing trick: it trades a rare false miss under contention
// for never blocking a search thread on a mutex.
type entry struct {
	keyXorData uint64
	data       uint64
}

// Data layout of the data word, least significant bit first:
//
//	bits  0..31  value   (int32, ScaledScore)
//	bits 32..39  depth   (uint8)
//	bits 40..41  bound   (2 bits)
//	bits 42..49  gen     (uint8, search generation)
//	bits 50..57  move    (uint8, bitboard.Square or noMove)
const (
	valueShift = 0
	depthShift = 32
	boundShift = 40
	genShift   = 42
	moveShift  = 50
)

func packData(value bitboard.ScaledScore, depth uint8, bound Bound, gen uint8, move bitboard.Square) uint64 {
	m := uint64(noMove)
	if move != bitboard.SqNone {
		m = uint64(move)
	}
	return uint64(uint32(value))<<valueShift |
		uint64(depth)<<depthShift |
		uint64(bound&0b11)<<boundShift |
		uint64(gen)<<genShift |
		m<<moveShift
}

// Entry is the decoded, race-free snapshot returned by Probe.
type Entry struct {
	Value bitboard.ScaledScore
	Depth uint8
	Bound Bound
	Gen   uint8
	Move  bitboard.Square
}

func unpackData(data uint64) Entry {
	move := bitboard.Square((data >> moveShift) & 0xFF)
	if move == noMove {
		move = bitboard.SqNone
	}
	return Entry{
		Value: bitboard.ScaledScore(int32(uint32(data >> valueShift))),
		Depth: uint8(data >> depthShift),
		Bound: Bound((data >> boundShift) & 0b11),
		Gen:   uint8(data >> genShift),
		Move:  move,
	}
}

// load atomically reads the slot and reports whether it matched key, by
// the lockless-hashing check described on entry.
func (e *entry) load(key uint64) (Entry, bool) {
	data := atomic.LoadUint64(&e.data)
	kx := atomic.LoadUint64(&e.keyXorData)
	if kx^data != key {
		return Entry{}, false
	}
	return unpackData(data), true
}

// store atomically writes a new (key, data) pair. Writers never read
// before writing, so two concurrent stores to the same slot can only ever
// race each other, never corrupt a third reader's view beyond a reported
// miss.
func (e *entry) store(key uint64, data uint64) {
	atomic.StoreUint64(&e.data, data)
	atomic.StoreUint64(&e.keyXorData, key^data)
}

func (e *entry) isEmpty() bool {
	return atomic.LoadUint64(&e.data) == 0 && atomic.LoadUint64(&e.keyXorData) == 0
}

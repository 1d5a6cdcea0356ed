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

package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopHas(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(SqD4)
	assert.True(t, b.Has(SqD4))
	assert.False(t, b.Has(SqD5))
	b = b.PopSquare(SqD4)
	assert.False(t, b.Has(SqD4))
}

func TestLsbAndPopLsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	b := SqC3.Bb() | SqF6.Bb()
	assert.Equal(t, SqC3, b.Lsb())
	first := b.PopLsb()
	assert.Equal(t, SqC3, first)
	second := b.PopLsb()
	assert.Equal(t, SqF6, second)
	assert.Equal(t, BbZero, b)
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 2, (SqA1.Bb() | SqH8.Bb()).PopCount())
}

func TestShiftOneClipsAtEdges(t *testing.T) {
	assert.Equal(t, BbZero, ShiftOne(SqH4.Bb(), East), "East off the H file must vanish, not wrap to file A")
	assert.Equal(t, BbZero, ShiftOne(SqA4.Bb(), West), "West off the A file must vanish, not wrap to file H")
	assert.Equal(t, BbZero, ShiftOne(SqD8.Bb(), North), "North off rank 8 must vanish")
	assert.Equal(t, BbZero, ShiftOne(SqD1.Bb(), South), "South off rank 1 must vanish")
	assert.Equal(t, SqE5.Bb(), ShiftOne(SqD4.Bb(), Northeast))
}

func TestSquareOfAndAccessors(t *testing.T) {
	sq := SquareOf(FileD, Rank4)
	assert.Equal(t, SqD4, sq)
	assert.Equal(t, FileD, sq.FileOf())
	assert.Equal(t, Rank4, sq.RankOf())
	assert.Equal(t, "d4", sq.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestParseSquareRoundTrips(t *testing.T) {
	for s := SqA1; s < SqLength; s++ {
		sq, err := ParseSquare(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, sq)
	}
	sq, err := ParseSquare("A2")
	require.NoError(t, err)
	assert.Equal(t, SqA2, sq)

	_, err = ParseSquare("i9")
	assert.Error(t, err)
	_, err = ParseSquare("a")
	assert.Error(t, err)
}

func TestScaledScoreConversions(t *testing.T) {
	assert.Equal(t, ScaledScore(38*DiscScale), FromDiscs(38))
	assert.Equal(t, 38, FromDiscs(38).ToDiscs())
	assert.Equal(t, ScaleMin+1, (ScaleMin - 100).Clamp())
	assert.Equal(t, ScaleMax-1, (ScaleMax + 100).Clamp())
}

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "White", White.String())
}

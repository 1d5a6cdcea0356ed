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

package pattern

import "github.com/fkopp/reversicore/internal/board"

// Vector holds the 24 base-3 feature indices for one color's view of one
// position: element k is in [0, Patterns[k].Span) and encodes every square
// of Patterns[k] as 0 (this vector's own color), 1 (the other color) or 2
// (empty), least significant square first.
type Vector [NumPatterns]int32

// ComputeFull scans b and returns the full (player, opponent) feature
// vectors from scratch. Used to seed the root of a search; every ply after
// that is maintained incrementally via Stack.Push/PushPass.
func ComputeFull(b board.Board) (player, opponent Vector) {
	for k, p := range Patterns {
		var pv, ov int32
		for i, sq := range p.Squares {
			place := p.PlaceValue[i]
			switch {
			case b.Player&sq.Bb() != 0:
				pv += 0 * place
				ov += 1 * place
			case b.Opponent&sq.Bb() != 0:
				pv += 1 * place
				ov += 0 * place
			default:
				pv += 2 * place
				ov += 2 * place
			}
		}
		player[k] = pv
		opponent[k] = ov
	}
	return player, opponent
}

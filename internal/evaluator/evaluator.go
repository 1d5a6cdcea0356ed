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
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	myLogging "github.com/fkopp/reversicore/internal/logging"
	"github.com/fkopp/reversicore/internal/pattern"
)

var out = message.NewPrinter(language.German)

// Evaluator picks between a large and a small pattern network depending on
// how many empty squares remain, and also offers a fast, non-network
// evaluation for move ordering where a full network call would be too
// expensive relative to the number of times it is called. The large/small
// split and config.Settings.Eval.SmallNetworkEmptiesThreshold mirror
// original_source/crates/reversi-core/src/eval/network_small.rs's
// NetworkSmall, switched to at its own ENDGAME_START_PLY - a second,
// cheaper network tuned for the tighter tactics of the last few dozen
// moves rather than one network spanning the whole game.
type Evaluator struct {
	log *logging.Logger

	large *Network
	small *Network
}

// NewEvaluator loads both networks from the paths in config.Settings.Eval.
// A missing or unreadable weight file is not fatal: the evaluator falls
// back to an all-zero network and logs a warning, so a freshly checked
// out tree without the (large, separately distributed) weight files still
// runs - just blindly, with only the fast evaluator's terms guiding it.
func NewEvaluator() *Evaluator {
	e := &Evaluator{log: myLogging.GetLog(config.LogLevel)}

	if n, err := LoadNetwork(config.Settings.Eval.LargeNetworkWeights); err != nil {
		e.log.Warning(out.Sprintf("large network not loaded, using zero weights (%v)", err))
		e.large = NewZeroNetwork()
	} else {
		e.large = n
	}

	if n, err := LoadNetwork(config.Settings.Eval.SmallNetworkWeights); err != nil {
		e.log.Warning(out.Sprintf("small network not loaded, using zero weights (%v)", err))
		e.small = NewZeroNetwork()
	} else {
		e.small = n
	}

	return e
}

// Evaluate returns a ScaledScore for the side to move at ply, reading
// stack's feature vectors and b's empty-square count to choose which
// network to use.
func (e *Evaluator) Evaluate(b board.Board, stack *pattern.Stack, ply int) bitboard.ScaledScore {
	net := e.large
	if config.Settings.Eval.SmallNetworkEmptiesThreshold > 0 && b.EmptyCount() <= config.Settings.Eval.SmallNetworkEmptiesThreshold {
		net = e.small
	}
	return bitboard.ScaledScore(net.Evaluate(stack, ply)).Clamp()
}

// FastEval is a cheap, network-free evaluation used for move ordering: it
// reads only mobility, potential mobility and corner-anchored stability
// directly off the bitboards, each weighted by a configured term weight.
// It does not touch the pattern stack at all, so it is usable even before
// a Stack has been built for a node.
func (e *Evaluator) FastEval(b board.Board) bitboard.ScaledScore {
	mobility := b.LegalMoves().PopCount()
	oppMobility := b.Pass().LegalMoves().PopCount()
	potential := (b.PotentialMoves() &^ b.LegalMoves()).PopCount() -
		(b.Pass().PotentialMoves() &^ b.Pass().LegalMoves()).PopCount()

	discs := b.Player | b.Opponent
	stable := b.StableDiscs(discs)
	ourStable := (stable & b.Player).PopCount()
	theirStable := (stable & b.Opponent).PopCount()

	score := int64(config.Settings.Eval.MobilityWeight)*int64(mobility-oppMobility) +
		int64(config.Settings.Eval.PotentialMobilityWeight)*int64(potential) +
		int64(config.Settings.Eval.CornerStabilityWeight)*int64(ourStable-theirStable)

	return bitboard.ScaledScore(score * bitboard.DiscScale / 8).Clamp()
}

// Report renders a human-readable breakdown of both evaluations for b at
// the root of stack (ply 0). Used in debugging.
func (e *Evaluator) Report(b board.Board, stack *pattern.Stack) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(b.String())
	report.WriteString(out.Sprintf("Network eval (side to move): %d\n", e.Evaluate(b, stack, 0)))
	report.WriteString(out.Sprintf("Fast eval     (side to move): %d\n", e.FastEval(b)))
	return report.String()
}

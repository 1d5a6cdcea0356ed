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

// Package timecontrol turns a clock (however the outer protocol expresses
// it - a fixed move time, a tournament clock with moves-to-go, a Fischer
// increment clock, or a Japanese byoyomi clock) into a single duration to
// think for the current move, and a timer goroutine that stops the search
// once that duration elapses. Ported in spirit from the teacher's
// search.Search.setupTimeControl/addExtraTime/startTimer, generalized from
// chess's two-clock (White/Black) UCI limits to one clock for the side to
// move, and from chess's heuristic GamePhaseFactor to Othello's exact
// empties-remaining ply count.
package timecontrol

import (
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/config"
	myLogging "github.com/fkopp/reversicore/internal/logging"
	"github.com/fkopp/reversicore/internal/util"
)

var out = message.NewPrinter(language.German)

// Mode selects how Limits is interpreted.
type Mode int

const (
	// Infinite means "search until told to stop" - no timer is started.
	Infinite Mode = iota
	// MoveTime means "think for exactly Limits.MoveTime, minus a safety
	// margin for our own overhead".
	MoveTime
	// MovesToGo is a classic tournament clock: TimeLeft must cover
	// Limits.MovesToGo more moves (0 means estimate from the position).
	MovesToGo
	// Fischer is TimeLeft plus Increment credited after every move; the
	// allocation estimates moves left the same way MovesToGo does when
	// Limits.MovesToGo is left at 0.
	Fischer
	// Byoyomi is a Japanese clock: TimeLeft is spent down move by move
	// with no increment, and once it reaches zero every move gets a
	// fixed ByoyomiTime period instead.
	Byoyomi
)

// Limits describes one side's clock state at the moment a search starts,
// entirely in terms of the side to move - unlike the teacher's
// search.Limits, which (being UCI) carries both White's and Black's time
// because either could be asked to think next.
type Limits struct {
	Mode Mode

	MoveTime time.Duration // Mode == MoveTime

	TimeLeft  time.Duration // Mode == MovesToGo, Fischer, Byoyomi
	Increment time.Duration // Mode == Fischer
	MovesToGo int           // Mode == MovesToGo; 0 = estimate

	ByoyomiTime time.Duration // Mode == Byoyomi, once TimeLeft is exhausted
}

const (
	// moveTimeSafetyMargin is subtracted from a fixed move time to leave
	// room for our own call overhead and the final move application -
	// the teacher's setupTimeControl reserves exactly this much.
	moveTimeSafetyMargin = 20 * time.Millisecond

	// Below this per-move allocation the teacher trims more aggressively
	// (20% instead of 10%), since overhead is a larger fraction of a
	// very short budget.
	shortAllocationThreshold = 100 * time.Millisecond
	shortAllocationFactor    = 0.8
	normalAllocationFactor   = 0.9

	// timerPollInterval is the busy-wait granularity of the timer
	// goroutine, matching the teacher's startTimer exactly - coarse
	// enough not to burn CPU, fine enough that a stop is noticed well
	// within a human-perceptible delay.
	timerPollInterval = 5 * time.Millisecond

	// scoreDropThreshold and minStabilityCheckDepth gate
	// ExtendOnInstability's two triggers: the root score falling by more
	// than this many discs since the previous iteration, or the root's
	// best move changing at or beyond this depth (too shallow an
	// iteration changes its mind too often to mean anything).
	scoreDropThreshold     = 3.0
	minStabilityCheckDepth = 10

	// extensionRatio is the total fraction of the original budget
	// available across all of config.Settings.Search.MaxExtensionSteps
	// extension steps, granted in equal increments.
	extensionRatio = 0.5
)

// Manager turns one Limits into a think-time budget and, unless Mode is
// Infinite, a goroutine that calls onExpire once that budget (plus any
// AddExtraTime adjustment) elapses. The zero value is not usable; build
// one with NewManager.
type Manager struct {
	log *logging.Logger

	mu             sync.Mutex
	timeLimit      time.Duration
	extraTime      time.Duration
	prevScore      *float64
	extensionSteps int

	expired *util.Bool
	stopped *util.Bool
}

// NewManager builds an idle Manager.
func NewManager() *Manager {
	return &Manager{
		log:     myLogging.GetSearchLog(config.SearchLogLevel),
		expired: util.NewBool(false),
		stopped: util.NewBool(false),
	}
}

// Allocate computes the think-time budget for limits given emptyCount
// remaining empty squares (Othello's exact substitute for the teacher's
// GamePhaseFactor-based move estimate: every non-pass move fills exactly
// one empty square, so "moves left" is just emptyCount, not a heuristic).
func Allocate(limits Limits, emptyCount int) time.Duration {
	switch limits.Mode {
	case MoveTime:
		d := limits.MoveTime - moveTimeSafetyMargin
		if d < 0 {
			return limits.MoveTime
		}
		return d

	case Byoyomi:
		if limits.TimeLeft > 0 {
			return limits.TimeLeft
		}
		d := limits.ByoyomiTime - moveTimeSafetyMargin
		if d < 0 {
			return limits.ByoyomiTime
		}
		return d

	case MovesToGo, Fischer:
		movesLeft := int64(limits.MovesToGo)
		if movesLeft == 0 {
			movesLeft = int64(emptyCount)
		}
		if movesLeft < 1 {
			movesLeft = 1
		}
		timeLeft := limits.TimeLeft + time.Duration(movesLeft)*limits.Increment
		perMove := time.Duration(timeLeft.Nanoseconds() / movesLeft)
		if perMove < shortAllocationThreshold {
			return time.Duration(float64(perMove.Nanoseconds()) * shortAllocationFactor)
		}
		return time.Duration(float64(perMove.Nanoseconds()) * normalAllocationFactor)

	default: // Infinite
		return 0
	}
}

// Start records limits' allocation and, unless Mode is Infinite, launches
// the timer goroutine that calls onExpire when the budget (plus any later
// AddExtraTime) elapses without Stop being called first. onExpire may be
// nil if the caller only wants to poll Expired.
func (m *Manager) Start(limits Limits, emptyCount int, onExpire func()) {
	m.mu.Lock()
	m.timeLimit = Allocate(limits, emptyCount)
	m.extraTime = 0
	m.prevScore = nil
	m.extensionSteps = 0
	limit := m.timeLimit
	m.mu.Unlock()

	m.expired.Store(false)
	m.stopped.Store(false)

	if limits.Mode == Infinite || limit <= 0 {
		return
	}
	go m.runTimer(onExpire)
}

func (m *Manager) runTimer(onExpire func()) {
	start := time.Now()
	m.log.Debug(out.Sprintf("timer started with limit %s", m.budget()))
	for !m.stopped.Load() && time.Since(start) < m.budget() {
		time.Sleep(timerPollInterval)
	}
	if m.stopped.Load() {
		m.log.Debug(out.Sprintf("timer stopped early after %s (budget %s)", time.Since(start), m.budget()))
		return
	}
	m.expired.Store(true)
	m.log.Debug(out.Sprintf("timer expired after %s (budget %s)", time.Since(start), m.budget()))
	if onExpire != nil {
		onExpire()
	}
}

func (m *Manager) budget() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timeLimit + m.extraTime
}

// Stop ends the timer goroutine (if any) without calling onExpire -
// for when the search already finished or was cancelled for some other
// reason, and a stale timer firing afterward would be meaningless.
func (m *Manager) Stop() {
	m.stopped.Store(true)
}

// Expired reports whether the timer fired (as opposed to Stop having
// ended it early, or no timer having been started at all).
func (m *Manager) Expired() bool {
	return m.expired.Load()
}

// AddExtraTime extends or shortens the current budget by a fraction of
// the original time allocation: f == 1.0 is a no-op, f == 1.1 adds 10% of
// that allocation, f == 0.9 takes 10% of it away; repeated calls add up. Mirrors the teacher's addExtraTime,
// typically called when the root's best move just changed and a little
// more time seems warranted, or when one move is a forced recapture and
// less time is needed.
func (m *Manager) AddExtraTime(f float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := time.Duration(float64(m.timeLimit.Nanoseconds()) * (f - 1.0))
	m.extraTime += d
	m.log.Debug(out.Sprintf("time added/reduced by %s to %s", d, m.timeLimit+m.extraTime))
}

// ExtendOnInstability grants one more step of extra time, up to
// maxExtensionSteps total, when the root search looks unstable at the
// iteration that just completed: scoreDiscs (the root value, in discs,
// from the side to move's perspective) dropped by more than
// scoreDropThreshold since the previous call, or pvChanged is true and
// depth has reached minStabilityCheckDepth. Returns whether an
// extension was actually granted - false once maxExtensionSteps is
// exhausted, or when neither trigger fired.
//
// A caller normally invokes this once per completed iteration from its
// Progress callback, feeding back the same depth and score Run just
// reported.
func (m *Manager) ExtendOnInstability(scoreDiscs float64, pvChanged bool, depth int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxSteps := config.Settings.Search.MaxExtensionSteps

	prev := m.prevScore
	m.prevScore = &scoreDiscs

	if m.extensionSteps >= maxSteps {
		return false
	}

	extend := prev != nil && scoreDiscs < *prev-scoreDropThreshold
	if !extend && pvChanged && depth >= minStabilityCheckDepth {
		extend = true
	}
	if !extend {
		return false
	}

	step := time.Duration(float64(m.timeLimit) * extensionRatio / float64(maxSteps))
	if step <= 0 {
		return false
	}
	m.extraTime += step
	m.extensionSteps++
	m.log.Debug(out.Sprintf("time extended (step %d/%d) by %s to %s",
		m.extensionSteps, maxSteps, step, m.timeLimit+m.extraTime))
	return true
}

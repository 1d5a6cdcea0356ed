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

// Package logging is a thin helper around "github.com/op/go-logging" that
// hands out preconfigured, per-subsystem Logger instances so the rest of
// the engine never has to set up a backend or formatter itself.
package logging

import (
	"log"
	"os"

	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

var (
	standardLog *golog.Logger
	searchLog   *golog.Logger
	engineLog   *golog.Logger
	testLog     *golog.Logger

	standardFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = golog.MustGetLogger("standard")
	searchLog = golog.MustGetLogger("search")
	engineLog = golog.MustGetLogger("engine")
	testLog = golog.MustGetLogger("test")
}

// GetLog returns the standard Logger, preconfigured with an os.Stdout
// backend at the given level.
func GetLog(level int) *golog.Logger {
	return configure(standardLog, os.Stdout, standardFormat, level)
}

// GetSearchLog returns the Logger used by internal/search and
// internal/parallel for per-node and per-iteration tracing.
func GetSearchLog(level int) *golog.Logger {
	return configure(searchLog, os.Stdout, standardFormat, level)
}

// GetEngineLog returns the Logger used by internal/engine for lifecycle
// events: init, run start/stop, abort, config load.
func GetEngineLog(level int) *golog.Logger {
	return configure(engineLog, os.Stdout, standardFormat, level)
}

// GetTestLog returns the Logger used by _test.go files across the module.
func GetTestLog(level int) *golog.Logger {
	return configure(testLog, os.Stdout, standardFormat, level)
}

func configure(logger *golog.Logger, w *os.File, format golog.Formatter, level int) *golog.Logger {
	backend := golog.NewLogBackend(w, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, format)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.Level(level), "")
	logger.SetBackend(leveled)
	return logger
}

// MemStat formats a short line of runtime memory statistics using the
// German-locale printer, matching the engine's progress-log number format
// (thousands separators) elsewhere in the codebase.
func MemStat(alloc, totalAlloc, heapObjects uint64) string {
	return out.Sprintf("Alloc: %d TotalAlloc: %d HeapObjects: %d", alloc, totalAlloc, heapObjects)
}

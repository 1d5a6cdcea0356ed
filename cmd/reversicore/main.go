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

// Command reversicore is a thin example driver over internal/engine: it
// parses a board (or defaults to the standard opening), runs one search
// or fixed-depth solve, and prints the result. It is deliberately not a
// UCI or GUI implementation - see internal/engine's doc comment - just
// the minimum main package needed to exercise the library from a shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/reversicore/internal/bitboard"
	"github.com/fkopp/reversicore/internal/board"
	"github.com/fkopp/reversicore/internal/config"
	"github.com/fkopp/reversicore/internal/engine"
	"github.com/fkopp/reversicore/internal/logging"
	"github.com/fkopp/reversicore/internal/search"
	"github.com/fkopp/reversicore/internal/testsuite"
	"github.com/fkopp/reversicore/internal/timecontrol"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")

	boardString := flag.String("board", "", "64-character board string (X=side to move, O=opponent, -=empty)\ndefaults to the standard Othello opening")
	mover := flag.String("mover", "black", "which color -board's 'X' represents (black|white)")
	depth := flag.Int("depth", 0, "fixed search depth in plies; 0 means use -movetime instead")
	movetime := flag.Int("movetime", 1000, "think time in milliseconds, used when -depth is 0")
	threads := flag.Int("threads", 0, "search thread count (split-point pool); 0 uses config.toml's default")
	ttsize := flag.Int("ttsize", 0, "transposition table size in MB; 0 uses config.toml's default")

	suite := flag.Bool("suite", false, "run the built-in FFO-40/FFO-41 endgame benchmark and print a report")
	profileFlag := flag.Bool("profile", false, "wrap the run in a CPU profile written to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[strings.ToUpper(*logLvl)]; found {
		config.LogLevel = lvl
	}
	logging.GetLog(config.LogLevel)

	cfg := engine.DefaultConfig()
	if *threads > 0 {
		cfg.Threads = *threads
	}
	if *ttsize > 0 {
		cfg.TTSizeMB = *ttsize
	}

	e := engine.New(cfg)
	if err := e.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "engine init failed:", err)
		os.Exit(1)
	}

	if *suite {
		results := testsuite.RunSuite(e, testsuite.Suite)
		out.Print(testsuite.Report(results))
		return
	}

	p := bitboard.Black
	if *mover == "white" {
		p = bitboard.White
	}

	var b board.Board
	if *boardString != "" {
		parsed, err := board.ParseBoardString(*boardString, p)
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid -board:", err)
			os.Exit(1)
		}
		b = parsed
	} else {
		b = board.StartBoard()
	}

	opts := engine.RunOptions{
		Board: b,
		Progress: func(r search.Result) {
			out.Printf("depth %2d  score %s  best %s  nodes %d\n", r.Depth, r.Value, r.Best, r.Nodes)
		},
	}
	if *depth > 0 {
		opts.Limits.Depth = *depth
		opts.Clock.Mode = timecontrol.Infinite
	} else {
		opts.Clock.Mode = timecontrol.MoveTime
		opts.Clock.MoveTime = time.Duration(*movetime) * time.Millisecond
	}

	result, err := e.Run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "search failed:", err)
		os.Exit(1)
	}
	out.Printf("\nbest move : %s\n", result.Best)
	out.Printf("score     : %s\n", result.Value)
	out.Printf("depth     : %d\n", result.Depth)
	out.Printf("nodes     : %d\n", result.Nodes)
	out.Printf("elapsed   : %s\n", result.Elapsed)
}

func printVersionInfo() {
	out.Println("reversicore")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

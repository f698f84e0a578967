// boardsync interprets gnuchess output: it parses move notation, finds the
// piece a move came from and keeps a piece registry in step with the boards
// the engine prints.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/refengine"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("boardsync version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch mode, rest := args[0], args[1:]; mode {
	case "parse":
		err = runParse(cfg, rest)
	case "sync":
		err = runSync(cfg, os.Stdin, *sideToMove)
	case "replay":
		err = runReplay(cfg, rest, newEngine)
	case "play":
		err = runPlay(cfg, newEngine())
	case "serve":
		err = runServe(cfg, newEngine)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode %q\n", mode)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEngine returns the engine every mode talks to.
func newEngine() session.Engine {
	return refengine.New()
}

// parseSide reads "white" or "black".
func parseSide(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown side %q", s)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, `boardsync version %s

Usage: boardsync [options] <mode> [args]

Modes:
  parse <move>...     Describe moves; sides alternate starting with White
  sync                Read a board dump on stdin and show the registry
  replay <file>...    Replay move lists (text or JSON {"moves": [...]})
  play                Play interactively against the engine
  serve               Serve the HTTP JSON API

Options:
`, programVersion)
	flag.PrintDefaults()
}

// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the board after each response")
	showRoster = flag.Bool("roster", false, "List every tracked piece and its slot")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=running commentary")
	logFile   = flag.String("l", "", "Write log output to this file (default: stderr)")

	// Play options
	easyLevel    = flag.Bool("easy", false, "Ask the engine for easy play")
	playBlack    = flag.Bool("black", false, "Play Black")
	againstRobot = flag.Bool("robot", false, "Let the engine answer every move")
	sideToMove   = flag.String("tomove", "white", "Side to move for sync mode: white or black")

	// Replay
	workers         = flag.Int("workers", 0, "Games replayed in parallel (0 = one per CPU)")
	duplicates      = flag.Bool("D", false, "Report games ending in a position an earlier game reached")
	exactDuplicates = flag.Bool("exact", false, "With -D, also require the same number of moves")

	// Server
	listenAddr  = flag.String("addr", ":8080", "Listen address for serve mode")
	maxSessions = flag.Int("maxsessions", 64, "Maximum live sessions in serve mode")

	// Move lists
	saveFile    = flag.String("save", "", "Save the move list to this JSON file when play ends")
	restoreFile = flag.String("restore", "", "Start play from the move list in this file")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.Workers = *workers
	cfg.Duplicates = *duplicates
	cfg.ExactDuplicates = *exactDuplicates
	cfg.SaveFile = *saveFile
	cfg.RestoreFile = *restoreFile

	applyOutputFlags(cfg)
	applyPlayFlags(cfg)
	applyServerFlags(cfg)
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowRoster = *showRoster
}

// applyPlayFlags configures the game against the engine.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.Human = chess.White
	if *playBlack {
		cfg.Play.Human = chess.Black
	}
	cfg.Play.AgainstRobot = *againstRobot
	cfg.Play.Easy = *easyLevel
}

// applyServerFlags configures the HTTP API.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *listenAddr
	cfg.Server.MaxSessions = *maxSessions
}

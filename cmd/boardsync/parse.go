package main

import (
	"fmt"

	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/output"
	"github.com/lgbarn/gnuchess-board-go/internal/parser"
)

// runParse describes each move. Moves are numbered as plies of one game, so
// the side alternates.
func runParse(cfg *config.Config, moves []string) error {
	if len(moves) == 0 {
		return fmt.Errorf("parse needs at least one move")
	}

	var results []*output.JSONMove
	failed := 0
	for ply, text := range moves {
		m, err := parser.ParseForHistory(text, ply)
		if err != nil {
			failed++
			fmt.Fprintf(cfg.LogFile, "%v\n", err)
			continue
		}
		if cfg.Output.JSONFormat {
			results = append(results, output.MoveToJSON(m))
			continue
		}
		fmt.Fprintln(cfg.OutputFile, output.FormatMove(m))
	}

	if cfg.Output.JSONFormat {
		if err := writeJSON(cfg.OutputFile, results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d moves malformed", failed, len(moves))
	}
	return nil
}

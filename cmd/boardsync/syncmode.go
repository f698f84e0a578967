package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/engine"
	"github.com/lgbarn/gnuchess-board-go/internal/output"
)

// runSync loads one engine board dump into a fresh registry and prints it.
func runSync(cfg *config.Config, in io.Reader, side string) error {
	colour, err := parseSide(side)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading board dump: %w", err)
	}

	reg := chess.NewRegistry()
	if _, err := engine.SyncText(reg, string(data), colour); err != nil {
		return err
	}
	cfg.Logf(config.Commentary, "synced %d white and %d black pieces\n",
		len(reg.OnBoard(chess.White)), len(reg.OnBoard(chess.Black)))

	if cfg.Output.JSONFormat {
		return writeJSON(cfg.OutputFile, struct {
			ToMove string             `json:"toMove"`
			Board  []string           `json:"board"`
			Roster []output.JSONPiece `json:"roster"`
		}{
			ToMove: side,
			Board:  output.BoardRows(reg),
			Roster: output.RosterToJSON(reg),
		})
	}

	fmt.Fprint(cfg.OutputFile, output.FormatBoard(reg))
	if cfg.Output.ShowRoster {
		fmt.Fprintf(cfg.OutputFile, "\n%s", output.FormatRoster(reg))
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"fmt"

	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/hashing"
	"github.com/lgbarn/gnuchess-board-go/internal/output"
	"github.com/lgbarn/gnuchess-board-go/internal/worker"
)

// runReplay replays every move list through its own session and writes the
// final report of each game.
func runReplay(cfg *config.Config, files []string, newEngine worker.EngineFactory) error {
	if len(files) == 0 {
		return fmt.Errorf("replay needs at least one move list")
	}

	items := make([]worker.WorkItem, 0, len(files))
	for i, path := range files {
		moves, err := loadMoveList(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		items = append(items, worker.WorkItem{Name: path, Moves: moves, Index: i})
	}

	pool := worker.NewPool(worker.Replay(cfg, newEngine), worker.WithWorkers(cfg.Workers))
	results := pool.RunAll(items)

	var writer output.ReportWriter = output.NewTextWriter(cfg.OutputFile, cfg)
	if cfg.Output.JSONFormat {
		writer = output.NewJSONWriter(cfg.OutputFile, cfg)
	}
	var detector *hashing.DuplicateDetector
	if cfg.Duplicates {
		detector = hashing.NewDuplicateDetector(cfg.ExactDuplicates)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			cfg.Logf(config.Summary, "%v\n", res.Err)
		} else if detector != nil {
			// Results arrive in input order, so the original is always the
			// earlier file.
			s := res.Session
			sig := hashing.Sign(res.Name, s.Registry(), s.ToMove(), len(s.Moves()))
			if original, dup := detector.CheckAndAdd(sig); dup {
				cfg.Logf(config.Summary, "%s: same final position as %s\n", res.Name, original)
			}
		}
		if last := res.Last(); last != nil {
			if err := writer.WriteReport(res.Session, last); err != nil {
				return err
			}
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	cfg.Logf(config.Summary, "%d games replayed, %d failed\n", len(results), failed)
	if detector != nil {
		cfg.Logf(config.Summary, "%d duplicate final positions\n", detector.DuplicateCount())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d games failed", failed, len(results))
	}
	return nil
}

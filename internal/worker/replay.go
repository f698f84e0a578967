package worker

import (
	"fmt"

	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
)

// Result is the outcome of replaying one game.
type Result struct {
	Name    string
	Index   int
	Session *session.Session
	Reports []*session.Report
	Err     error
}

// Last returns the final report, or nil when nothing was replayed.
func (r Result) Last() *session.Report {
	if len(r.Reports) == 0 {
		return nil
	}
	return r.Reports[len(r.Reports)-1]
}

// EngineFactory returns the engine a worker talks to. It is called once per
// item so engines need not be safe for concurrent use.
type EngineFactory func() session.Engine

// Replay builds a ProcessFunc that plays each item's moves one by one in a
// fresh session. Replay stops at the first rejected move or unreadable
// board.
func Replay(cfg *config.Config, newEngine EngineFactory) ProcessFunc {
	return func(item WorkItem) Result {
		res := Result{Name: item.Name, Index: item.Index, Session: session.New(cfg)}
		e := newEngine()

		res.Reports = append(res.Reports, res.Session.Do(e, session.Request{Kind: session.NewGame}))
		for ply, move := range item.Moves {
			r := res.Session.Do(e, session.Request{Kind: session.HumanMove, Move: move})
			res.Reports = append(res.Reports, r)
			if r.Status == session.StatusIllegal {
				res.Err = fmt.Errorf("%s: move %d (%s) rejected", item.Name, ply+1, move)
				break
			}
			if r.BoardErr != nil {
				res.Err = fmt.Errorf("%s: move %d (%s): %w", item.Name, ply+1, move, r.BoardErr)
				break
			}
		}
		cfg.Logf(config.Summary, "%s: %d moves replayed\n", item.Name, len(res.Session.Moves()))
		return res
	}
}

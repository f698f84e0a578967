package session

import "github.com/lgbarn/gnuchess-board-go/internal/config"

// Engine runs one request script to completion and returns its output.
type Engine interface {
	Run(script string) string
}

// Do sends req to the engine and interprets the answer.
func (s *Session) Do(e Engine, req Request) *Report {
	script := s.Script(req)
	s.cfg.Logf(config.Commentary, "session %s: script %q\n", s.ID, script)
	return s.Interpret(req, e.Run(script))
}

// Start begins a new game. The engine opens when the user plays Black
// against it.
func (s *Session) Start(e Engine) []*Report {
	reports := []*Report{s.Do(e, Request{Kind: NewGame})}
	if s.cfg.Play.AgainstRobot && s.cfg.Play.Human != s.ToMove() {
		reports = append(reports, s.Do(e, Request{Kind: RobotMove}))
	}
	return reports
}

// Play submits a user move and lets the engine reply when it is its turn.
func (s *Session) Play(e Engine, move string) []*Report {
	r := s.Do(e, Request{Kind: HumanMove, Move: move})
	reports := []*Report{r}
	if r.RobotNext {
		reports = append(reports, s.Do(e, Request{Kind: RobotMove}))
	}
	return reports
}

// TakeBack undoes the last move, or the last full move against the engine.
// ok is false when there is nothing to take back.
func (s *Session) TakeBack(e Engine) (r *Report, ok bool) {
	req, ok := s.UndoRequest()
	if !ok {
		return nil, false
	}
	return s.Do(e, req), true
}

// Load replaces the history with moves and redraws the board.
func (s *Session) Load(e Engine, moves []string) *Report {
	return s.Do(e, Request{Kind: Restore, Moves: moves})
}

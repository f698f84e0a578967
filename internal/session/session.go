// Package session drives one game against a gnuchess-style engine: it builds
// the script for each request and interprets what the engine prints,
// keeping the piece registry and the move history in step.
package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/config"
)

// GameHeader opens the engine's move listing.
const GameHeader = "White   Black"

// Session owns the registry and history of one game. It does no locking;
// callers serialise access.
type Session struct {
	ID string

	cfg     *config.Config
	reg     *chess.Registry
	history *chess.History
	game    string
}

// New creates a session in the starting position with a fresh id.
func New(cfg *config.Config) *Session {
	return &Session{
		ID:      uuid.NewString(),
		cfg:     cfg,
		reg:     chess.NewRegistry(),
		history: chess.NewHistory(),
	}
}

// Registry returns the live piece registry.
func (s *Session) Registry() *chess.Registry {
	return s.reg
}

// Moves returns a copy of the accepted moves.
func (s *Session) Moves() []string {
	return s.history.Moves()
}

// ToMove returns the side whose turn it is.
func (s *Session) ToMove() chess.Colour {
	return s.history.ToMove()
}

// GameText returns the last move listing the engine printed.
func (s *Session) GameText() string {
	return s.game
}

// Config returns the configuration the session was created with.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Script builds the engine input for req. Requests that change the history
// apply that change first: Undo drops one move, Remove drops two, NewGame
// clears it and Restore replaces it.
func (s *Session) Script(req Request) string {
	switch req.Kind {
	case Undo:
		s.history.Undo()
	case Remove:
		s.history.Remove()
	case NewGame:
		s.history.Clear()
		s.reg.SetupInitialPosition()
		s.game = ""
	case Restore:
		s.history.Restore(req.Moves)
	}

	var sb strings.Builder
	sb.WriteString("force manual\n")
	for _, m := range s.history.Moves() {
		sb.WriteString(m)
		sb.WriteByte('\n')
	}

	switch req.Kind {
	case HumanMove:
		sb.WriteString(req.Move)
		sb.WriteString("\nshow board\nquit\n")
	case RobotMove:
		sb.WriteString(s.level())
		sb.WriteString("go\nshow board\nquit\n")
	case Hint:
		// The hint is always asked at full strength.
		sb.WriteString("hard\nbook on\ngo\nquit\n")
	case ShowGame:
		sb.WriteString("show game\nquit\n")
	default:
		sb.WriteString("show board\nquit\n")
	}
	return sb.String()
}

func (s *Session) level() string {
	if s.cfg.Play.Easy {
		return "easy\nbook off\ndepth 1\n"
	}
	return "hard\nbook on\n"
}

// UndoRequest decides how far to take back. Against the robot a full move
// is removed so the user is on move again; a single move is undone only
// when the user plays Black and White is to move. ok is false when there is
// nothing to take back.
func (s *Session) UndoRequest() (req Request, ok bool) {
	n := s.history.Len()
	if s.cfg.Play.AgainstRobot {
		if n <= 1 {
			return Request{}, false
		}
		if n%2 == 0 && s.cfg.Play.Human == chess.Black {
			return Request{Kind: Undo}, true
		}
		return Request{Kind: Remove}, true
	}
	if n == 0 {
		return Request{}, false
	}
	return Request{Kind: Undo}, true
}

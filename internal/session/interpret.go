package session

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/engine"
	"github.com/lgbarn/gnuchess-board-go/internal/parser"
)

// Report describes how one engine response changed the session.
type Report struct {
	Request Request
	Status  Status
	ToMove  chess.Colour

	// Move is the move that was recorded, or the suggested move for a hint.
	Move   string
	Parsed *chess.ParsedMove
	Source chess.Square
	Dest   chess.Square

	GameText string

	// RobotNext is set when the engine should be asked to play next.
	RobotNext bool

	// MoveErr reports a move that could not be read or traced to a piece.
	// BoardErr reports a board that could not be synchronised; the registry
	// then keeps its previous state.
	MoveErr  error
	BoardErr error
}

// Message returns the status line shown to the user.
func (r *Report) Message() string {
	switch r.Status {
	case StatusCheckmate:
		return "Checkmate"
	case StatusCheck:
		return "Check"
	case StatusIllegal:
		return "Illegal move"
	case StatusHint:
		return r.Move
	case StatusGame:
		return "Game listing"
	}
	return fmt.Sprintf("It is %s's move.", r.ToMove)
}

// Interpret reads the engine output for req, records any move and
// synchronises the registry from the board the engine printed.
func (s *Session) Interpret(req Request, output string) *Report {
	r := &Report{Request: req, ToMove: s.history.ToMove()}

	if at := strings.Index(output, GameHeader); at >= 0 {
		text := output[at:]
		if end := strings.Index(text, "\n\n"); end >= 0 {
			text = text[:end]
		}
		s.game = text
		r.Status = StatusGame
		r.GameText = text
		return r
	}

	if req.Kind == Hint {
		r.Status = StatusHint
		s.readEcho(r, output)
		s.cfg.Logf(config.Commentary, "session %s: hint %s\n", s.ID, r.Move)
		return r
	}

	checkmate, check, illegal := false, false, false
	switch {
	case strings.Contains(output, "wins"), strings.Contains(output, "loses"):
		checkmate = true
		// A finished game also rejects further moves.
		if !strings.Contains(output, "Illegal move") {
			s.record(r, req, output)
		}
	case strings.Contains(output, "Illegal move"):
		illegal = true
		s.cfg.Logf(config.Summary, "session %s: illegal move %q\n", s.ID, req.Move)
	default:
		s.record(r, req, output)
		if req.Kind == RobotMove {
			check = strings.Contains(r.Move, "+")
			checkmate = strings.Contains(r.Move, "#") || strings.Contains(r.Move, "++")
		}
	}

	r.ToMove = s.history.ToMove()
	if _, err := engine.SyncText(s.reg, output, r.ToMove); err != nil {
		r.BoardErr = err
		s.cfg.Logf(config.Summary, "session %s: bad board output: %v\n", s.ID, err)
	}

	switch {
	case checkmate:
		r.Status = StatusCheckmate
	case check:
		r.Status = StatusCheck
	case illegal:
		r.Status = StatusIllegal
	default:
		r.Status = StatusTurn
	}

	r.RobotNext = s.cfg.Play.AgainstRobot && !checkmate && !illegal &&
		req.Kind != RobotMove && r.ToMove == s.cfg.Play.RobotSide()
	s.cfg.Logf(config.Commentary, "session %s: %s -> %s\n", s.ID, req.Kind, r.Message())
	return r
}

// record appends the move req produced to the history. Only human and robot
// moves change it.
func (s *Session) record(r *Report, req Request, output string) {
	switch req.Kind {
	case RobotMove:
		s.readEcho(r, output)
	case HumanMove:
		r.Move = req.Move
		s.trace(r)
	default:
		return
	}
	if r.Move != "" {
		s.history.Append(r.Move)
	}
}

// readEcho takes the engine's own move from output and traces it.
func (s *Session) readEcho(r *Report, output string) {
	move, err := parser.ExtractEcho(output, s.cfg.EchoMarker)
	if err != nil {
		r.MoveErr = err
		return
	}
	r.Move = move
	s.trace(r)
}

// trace parses r.Move for the side to move and finds the squares it joins.
// It runs before the board is synchronised, while the registry still holds
// the position the move was made from.
func (s *Session) trace(r *Report) {
	parsed, err := parser.ParseMove(r.Move, s.history.ToMove())
	if err != nil {
		r.MoveErr = err
		return
	}
	r.Parsed = parsed
	r.Dest = parsed.To()
	r.Source, r.MoveErr = engine.FindSource(s.reg, parsed)
}

package output

import (
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
)

// JSONMove represents a parsed move in JSON format.
type JSONMove struct {
	Text          string `json:"text"`
	Side          string `json:"side"` // "white" or "black"
	Piece         string `json:"piece"`
	Castle        string `json:"castle,omitempty"` // "kingside" or "queenside"
	FromFile      string `json:"fromFile,omitempty"`
	FromRank      string `json:"fromRank,omitempty"`
	To            string `json:"to"`
	Capture       bool   `json:"capture,omitempty"`
	CaptureTarget string `json:"captureTarget,omitempty"`
	Promotion     bool   `json:"promotion,omitempty"`
	Check         string `json:"check,omitempty"` // "check" or "checkmate"
}

// JSONPiece is one roster slot.
type JSONPiece struct {
	Colour string `json:"colour"`
	Slot   int    `json:"slot"`
	Kind   string `json:"kind"`
	Square string `json:"square,omitempty"` // empty when parked
}

// JSONReport represents an interpreted engine response.
type JSONReport struct {
	Session   string      `json:"session,omitempty"`
	Request   string      `json:"request"`
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	ToMove    string      `json:"toMove"`
	Move      string      `json:"move,omitempty"`
	Parsed    *JSONMove   `json:"parsed,omitempty"`
	From      string      `json:"from,omitempty"`
	To        string      `json:"to,omitempty"`
	RobotNext bool        `json:"robotNext,omitempty"`
	GameText  string      `json:"gameText,omitempty"`
	MoveError string      `json:"moveError,omitempty"`
	BoardErr  string      `json:"boardError,omitempty"`
	Moves     []string    `json:"moves"`
	Board     []string    `json:"board"`
	Roster    []JSONPiece `json:"roster,omitempty"`
}

// JSONSession is the state of a session.
type JSONSession struct {
	ID     string   `json:"id"`
	ToMove string   `json:"toMove"`
	Moves  []string `json:"moves"`
	Board  []string `json:"board"`
	Game   string   `json:"game,omitempty"`
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// squareName returns "" for NoSquare so it is omitted.
func squareName(sq chess.Square) string {
	if !sq.Valid() {
		return ""
	}
	return sq.String()
}

// MoveToJSON converts a parsed move.
func MoveToJSON(m *chess.ParsedMove) *JSONMove {
	jm := &JSONMove{
		Text:      m.Text,
		Side:      colourName(m.Side),
		Piece:     strings.ToLower(m.Piece.String()),
		To:        squareName(m.To()),
		Capture:   m.Capture,
		Promotion: m.Promotion,
	}
	switch m.Class {
	case chess.KingsideCastle:
		jm.Castle = "kingside"
	case chess.QueensideCastle:
		jm.Castle = "queenside"
	}
	if m.FromCol != 0 {
		jm.FromFile = string(rune(m.FromCol))
	}
	if m.FromRank != 0 {
		jm.FromRank = string(rune(m.FromRank))
	}
	if m.Capture {
		jm.CaptureTarget = strings.ToLower(m.CaptureTarget.String())
	}
	switch m.CheckStatus {
	case chess.Check:
		jm.Check = "check"
	case chess.Checkmate:
		jm.Check = "checkmate"
	}
	return jm
}

// RosterToJSON lists both rosters, white first.
func RosterToJSON(reg *chess.Registry) []JSONPiece {
	pieces := make([]JSONPiece, 0, 2*chess.RosterSize)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range reg.Roster(colour) {
			pieces = append(pieces, JSONPiece{
				Colour: colourName(colour),
				Slot:   p.Slot,
				Kind:   strings.ToLower(p.Kind.String()),
				Square: squareName(p.Square),
			})
		}
	}
	return pieces
}

// ReportToJSON converts a report together with the session state after it.
func ReportToJSON(s *session.Session, r *session.Report, withRoster bool) *JSONReport {
	jr := &JSONReport{
		Session:   s.ID,
		Request:   r.Request.Kind.String(),
		Status:    r.Status.String(),
		Message:   r.Message(),
		ToMove:    colourName(r.ToMove),
		Move:      r.Move,
		From:      squareName(r.Source),
		To:        squareName(r.Dest),
		RobotNext: r.RobotNext,
		GameText:  r.GameText,
		Moves:     nonNil(s.Moves()),
		Board:     BoardRows(s.Registry()),
	}
	if r.Parsed != nil {
		jr.Parsed = MoveToJSON(r.Parsed)
	}
	if r.MoveErr != nil {
		jr.MoveError = r.MoveErr.Error()
	}
	if r.BoardErr != nil {
		jr.BoardErr = r.BoardErr.Error()
	}
	if withRoster {
		jr.Roster = RosterToJSON(s.Registry())
	}
	return jr
}

// SessionToJSON converts the current state of a session.
func SessionToJSON(s *session.Session) *JSONSession {
	return &JSONSession{
		ID:     s.ID,
		ToMove: colourName(s.ToMove()),
		Moves:  nonNil(s.Moves()),
		Board:  BoardRows(s.Registry()),
		Game:   s.GameText(),
	}
}

// nonNil keeps empty move lists encoding as [] rather than null.
func nonNil(moves []string) []string {
	if moves == nil {
		return []string{}
	}
	return moves
}

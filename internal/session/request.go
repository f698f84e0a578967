package session

import "fmt"

// Kind identifies what a request asks of the engine.
type Kind int

const (
	HumanMove Kind = iota
	RobotMove
	Hint
	ShowGame
	NewGame
	Restore
	Undo
	Remove
)

var kindNames = []string{"move", "robot", "hint", "game", "new", "restore", "undo", "remove"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Request is one call to the engine.
type Request struct {
	Kind  Kind
	Move  string   // HumanMove only
	Moves []string // Restore only
}

// Status summarises how a response left the game.
type Status int

const (
	StatusTurn Status = iota
	StatusCheck
	StatusCheckmate
	StatusIllegal
	StatusHint
	StatusGame
)

var statusNames = []string{"turn", "check", "checkmate", "illegal", "hint", "game"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

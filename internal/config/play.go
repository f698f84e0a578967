package config

import "github.com/lgbarn/gnuchess-board-go/internal/chess"

// PlayConfig holds settings for a game between the user and the engine.
type PlayConfig struct {
	// Human is the side the user plays.
	Human chess.Colour

	// AgainstRobot makes the engine reply to every user move.
	AgainstRobot bool

	// Easy asks the engine for shallow, bookless play.
	Easy bool
}

// NewPlayConfig creates a PlayConfig with the user playing White.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{Human: chess.White}
}

// RobotSide returns the side the engine plays.
func (p *PlayConfig) RobotSide() chess.Colour {
	return p.Human.Opposite()
}

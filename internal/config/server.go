package config

import (
	"fmt"

	"github.com/lgbarn/gnuchess-board-go/internal/errors"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string

	// MaxSessions caps the number of live games.
	MaxSessions int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:        ":8080",
		MaxSessions: 64,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxSessions <= 0 {
		return fmt.Errorf("max sessions (%d) must be positive: %w", s.MaxSessions, errors.ErrInvalidConfig)
	}
	return nil
}

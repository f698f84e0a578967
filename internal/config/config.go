// Package config provides configuration for the board interpreter tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/gnuchess-board-go/internal/errors"
	"github.com/lgbarn/gnuchess-board-go/internal/parser"
)

// Verbosity levels understood by Logf.
const (
	Silent     = 0
	Summary    = 1
	Commentary = 2
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Sub-configurations
	Play   *PlayConfig
	Output *OutputConfig
	Server *ServerConfig

	// Workers is the number of games replayed in parallel (0 = one per CPU).
	Workers int

	// Duplicates reports replayed games ending in a position an earlier game
	// already reached. ExactDuplicates also requires the same move count.
	Duplicates      bool
	ExactDuplicates bool

	// EchoMarker precedes the engine's own move in its output.
	EchoMarker string

	// Move list files
	SaveFile    string
	RestoreFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Play:       NewPlayConfig(),
		Output:     NewOutputConfig(),
		Server:     NewServerConfig(),
		EchoMarker: parser.EchoMarker,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes to the log when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.EchoMarker == "" {
		return fmt.Errorf("empty echo marker: %w", errors.ErrInvalidConfig)
	}
	if c.Server != nil {
		if err := c.Server.Validate(); err != nil {
			return err
		}
	}
	return nil
}

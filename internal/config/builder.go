package config

import (
	"io"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithHumanSide sets the side the user plays.
func (b *ConfigBuilder) WithHumanSide(side chess.Colour) *ConfigBuilder {
	b.cfg.Play.Human = side
	return b
}

// AgainstRobot controls whether the engine answers each move.
func (b *ConfigBuilder) AgainstRobot(enabled bool) *ConfigBuilder {
	b.cfg.Play.AgainstRobot = enabled
	return b
}

// WithEasyLevel selects the shallow engine level.
func (b *ConfigBuilder) WithEasyLevel(enabled bool) *ConfigBuilder {
	b.cfg.Play.Easy = enabled
	return b
}

// WithWorkers sets the replay worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicates enables duplicate final position detection in replay.
func (b *ConfigBuilder) WithDuplicates(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicates = enabled
	b.cfg.ExactDuplicates = exact
	return b
}

// WithListenAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithMaxSessions caps the number of live HTTP sessions.
func (b *ConfigBuilder) WithMaxSessions(n int) *ConfigBuilder {
	b.cfg.Server.MaxSessions = n
	return b
}

// WithEchoMarker sets the text that precedes the engine's move.
func (b *ConfigBuilder) WithEchoMarker(marker string) *ConfigBuilder {
	b.cfg.EchoMarker = marker
	return b
}

package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints the board after every interpreted response
	ShowBoard bool

	// ShowRoster lists every tracked piece with its slot
	ShowRoster bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{ShowBoard: true}
}

// Package config holds editor-wide settings loaded at startup: view
// defaults and the active color theme. Grounded on audio/config.go's
// plain-struct-plus-DefaultXConfig-constructor shape, generalized from
// one system's tuning knobs to the editor's.
package config

// Config holds the editor's ambient settings.
type Config struct {
	TabWidth       int
	ScrollOff      int
	ShowNumber     bool
	RelativeNumber bool
	ThemePath      string
}

// DefaultConfig returns the editor's built-in defaults. The package reads
// no config file, so these are the values every Config starts from.
func DefaultConfig() *Config {
	return &Config{
		TabWidth:       8,
		ScrollOff:      3,
		ShowNumber:     true,
		RelativeNumber: false,
	}
}

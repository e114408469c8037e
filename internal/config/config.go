// Package config loads calcplot configuration. It is decoupled from CLI
// concerns so other tools can reuse it; the CLI passes its flag set in
// for the highest-precedence layer.
package config

// Config holds all calcplot settings.
type Config struct {
	// Large is the precision knob: 1/Large is the engine's sampling
	// step, and the trusted digit count is derived from it.
	Large float64 `koanf:"large"`

	// Viewport size in character cells. Zero means "size to the
	// terminal" where a terminal is available, else the 80x24 default.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// Plot window.
	XMin float64 `koanf:"xmin"`
	XMax float64 `koanf:"xmax"`
	YMin float64 `koanf:"ymin"`
	YMax float64 `koanf:"ymax"`

	// Glyphs is the cycle of curve characters assigned to functions in
	// registration order.
	Glyphs string `koanf:"glyphs"`

	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultLarge  = 10000
	DefaultMin    = -10
	DefaultMax    = 10
	DefaultGlyphs = "#*+o@%"
	DefaultOutput = "auto" // auto-detect: TTY=styled, non-TTY=plain
)

package cli

import (
	"fmt"

	"github.com/dl/duext/internal/usage"
	"github.com/dl/duext/internal/walker"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Config holds all configuration for one duext run.
type Config struct {
	Root            string
	ByExtension     bool
	JSONOutput      bool
	Color           ColorMode
	ContinueOnError bool
	Excludes        []string
	ExcludeFrom     string
	Verbose         bool
	// PathCapacity is only settable from the config file.
	PathCapacity   int
	Compressed     []string
	OtherThreshold float64
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		PathCapacity:   walker.DefaultCapacity,
		Compressed:     usage.DefaultCompressed,
		OtherThreshold: usage.DefaultThreshold,
	}
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("no directory specified")
	}
	if c.PathCapacity <= 0 {
		return fmt.Errorf("invalid path capacity: %d", c.PathCapacity)
	}
	if c.OtherThreshold < 0 || c.OtherThreshold > 1 {
		return fmt.Errorf("invalid other threshold: %g (want 0..1)", c.OtherThreshold)
	}
	for _, ext := range c.Compressed {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("invalid compressed extension %q (want a leading dot)", ext)
		}
	}
	return nil
}

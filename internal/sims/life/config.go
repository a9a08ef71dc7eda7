package life

import "strconv"

// Config holds parameters for Life.
type Config struct {
	// Width and Height size the random soup placed around the origin.
	Width  int
	Height int
	// Density seeds one live cell in Density.
	Density int
	// MaxWidth and MaxHeight cap how far the plane may grow.
	MaxWidth  int
	MaxHeight int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Density: 3, MaxWidth: 512, MaxHeight: 512}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("w", &c.Width)
	positive("h", &c.Height)
	positive("density", &c.Density)
	positive("maxw", &c.MaxWidth)
	positive("maxh", &c.MaxHeight)
	return c
}

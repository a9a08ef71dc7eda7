package app

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string `yaml:"sim"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"`
	Seed   int64  `yaml:"seed"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Params string `yaml:"params"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 30, Seed: 42, Width: 256, Height: 256}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "window width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "window height in cells")
	fs.StringVar(&c.Params, "params", c.Params, "comma separated key=value simulation parameters")
}

// SimParams parses Params into the map simulation factories accept.
func (c *Config) SimParams() (map[string]string, error) {
	out := map[string]string{}
	if strings.TrimSpace(c.Params) == "" {
		return out, nil
	}
	for _, kv := range strings.Split(c.Params, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok || key == "" {
			return nil, errors.Errorf("bad simulation parameter %q, want key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}

// Decode overlays YAML from r onto c. Keys missing from the document keep
// their current values; unknown keys are an error.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode config")
	}
	return nil
}

// LoadFile is Decode on the named file.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()
	return errors.Wrap(c.Decode(f), path)
}

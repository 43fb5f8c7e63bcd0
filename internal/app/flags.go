package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the viewer and CLI settings.
type Config struct {
	Seed     string `yaml:"seed"`
	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	HUD      bool   `yaml:"hud"`
	Overlay  bool   `yaml:"overlay"`
	CellSize int    `yaml:"cell_size"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: "hello world", Scale: 12, TPS: 30, HUD: true, CellSize: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed text to render")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the trait panel")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "show symmetry and head guides")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "SVG cell size in user units")
}

// LoadFile overlays YAML settings from path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.sanitize()
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) *Config {
	c := NewConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["hud"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.HUD = parsed
		}
	}
	if v, ok := cfg["overlay"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Overlay = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	return c
}

func (c *Config) sanitize() {
	d := NewConfig()
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
}

// ApplyFile loads path like LoadFile, then re-applies every flag that was set
// explicitly on fs so the command line wins over the file.
func (c *Config) ApplyFile(fs *flag.FlagSet, path string) error {
	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(path); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply -%s: %w", name, err)
		}
	}
	c.sanitize()
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/moneyovertime/mot/internal/dateformat"
	"github.com/moneyovertime/mot/internal/movements"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "mot.yaml"

// Config represents the top-level mot.yaml configuration.
type Config struct {
	Defaults Source            `yaml:"defaults"`
	Profiles map[string]Source `yaml:"profiles,omitempty"`
}

// Source describes how to read one kind of records file. Empty fields
// fall through to the next layer.
type Source struct {
	Delimiter   string `yaml:"delimiter,omitempty"`
	DateLabel   string `yaml:"date_label,omitempty"`
	DateFormat  string `yaml:"date_format,omitempty"` // strftime, e.g. "%d/%m/%Y"
	AmountLabel string `yaml:"amount_label,omitempty"`
}

// Merge returns s with its empty fields taken from fallback.
func (s Source) Merge(fallback Source) Source {
	if s.Delimiter == "" {
		s.Delimiter = fallback.Delimiter
	}
	if s.DateLabel == "" {
		s.DateLabel = fallback.DateLabel
	}
	if s.DateFormat == "" {
		s.DateFormat = fallback.DateFormat
	}
	if s.AmountLabel == "" {
		s.AmountLabel = fallback.AmountLabel
	}
	return s
}

// BuiltinSource is the built-in fallback: comma, "date" in %d/%m/%Y, "amount".
func BuiltinSource() Source {
	return Source{
		Delimiter:   ",",
		DateLabel:   movements.DefaultDateLabel,
		DateFormat:  dateformat.Default,
		AmountLabel: movements.DefaultAmountLabel,
	}
}

// Load reads a mot.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOptional reads path, returning an empty Config when it does not
// exist and required is false.
func LoadOptional(path string, required bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in defaults spelled out and one
// example profile for a semicolon-separated bank export.
func Default() *Config {
	return &Config{
		Defaults: BuiltinSource(),
		Profiles: map[string]Source{
			"bank": {
				Delimiter:   ";",
				DateLabel:   "booking date",
				DateFormat:  "%Y-%m-%d",
				AmountLabel: "value",
			},
		},
	}
}

// Resolve layers a named profile over the file defaults and the built-in
// defaults. An empty name selects no profile.
func (c *Config) Resolve(profile string) (Source, error) {
	base := c.Defaults.Merge(BuiltinSource())
	if profile == "" {
		return base, nil
	}
	p, ok := c.Profiles[profile]
	if !ok {
		return Source{}, fmt.Errorf("%w: unknown profile %q (known: %v)", movements.ErrFormat, profile, c.ProfileNames())
	}
	return p.Merge(base), nil
}

// ProfileNames returns the profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for n := range c.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

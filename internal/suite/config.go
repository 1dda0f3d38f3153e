package suite

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/timing"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/workload"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("suite: invalid config")

// Config selects what to run and how to report it.
type Config struct {
	Iterations uint64   `yaml:"iterations"`
	Cases      []string `yaml:"cases"`
	Unit       string   `yaml:"unit"`
	Clock      string   `yaml:"clock"`
	Format     string   `yaml:"format"`
	Verify     bool     `yaml:"verify"`
	MetricsOut string   `yaml:"metricsOut"`
}

// Defaults runs the dynamic case then the static case for 100000 outer
// iterations and prints milliseconds as text.
func Defaults() Config {
	return Config{
		Iterations: workload.DefaultIterations,
		Cases:      []string{Dynamic, Static},
		Unit:       timing.DefaultUnit.String(),
		Clock:      "std",
		Format:     FormatText,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// Defaults value.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field. Zero iterations is valid and runs no ticks.
func (c Config) Validate() error {
	if len(c.Cases) == 0 {
		return fmt.Errorf("%w: no cases selected", ErrInvalidConfig)
	}
	for i, name := range c.Cases {
		if _, err := Lookup(name); err != nil {
			return fmt.Errorf("%w: cases[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	if _, err := timing.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := timing.ParseClock(c.Clock); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := parseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Selected resolves Cases against the catalogue, preserving order and
// duplicates.
func (c Config) Selected() ([]Case, error) {
	out := make([]Case, 0, len(c.Cases))
	for _, name := range c.Cases {
		bc, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, bc)
	}
	return out, nil
}

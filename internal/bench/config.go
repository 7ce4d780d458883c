package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the set of cases a bench invocation runs.
type Config struct {
	Cases []Case `yaml:"cases"`
}

// DefaultConfig mirrors the library's canonical comparison scenarios:
// a large integer chain and a string-concatenation chain, d += a + b + c
// each.
func DefaultConfig() Config {
	return Config{
		Cases: []Case{
			{Name: "ints-1m", Kind: KindInts, Size: 1_000_000, Runs: 3},
			{Name: "strings-100k", Kind: KindStrings, Size: 100_000, Runs: 3},
		},
	}
}

// Validate checks every case and requires at least one.
func (c Config) Validate() error {
	if len(c.Cases) == 0 {
		return fmt.Errorf("%w: config has no cases", ErrInvalidCase)
	}
	for _, cs := range c.Cases {
		if err := cs.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads and validates a YAML case file:
//
//	cases:
//	  - name: ints-small
//	    kind: ints
//	    size: 10000
//	    runs: 5
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

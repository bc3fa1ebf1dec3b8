package optimizer

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default budgets when Config.Minutes is left at zero.
const (
	SingleAgentMinutes = 30
	DualAgentMinutes   = 26
)

// ErrBadConfig is returned by Config.Validate and LoadConfig.
var ErrBadConfig = errors.New("optimizer: invalid config")

// Config is the file form of an optimizer run.
//
//	start: AA
//	agents: 2
//	minutes: 26
//	workers: 4
//	pruning: true
//	memo: true
type Config struct {
	Start   string `yaml:"start"`
	Agents  int    `yaml:"agents"`
	Minutes int    `yaml:"minutes"`
	Workers int    `yaml:"workers"`
	Pruning bool   `yaml:"pruning"`
	Memo    bool   `yaml:"memo"`
}

// DefaultConfig returns a single-agent run from AA with the budget chosen
// by agent count.
func DefaultConfig() Config {
	return Config{
		Start:   "AA",
		Agents:  1,
		Pruning: true,
		Memo:    true,
	}
}

// Budget returns Minutes, or the default for the agent count when it is 0.
func (c Config) Budget() int {
	if c.Minutes > 0 {
		return c.Minutes
	}
	if c.Agents == 2 {
		return DualAgentMinutes
	}

	return SingleAgentMinutes
}

// Validate checks the field ranges.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return fmt.Errorf("%w: start is empty", ErrBadConfig)
	case c.Agents != 1 && c.Agents != 2:
		return fmt.Errorf("%w: agents must be 1 or 2 (got %d)", ErrBadConfig, c.Agents)
	case c.Minutes < 0:
		return fmt.Errorf("%w: minutes cannot be negative (%d)", ErrBadConfig, c.Minutes)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrBadConfig, c.Workers)
	}

	return nil
}

// Options converts c into call options.
func (c Config) Options() []Option {
	return []Option{
		WithWorkers(c.Workers),
		WithPruning(c.Pruning),
		WithMemo(c.Memo),
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrBadConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ABOUTME: Configuration management for scaffold-solver tuning parameters
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"scaffolder/solver"
)

// SolverConfig holds every tunable field of solver.Options in its
// TOML-serializable form.
type SolverConfig struct {
	SelectionSize      int     `toml:"selection_size"`
	CrossoverRate      float64 `toml:"crossover_rate"`
	RestartGenerations int     `toml:"restart_generations"`
	LocalSearchM       int     `toml:"local_search_m"`
	Threads            int     `toml:"threads"`
	TimeLimit          int     `toml:"time_limit_seconds"`
	GARestarts         int     `toml:"ga_restarts"`
	VerboseOutput      bool    `toml:"verbose_output"`
	Seed               int64   `toml:"seed"`
}

// GetConfigPath returns the default config file path: first the current
// directory, then ~/.config/scaffolder/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./scaffolder.toml"); err == nil {
		return "./scaffolder.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./scaffolder.toml"
	}

	return filepath.Join(home, ".config", "scaffolder", "config.toml")
}

// LoadConfig loads configuration from a TOML file. If the file doesn't
// exist, returns the default config with no error.
func LoadConfig(path string) (SolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg SolverConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a TOML file, creating its parent
// directory if necessary.
func SaveConfig(path string, cfg SolverConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", cerr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the solver's built-in default tuning as a
// SolverConfig.
func DefaultConfig() SolverConfig {
	d := solver.DefaultOptions()
	return SolverConfig{
		SelectionSize:      d.SelectionSize,
		CrossoverRate:      d.CrossoverRate,
		RestartGenerations: d.RestartGenerations,
		LocalSearchM:       d.LocalSearchM,
		Threads:            1,
	}
}

// ToOptions converts a loaded SolverConfig into solver.Options, leaving
// Logger unset (the caller wires that in).
func (c SolverConfig) ToOptions() solver.Options {
	return solver.Options{
		SelectionSize:      c.SelectionSize,
		CrossoverRate:      c.CrossoverRate,
		RestartGenerations: c.RestartGenerations,
		LocalSearchM:       c.LocalSearchM,
		Threads:            c.Threads,
		TimeLimit:          c.TimeLimit,
		GARestarts:         c.GARestarts,
		VerboseOutput:      c.VerboseOutput,
		Seed:               c.Seed,
	}
}

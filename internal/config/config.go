package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"property-risk/internal/montecarlo"
)

// Config is the on-disk configuration shape (YAML) for the service and
// tooling. Simulation holds overrides for the simulator defaults; they are
// validated by merging into montecarlo.DefaultConfig at load time.
type Config struct {
	// Optional: load simulation defaults from a separate YAML file.
	// Keys in Simulation override keys from SimulationFile.
	SimulationFile string         `yaml:"simulation_file"`
	Simulation     map[string]any `yaml:"simulation"`
	Server         ServerConfig   `yaml:"server"`
	Log            LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the config used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", Env: "development"},
		Log:    LogConfig{Level: "info", Pretty: true},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If simulation_file is set, load it and overlay any explicit keys
	// from c.Simulation.
	if c.SimulationFile != "" {
		simPath := c.SimulationFile
		if !filepath.IsAbs(simPath) {
			// Prefer interpreting relative paths as relative to the
			// config file directory, but fall back to the provided path
			// (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), simPath)
			if _, err := os.Stat(cand); err == nil {
				simPath = cand
			}
		}
		loaded, err := loadSimulationFile(simPath)
		if err != nil {
			return nil, err
		}
		c.Simulation = MergeSimulation(loaded, c.Simulation)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate simulation overrides by building a montecarlo.Config.
	if _, err := montecarlo.FromMap(c.Simulation); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	return nil
}

// SimulationDefaults builds the simulator config this service starts runs
// from: the library defaults with the file-level overrides applied.
func (c *Config) SimulationDefaults() (montecarlo.Config, error) {
	return montecarlo.FromMap(c.Simulation)
}

type simulationFileWrapper struct {
	Simulation map[string]any `yaml:"simulation"`
}

func loadSimulationFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w simulationFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Simulation, nil
}

// MergeSimulation overlays override keys onto base. The merge is shallow:
// a range pair from override replaces the base pair wholesale.
func MergeSimulation(base, override map[string]any) map[string]any {
	if base == nil && override == nil {
		return nil
	}
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

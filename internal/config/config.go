// Package config loads network descriptions from YAML.
//
// Example file:
//
//	inputs: 3
//	layers: [3, 2, 1]
//	seed: 42
//	activation: sigmoid
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/grad/internal/nn"
)

// ErrInvalidConfig is returned for configurations that cannot build a network.
var ErrInvalidConfig = errors.New("invalid network config")

// Config describes a network and how its outputs are activated.
type Config struct {
	Inputs     int    `yaml:"inputs"`
	Layers     []int  `yaml:"layers"`
	Seed       uint64 `yaml:"seed"`
	Activation string `yaml:"activation"`
}

// Default returns the 3-input, [3, 2, 1] network used when nothing is configured.
func Default() Config {
	return Config{
		Inputs:     3,
		Layers:     []int{3, 2, 1},
		Seed:       42,
		Activation: nn.ActivationNone,
	}
}

// Load reads and validates a YAML config file.
// Fields missing from the file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the config describes a buildable network.
func (c Config) Validate() error {
	if c.Inputs < 1 {
		return fmt.Errorf("%w: inputs must be positive, got %d", ErrInvalidConfig, c.Inputs)
	}
	if len(c.Layers) == 0 {
		return fmt.Errorf("%w: at least one layer is required", ErrInvalidConfig)
	}
	for i, size := range c.Layers {
		if size < 1 {
			return fmt.Errorf("%w: layer %d size must be positive, got %d", ErrInvalidConfig, i, size)
		}
	}
	switch c.Activation {
	case nn.ActivationNone, nn.ActivationSigmoid, "":
	default:
		return fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, c.Activation)
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

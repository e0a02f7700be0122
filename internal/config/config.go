// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a presents run.
//
// Settings are layered: Default, then an optional YAML file (Load), then an
// optional dotenv file plus the process environment (ApplyEnv), then
// command-line flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/oset"
)

// Run modes.
const (
	// ModeConcurrent starts populator, retirer and observer together.
	ModeConcurrent = "concurrent"
	// ModeSequential populates to completion, then observes, then retires.
	ModeSequential = "sequential"
)

// Environment variables read by ApplyEnv.
const (
	EnvPresents    = "OSET_PRESENTS"
	EnvSeed        = "OSET_SEED"
	EnvPopulators  = "OSET_POPULATORS"
	EnvMode        = "OSET_MODE"
	EnvDuplicates  = "OSET_DUPLICATES"
	EnvSpin        = "OSET_SPIN"
	EnvNonBlocking = "OSET_NONBLOCKING"
)

type Config struct {
	Presents    int    `yaml:"presents,omitempty" json:"presents,omitempty"`
	Seed        uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Populators  int    `yaml:"populators,omitempty" json:"populators,omitempty"`
	Mode        string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Duplicates  string `yaml:"duplicates,omitempty" json:"duplicates,omitempty"`
	Spin        bool   `yaml:"spin,omitempty" json:"spin,omitempty"`
	NonBlocking bool   `yaml:"nonblocking,omitempty" json:"nonblocking,omitempty"`
}

// Default returns the reference scenario: 50000 presents, one populator,
// all collaborators concurrent, duplicates allowed.
func Default() *Config {
	return &Config{
		Presents:   50000,
		Populators: 1,
		Mode:       ModeConcurrent,
		Duplicates: oset.AllowDuplicates.String(),
	}
}

// Load reads a YAML file over Default. Keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads the given dotenv files into the process environment
// (variables already set win) and then overrides c with every OSET_*
// variable that is set.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return fmt.Errorf("failed to load env files %v: %w", files, err)
		}
	}
	if v, ok := os.LookupEnv(EnvPresents); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPresents, err)
		}
		c.Presents = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvPopulators); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPopulators, err)
		}
		c.Populators = n
	}
	if v, ok := os.LookupEnv(EnvMode); ok {
		c.Mode = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvDuplicates); ok {
		c.Duplicates = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvSpin); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpin, err)
		}
		c.Spin = b
	}
	if v, ok := os.LookupEnv(EnvNonBlocking); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNonBlocking, err)
		}
		c.NonBlocking = b
	}
	return nil
}

// Policy parses Duplicates.
func (c *Config) Policy() (oset.DuplicatePolicy, error) {
	return oset.ParsePolicy(c.Duplicates)
}

func (c *Config) Validate() error {
	if c.Presents <= 0 {
		return fmt.Errorf("presents must be positive, got %d", c.Presents)
	}
	if c.Populators <= 0 {
		return fmt.Errorf("populators must be positive, got %d", c.Populators)
	}
	if c.Populators > c.Presents {
		return fmt.Errorf("populators (%d) exceed presents (%d)", c.Populators, c.Presents)
	}
	switch c.Mode {
	case ModeConcurrent, ModeSequential:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

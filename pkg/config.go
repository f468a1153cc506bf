// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package pos

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

var (
	// ErrOutOfBounds is returned when a configuration parameter lies outside its admissible range
	ErrOutOfBounds = errors.New("parameter out of bounds")
	// ErrInvalidStakeRange is returned when the raw stake range is empty or negative
	ErrInvalidStakeRange = errors.New("invalid raw stake range")
)

// Bounds are the inclusive limits of an integer parameter
type Bounds struct {
	Min, Max int64
}

func (b Bounds) contains(n int64) bool {
	return n >= b.Min && n <= b.Max
}

func (b Bounds) clamp(n int64) int64 {
	if n < b.Min {
		return b.Min
	}
	if n > b.Max {
		return b.Max
	}
	return n
}

// Admissible ranges of the round parameters
var (
	NumValidatorsBounds        = Bounds{Min: 5, Max: 50}
	MaxStakePerValidatorBounds = Bounds{Min: 50, Max: 500}
	NumSelectedBounds          = Bounds{Min: 1, Max: 10}
	SeedBounds                 = Bounds{Min: 0, Max: 10000}
	RawStakeBounds             = Bounds{Min: 0, Max: 1000000}
)

// DefaultRawStakeRange is the range raw stakes are drawn from before being capped
var DefaultRawStakeRange = StakeRange{Min: 50, Max: 500}

// Config is the configuration of a round
type Config struct {
	// NumValidators is the amount of validators to generate
	NumValidators int `toml:"NumValidators"`
	// MaxStakePerValidator caps the stake of every validator,
	// limiting how much a single validator weighs in the selection.
	MaxStakePerValidator int64 `toml:"MaxStakePerValidator"`
	// NumSelected is the amount of validators selected for the round
	NumSelected int `toml:"NumSelected"`
	// Seed determines the selection. Different seeds rotate the selected validators.
	Seed int64 `toml:"Seed"`
	// RawStakeRange is the range stakes are drawn from before capping
	RawStakeRange StakeRange `toml:"RawStakeRange"`
}

// DefaultConfig returns the configuration the demonstration starts with
func DefaultConfig() Config {
	return Config{
		NumValidators:        20,
		MaxStakePerValidator: 200,
		NumSelected:          5,
		Seed:                 42,
		RawStakeRange:        DefaultRawStakeRange,
	}
}

func (c Config) String() string {
	return fmt.Sprintf("validators: %d, max stake: %d, selected: %d, seed: %d, raw stake range: %s",
		c.NumValidators, c.MaxStakePerValidator, c.NumSelected, c.Seed, c.RawStakeRange)
}

// Validate checks that every parameter lies within its admissible range
func (c Config) Validate() error {
	checks := []struct {
		name   string
		value  int64
		bounds Bounds
	}{
		{"NumValidators", int64(c.NumValidators), NumValidatorsBounds},
		{"MaxStakePerValidator", c.MaxStakePerValidator, MaxStakePerValidatorBounds},
		{"NumSelected", int64(c.NumSelected), NumSelectedBounds},
		{"Seed", c.Seed, SeedBounds},
	}

	for _, check := range checks {
		if !check.bounds.contains(check.value) {
			return fmt.Errorf("%w: %s is %d but should be within [%d, %d]",
				ErrOutOfBounds, check.name, check.value, check.bounds.Min, check.bounds.Max)
		}
	}

	if !RawStakeBounds.contains(c.RawStakeRange.Min) || !RawStakeBounds.contains(c.RawStakeRange.Max) ||
		c.RawStakeRange.Max < c.RawStakeRange.Min {
		return fmt.Errorf("%w: %s", ErrInvalidStakeRange, c.RawStakeRange)
	}

	return nil
}

// Clamp returns a copy of the config with every bounded parameter coerced into its range
func (c Config) Clamp() Config {
	c.NumValidators = int(NumValidatorsBounds.clamp(int64(c.NumValidators)))
	c.MaxStakePerValidator = MaxStakePerValidatorBounds.clamp(c.MaxStakePerValidator)
	c.NumSelected = int(NumSelectedBounds.clamp(int64(c.NumSelected)))
	c.Seed = SeedBounds.clamp(c.Seed)
	return c
}

// LoadConfig decodes a TOML file on top of the default configuration.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("failed opening config file %s: %v", path, err)
	}
	defer f.Close()

	tree, err := toml.LoadReader(f)
	if err != nil {
		return config, fmt.Errorf("failed parsing config file %s: %v", path, err)
	}

	if err := tree.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed decoding config file %s: %v", path, err)
	}

	// Absent tables are decoded as zero values
	if !tree.Has("RawStakeRange") {
		config.RawStakeRange = DefaultRawStakeRange
	}

	return config, nil
}

// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"fmt"

	"github.com/urfave/cli"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

var (
	// configurationFile defines a flag for the path to a toml file holding the round parameters
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `[path]` for a TOML file with the round parameters. Flags take precedence over it.",
	}
	numValidators = cli.IntFlag{
		Name:  "validators",
		Usage: boundedUsage("Number of validators", pos.NumValidatorsBounds),
		Value: pos.DefaultConfig().NumValidators,
	}
	maxStakePerValidator = cli.Int64Flag{
		Name:  "max-stake",
		Usage: boundedUsage("Stake cap per validator", pos.MaxStakePerValidatorBounds),
		Value: pos.DefaultConfig().MaxStakePerValidator,
	}
	numSelected = cli.IntFlag{
		Name:  "selected",
		Usage: boundedUsage("Number of validators selected per round", pos.NumSelectedBounds),
		Value: pos.DefaultConfig().NumSelected,
	}
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: boundedUsage("Seed for the rotation of the selected validators", pos.SeedBounds),
		Value: pos.DefaultConfig().Seed,
	}
	interactive = cli.BoolFlag{
		Name:  "interactive",
		Usage: "Display rounds in an interactive terminal dashboard",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "The logging level: debug, info, warn or error",
		Value: "warn",
	}
	logFile = cli.StringFlag{
		Name:  "log-file",
		Usage: "The `[path]` logs are written to. Logs go to stderr in text mode and are discarded in interactive mode if unset.",
	}
)

func boundedUsage(usage string, bounds pos.Bounds) string {
	return fmt.Sprintf("%s, within [%d, %d]", usage, bounds.Min, bounds.Max)
}

// configFromContext loads the config file if any, and overrides it with the flags that were set
func configFromContext(ctx *cli.Context) (pos.Config, error) {
	config := pos.DefaultConfig()

	if path := ctx.String(configurationFile.Name); path != "" {
		var err error
		config, err = pos.LoadConfig(path)
		if err != nil {
			return config, err
		}
	}

	if ctx.IsSet(numValidators.Name) {
		config.NumValidators = ctx.Int(numValidators.Name)
	}
	if ctx.IsSet(maxStakePerValidator.Name) {
		config.MaxStakePerValidator = ctx.Int64(maxStakePerValidator.Name)
	}
	if ctx.IsSet(numSelected.Name) {
		config.NumSelected = ctx.Int(numSelected.Name)
	}
	if ctx.IsSet(seed.Name) {
		config.Seed = ctx.Int64(seed.Name)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid round parameters: %v", err)
	}

	return config, nil
}

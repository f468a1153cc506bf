// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	rotation "github.com/SmartBFT-Go/stakerotation"
	"github.com/SmartBFT-Go/stakerotation/view"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run plays the app and returns its exit code. Errors go to errOut so out only carries the report.
func run(args []string, out io.Writer, errOut io.Writer) int {
	app := newApp(out)

	err := app.Run(args)
	if err != nil {
		fmt.Fprintln(errOut, err.Error())
		return 1
	}
	return 0
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "posrotation"
	app.Version = "v0.0.1"
	app.Usage = "Simulates the stake weighted selection of proof of stake validators, with capped stakes and seeded rotation"
	app.Writer = out
	app.Flags = []cli.Flag{
		configurationFile,
		numValidators,
		maxStakePerValidator,
		numSelected,
		seed,
		interactive,
		logLevel,
		logFile,
	}

	app.Action = func(ctx *cli.Context) error {
		return playRound(ctx, out)
	}

	return app
}

func playRound(ctx *cli.Context, out io.Writer) error {
	config, err := configFromContext(ctx)
	if err != nil {
		return err
	}

	isInteractive := ctx.Bool(interactive.Name)

	logger, err := newLogger(ctx.String(logLevel.Name), ctx.String(logFile.Name), isInteractive)
	if err != nil {
		return err
	}
	defer logger.Sync()

	r := rotation.NewValidatorRotation(logger.Sugar())

	if isInteractive {
		return view.NewDashboard(r, config).Run()
	}

	return view.RenderText(out, r.PlayRound(config))
}

// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package view

import (
	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

// Action is what the dashboard should do after a key press
type Action int

const (
	// ActionNone leaves the dashboard as it is
	ActionNone Action = iota
	// ActionReplay plays a new round with the current parameters
	ActionReplay
	// ActionResize redraws the dashboard on the new terminal dimensions
	ActionResize
	// ActionQuit closes the dashboard
	ActionQuit
)

const maxStakeStep = 10

// KeyHelp describes the key bindings of the dashboard
const KeyHelp = `[v/V](fg:yellow) validators -/+   [m/M](fg:yellow) max stake -/+10   [k/K](fg:yellow) selected -/+
[s/S](fg:yellow) seed -/+   [r](fg:yellow) redraw stakes   [q](fg:yellow) quit`

// ApplyKey adjusts the round parameters according to a key press,
// keeping every parameter within its admissible range.
func ApplyKey(config pos.Config, key string) (pos.Config, Action) {
	switch key {
	case "v":
		config.NumValidators--
	case "V":
		config.NumValidators++
	case "m":
		config.MaxStakePerValidator -= maxStakeStep
	case "M":
		config.MaxStakePerValidator += maxStakeStep
	case "k":
		config.NumSelected--
	case "K":
		config.NumSelected++
	case "s":
		config.Seed--
	case "S":
		config.Seed++
	case "r":
	case "<Resize>":
		return config, ActionResize
	case "q", "<C-c>":
		return config, ActionQuit
	default:
		return config, ActionNone
	}

	return config.Clamp(), ActionReplay
}

// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package mock

import (
	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

// RotationMock always plays rounds out of the same validators,
// selecting them in the order they were given.
type RotationMock struct {
	Validators pos.ValidatorSet
	Rounds     int
}

func (m *RotationMock) GenerateValidators(numValidators int, maxStakePerValidator int64) pos.ValidatorSet {
	var res pos.ValidatorSet
	for i := 0; i < numValidators && i < len(m.Validators); i++ {
		v := m.Validators[i]
		if v.Stake > maxStakePerValidator {
			v.Stake = maxStakePerValidator
		}
		res = append(res, v)
	}
	return res
}

func (m *RotationMock) SelectValidators(validators pos.ValidatorSet, numSelected int, _ int64) pos.ValidatorSet {
	if numSelected <= 0 {
		return nil
	}
	if numSelected > len(validators) {
		numSelected = len(validators)
	}
	return validators[:numSelected]
}

func (m *RotationMock) PlayRound(config pos.Config) pos.Round {
	m.Rounds++
	validators := m.GenerateValidators(config.NumValidators, config.MaxStakePerValidator)
	selected := m.SelectValidators(validators, config.NumSelected, config.Seed)

	var selection pos.Selection
	total := selected.TotalStake()
	for _, v := range selected {
		sv := pos.SelectedValidator{Validator: v}
		if total > 0 {
			sv.StakeShare = float64(v.Stake) / float64(total) * 100
		}
		selection = append(selection, sv)
	}

	return pos.Round{
		Config:     config,
		Validators: validators,
		Selected:   selection,
	}
}

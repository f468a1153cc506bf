/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package rotation

import (
	"crypto/cipher"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
	"go.dedis.ch/kyber/v3/util/random"
)

// Rotation generates validator sets and selects the validators of rounds out of them.
// Stakes are drawn from Entropy and are not reproducible,
// while selections are reproducible given their seed.
type Rotation struct {
	GenerateValidatorSet ValidatorGenerator
	SelectValidatorSet   ValidatorSelector
	Logger               pos.Logger
	// Entropy feeds stake generation. A system randomness stream is used if nil.
	Entropy cipher.Stream
}

func (r *Rotation) GenerateValidators(numValidators int, maxStakePerValidator int64) pos.ValidatorSet {
	return r.generate(numValidators, maxStakePerValidator, pos.DefaultRawStakeRange)
}

func (r *Rotation) generate(numValidators int, maxStakePerValidator int64, raw pos.StakeRange) pos.ValidatorSet {
	if r.Entropy == nil {
		r.Entropy = random.New()
	}

	validators := r.GenerateValidatorSet(numValidators, maxStakePerValidator, raw, r.Entropy)

	r.Logger.Infof("Generated %d validators with stakes drawn from %s capped at %d, total stake: %d",
		len(validators), raw, maxStakePerValidator, validators.TotalStake())
	r.Logger.Debugf("Validators: %v", validators)

	return validators
}

func (r *Rotation) SelectValidators(validators pos.ValidatorSet, numSelected int, seed int64) pos.ValidatorSet {
	if numSelected > len(validators) {
		r.Logger.Debugf("Requested %d validators but only %d exist, selecting all of them", numSelected, len(validators))
	}

	if validators.TotalStake() == 0 && len(validators) > 0 {
		r.Logger.Warnf("None of the %d validators has stake, selecting uniformly", len(validators))
	}

	selected := r.SelectValidatorSet(validators, numSelected, seed)

	r.Logger.Infof("Selected %v out of %d validators with seed %d", selected.IDs(), len(validators), seed)

	return selected
}

func (r *Rotation) PlayRound(config pos.Config) pos.Round {
	r.Logger.Debugf("Playing round with %s", config)

	validators := r.generate(config.NumValidators, config.MaxStakePerValidator, config.RawStakeRange)
	selected := r.SelectValidators(validators, config.NumSelected, config.Seed)

	return pos.Round{
		Config:     config,
		Validators: validators,
		Selected:   StakeShares(selected),
	}
}

// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package pos

// Rotation is an interface that describes the API of the validator rotation library
type Rotation interface {
	// GenerateValidators creates numValidators validators named Validator_1..Validator_n,
	// each with a freshly randomized stake capped at maxStakePerValidator.
	GenerateValidators(numValidators int, maxStakePerValidator int64) ValidatorSet
	// SelectValidators draws up to numSelected distinct validators weighted by their stake.
	// The draw is fully determined by the seed and the given validators.
	SelectValidators(validators ValidatorSet, numSelected int, seed int64) ValidatorSet
	// PlayRound generates a validator set according to the config and selects
	// the validators of a single round out of it.
	PlayRound(config Config) Round
}

// Logger defines the logging the rotation library performs
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package rotation

import (
	"crypto/cipher"
	"math"
	"math/rand"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
	"go.dedis.ch/kyber/v3/util/random"
)

// ValidatorGenerator creates a validator set with stakes drawn from the given stream
type ValidatorGenerator func(numValidators int, maxStakePerValidator int64, raw pos.StakeRange, entropy cipher.Stream) pos.ValidatorSet

// GenerateValidators creates numValidators validators. The stake of each is drawn uniformly
// from the raw range and then capped at maxStakePerValidator.
// A non-positive amount of validators yields an empty set.
func GenerateValidators(numValidators int, maxStakePerValidator int64, raw pos.StakeRange, entropy cipher.Stream) pos.ValidatorSet {
	if numValidators <= 0 {
		return nil
	}

	if entropy == nil {
		entropy = random.New()
	}

	r := streamRand(entropy)

	res := make(pos.ValidatorSet, 0, numValidators)
	for i := 1; i <= numValidators; i++ {
		stake := raw.Min + drawUniform(raw.Max-raw.Min, r)
		if stake > maxStakePerValidator {
			stake = maxStakePerValidator
		}
		if stake < 0 {
			stake = 0
		}
		res = append(res, pos.Validator{
			ID:    pos.ValidatorID(i),
			Stake: stake,
		})
	}

	return res
}

// drawUniform returns a number in [0, n], or 0 if n is negative
func drawUniform(n int64, r *rand.Rand) int64 {
	if n <= 0 {
		return 0
	}
	if n == math.MaxInt64 {
		return r.Int63()
	}
	return r.Int63n(n + 1)
}

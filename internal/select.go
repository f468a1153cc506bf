/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package rotation

import (
	"fmt"
	"math/rand"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

// ValidatorSelector picks the validators of a round out of the given validators
type ValidatorSelector func(validators pos.ValidatorSet, numSelected int, seed int64) pos.ValidatorSet

// SelectValidators draws min(numSelected, len(validators)) distinct validators, each draw
// weighted by stake among the validators not drawn yet. The random source is built from
// the seed on every invocation, so the outcome only depends on the seed and the validators.
func SelectValidators(validators pos.ValidatorSet, numSelected int, seed int64) pos.ValidatorSet {
	target := numSelected
	if len(validators) < target {
		target = len(validators)
	}
	if target <= 0 {
		return nil
	}

	rm := rangeMappingFromValidators(validators, seededRand(seed))

	res := make(pos.ValidatorSet, 0, target)
	for len(res) < target {
		i := rm.randomSample()
		res = append(res, validators[i])
		rm.remove(i)
	}

	return res
}

// rangeMapping maps each remaining candidate to a range of length equal to its stake.
// Drawing a number in [0, total) and locating its range performs a stake weighted draw.
type rangeMapping struct {
	r       *rand.Rand
	total   int64
	weights []int64
	ranges  []rangePair
	removed map[int]struct{}
}

type rangePair struct {
	index int
	a, b  int64
}

func rangeMappingFromValidators(validators pos.ValidatorSet, r *rand.Rand) *rangeMapping {
	var weights []int64
	for _, v := range validators {
		weight := v.Stake
		if weight < 0 {
			weight = 0
		}
		weights = append(weights, weight)
	}

	rm := &rangeMapping{
		r:       r,
		weights: weights,
		removed: make(map[int]struct{}),
	}
	rm.ranges, rm.total = rangePairsFromWeights(weights, rm.removed)
	return rm
}

func rangePairsFromWeights(weights []int64, removed map[int]struct{}) ([]rangePair, int64) {
	var res []rangePair

	var cumulativeWeights int64
	for i, w := range weights {
		if _, exists := removed[i]; exists {
			continue
		}
		res = append(res, rangePair{
			index: i,
			a:     cumulativeWeights,
			b:     cumulativeWeights + w,
		})
		cumulativeWeights += w
	}

	return res, cumulativeWeights
}

// randomSample returns the index of a remaining candidate.
// Once no remaining candidate has stake, every remaining candidate is equally likely.
func (rm *rangeMapping) randomSample() int {
	if len(rm.ranges) == 0 {
		panic("no candidates left to sample from")
	}

	if rm.total == 0 {
		return rm.ranges[rm.r.Intn(len(rm.ranges))].index
	}

	sample := rm.r.Int63n(rm.total)
	for _, ab := range rm.ranges {
		if sample >= ab.a && sample < ab.b {
			return ab.index
		}
	}

	panic(fmt.Sprintf("%d is not within [0, %d)", sample, rm.total))
}

func (rm *rangeMapping) remove(i int) {
	rm.removed[i] = struct{}{}
	rm.ranges, rm.total = rangePairsFromWeights(rm.weights, rm.removed)
}

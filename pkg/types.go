// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package pos

import (
	"fmt"
	"sort"
)

// IDPrefix prefixes the 1-based generation index of a validator
const IDPrefix = "Validator_"

// ValidatorID returns the identifier of the validator generated at the given 1-based index
func ValidatorID(index int) string {
	return fmt.Sprintf("%s%d", IDPrefix, index)
}

// Validator is a participant eligible to be selected for a round
type Validator struct {
	ID    string `toml:"ID" json:"id"`
	Stake int64  `toml:"Stake" json:"stake"`
}

func (v Validator) String() string {
	return fmt.Sprintf("%s(%d)", v.ID, v.Stake)
}

// ValidatorSet is an ordered sequence of validators with distinct identifiers
type ValidatorSet []Validator

// IDs returns the identifiers of the validators, in order
func (vs ValidatorSet) IDs() []string {
	var res []string
	for _, v := range vs {
		res = append(res, v.ID)
	}
	return res
}

// TotalStake sums the stakes of all validators
func (vs ValidatorSet) TotalStake() int64 {
	var total int64
	for _, v := range vs {
		total += v.Stake
	}
	return total
}

// Contains returns whether a validator with the given ID is in the set
func (vs ValidatorSet) Contains(id string) bool {
	for _, v := range vs {
		if v.ID == id {
			return true
		}
	}
	return false
}

// SortedByStake returns a copy of the set ordered by descending stake.
// Validators with equal stake keep their relative order.
func (vs ValidatorSet) SortedByStake() ValidatorSet {
	res := make(ValidatorSet, len(vs))
	copy(res, vs)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Stake > res[j].Stake
	})
	return res
}

// SelectedValidator is a validator chosen for a round along with
// its percentage of the stake of all validators chosen for that round
type SelectedValidator struct {
	Validator
	StakeShare float64
}

// Selection is the ordered outcome of a round, first drawn first
type Selection []SelectedValidator

// Validators strips the stake shares off the selection
func (s Selection) Validators() ValidatorSet {
	var res ValidatorSet
	for _, sv := range s {
		res = append(res, sv.Validator)
	}
	return res
}

// TotalStake sums the stakes of the selected validators
func (s Selection) TotalStake() int64 {
	return s.Validators().TotalStake()
}

// StakeRange denotes the inclusive bounds of a stake drawn before capping
type StakeRange struct {
	Min int64 `toml:"Min"`
	Max int64 `toml:"Max"`
}

func (sr StakeRange) String() string {
	return fmt.Sprintf("[%d, %d]", sr.Min, sr.Max)
}

// Round is the outcome of a single generation and selection cycle
type Round struct {
	Config     Config
	Validators ValidatorSet // Validators in generation order
	Selected   Selection    // Selected validators in draw order
}

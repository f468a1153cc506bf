/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package rotation

import (
	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

// StakeShares computes the percentage of the total selected stake each selected validator holds.
// When the selected validators hold no stake at all, every share is zero.
func StakeShares(selected pos.ValidatorSet) pos.Selection {
	total := selected.TotalStake()

	var res pos.Selection
	for _, v := range selected {
		var share float64
		if total > 0 {
			share = float64(v.Stake) / float64(total) * 100
		}
		res = append(res, pos.SelectedValidator{
			Validator:  v,
			StakeShare: share,
		})
	}

	return res
}

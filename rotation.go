// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package rotation

import (
	rotation "github.com/SmartBFT-Go/stakerotation/internal"
	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

func NewValidatorRotation(logger pos.Logger) *rotation.Rotation {
	return &rotation.Rotation{
		GenerateValidatorSet: rotation.GenerateValidators,
		SelectValidatorSet:   rotation.SelectValidators,
		Logger:               logger,
	}
}

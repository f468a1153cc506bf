// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"

	rotation "github.com/SmartBFT-Go/stakerotation"
	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

func TestNewValidatorRotation(t *testing.T) {
	logConfig := zap.NewDevelopmentConfig()
	logger, _ := logConfig.Build()
	// Check that the implementation correctly implements the interface
	var myRotation pos.Rotation
	myRotation = rotation.NewValidatorRotation(logger.Sugar())

	validators := myRotation.GenerateValidators(10, 100)
	assert.Len(t, validators, 10)

	selected := myRotation.SelectValidators(validators, 3, 42)
	assert.Len(t, selected, 3)
	assert.Equal(t, selected, myRotation.SelectValidators(validators, 3, 42))
}

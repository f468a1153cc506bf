package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorSet(t *testing.T) {
	vs := ValidatorSet{
		{ID: ValidatorID(1), Stake: 100},
		{ID: ValidatorID(2), Stake: 300},
		{ID: ValidatorID(3), Stake: 100},
		{ID: ValidatorID(4), Stake: 200},
	}

	assert.Equal(t, []string{"Validator_1", "Validator_2", "Validator_3", "Validator_4"}, vs.IDs())
	assert.Equal(t, int64(700), vs.TotalStake())
	assert.True(t, vs.Contains("Validator_3"))
	assert.False(t, vs.Contains("Validator_5"))

	sorted := vs.SortedByStake()
	assert.Equal(t, []string{"Validator_2", "Validator_4", "Validator_1", "Validator_3"}, sorted.IDs())
	// The original order is left intact
	assert.Equal(t, "Validator_1", vs[0].ID)

	assert.Equal(t, "Validator_2(300)", vs[1].String())
	assert.Zero(t, ValidatorSet(nil).TotalStake())
}

func TestSelection(t *testing.T) {
	s := Selection{
		{Validator: Validator{ID: "A", Stake: 30}, StakeShare: 75},
		{Validator: Validator{ID: "B", Stake: 10}, StakeShare: 25},
	}
	assert.Equal(t, ValidatorSet{{ID: "A", Stake: 30}, {ID: "B", Stake: 10}}, s.Validators())
	assert.Equal(t, int64(40), s.TotalStake())
}

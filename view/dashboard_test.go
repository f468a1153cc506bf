package view

import (
	"testing"

	ui "github.com/gizak/termui/v3"

	"github.com/SmartBFT-Go/stakerotation/example/mock"
	pos "github.com/SmartBFT-Go/stakerotation/pkg"
	"github.com/stretchr/testify/assert"
)

func newMockRotation() *mock.RotationMock {
	var validators pos.ValidatorSet
	for i, stake := range []int64{100, 300, 50, 250, 0, 400, 200, 150, 350, 120} {
		validators = append(validators, pos.Validator{ID: pos.ValidatorID(i + 1), Stake: stake})
	}
	return &mock.RotationMock{Validators: validators}
}

func TestDashboardPlay(t *testing.T) {
	rotation := newMockRotation()

	config := pos.DefaultConfig()
	config.NumValidators = 8
	config.NumSelected = 3
	config.MaxStakePerValidator = 500
	d := NewDashboard(rotation, config)
	d.Play()

	assert.Equal(t, 1, rotation.Rounds)
	assert.Len(t, d.Round().Validators, 8)
	assert.Len(t, d.Round().Selected, 3)

	// Header plus one row per validator, sorted by stake
	assert.Len(t, d.validators.Rows, 9)
	assert.Equal(t, []string{"#", "id", "stake"}, d.validators.Rows[0])
	assert.Equal(t, []string{"0", "Validator_6", "400"}, d.validators.Rows[1])
	// Selected validators are highlighted where they rank by stake
	green := ui.NewStyle(ui.ColorGreen)
	for _, row := range []int{2, 6, 7} {
		assert.Equal(t, green, d.validators.RowStyles[row])
	}
	_, highlighted := d.validators.RowStyles[1]
	assert.False(t, highlighted)

	assert.Len(t, d.selected.Rows, 4)
	assert.Equal(t, []string{"Validator_1", "100", "22.22"}, d.selected.Rows[1])
	assert.Contains(t, d.selected.Title, "seed=42")

	assert.Equal(t, []string{"1", "2", "3"}, d.shares.Labels)
	assert.InDeltaSlice(t, []float64{100.0 / 450 * 100, 300.0 / 450 * 100, 50.0 / 450 * 100}, d.shares.Data, 1e-9)
	assert.Zero(t, d.shares.MaxVal)

	assert.Contains(t, d.parameters.Text, "[8](fg:green)")
}

func TestDashboardHandleKey(t *testing.T) {
	rotation := newMockRotation()
	d := NewDashboard(rotation, pos.DefaultConfig())
	d.Play()

	assert.Equal(t, ActionReplay, d.HandleKey("K"))
	assert.Equal(t, 2, rotation.Rounds)
	assert.Len(t, d.Round().Selected, 6)

	assert.Equal(t, ActionReplay, d.HandleKey("S"))
	assert.Equal(t, int64(43), d.Round().Config.Seed)

	assert.Equal(t, ActionNone, d.HandleKey("x"))
	assert.Equal(t, ActionQuit, d.HandleKey("q"))
	assert.Equal(t, 3, rotation.Rounds)
}

func TestDashboardZeroStake(t *testing.T) {
	rotation := &mock.RotationMock{Validators: pos.ValidatorSet{{ID: "Validator_1"}, {ID: "Validator_2"}}}
	config := pos.DefaultConfig()
	config.NumSelected = 2
	d := NewDashboard(rotation, config)
	d.Play()

	assert.Equal(t, float64(100), d.shares.MaxVal)
	assert.Equal(t, []float64{0, 0}, d.shares.Data)
}

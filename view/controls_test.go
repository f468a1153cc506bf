package view

import (
	"testing"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
	"github.com/stretchr/testify/assert"
)

func TestApplyKey(t *testing.T) {
	base := pos.DefaultConfig()

	for _, tst := range []struct {
		key            string
		mutate         func(c *pos.Config)
		expectedAction Action
	}{
		{key: "v", mutate: func(c *pos.Config) { c.NumValidators-- }, expectedAction: ActionReplay},
		{key: "V", mutate: func(c *pos.Config) { c.NumValidators++ }, expectedAction: ActionReplay},
		{key: "m", mutate: func(c *pos.Config) { c.MaxStakePerValidator -= 10 }, expectedAction: ActionReplay},
		{key: "M", mutate: func(c *pos.Config) { c.MaxStakePerValidator += 10 }, expectedAction: ActionReplay},
		{key: "k", mutate: func(c *pos.Config) { c.NumSelected-- }, expectedAction: ActionReplay},
		{key: "K", mutate: func(c *pos.Config) { c.NumSelected++ }, expectedAction: ActionReplay},
		{key: "s", mutate: func(c *pos.Config) { c.Seed-- }, expectedAction: ActionReplay},
		{key: "S", mutate: func(c *pos.Config) { c.Seed++ }, expectedAction: ActionReplay},
		{key: "r", mutate: func(c *pos.Config) {}, expectedAction: ActionReplay},
		{key: "q", mutate: func(c *pos.Config) {}, expectedAction: ActionQuit},
		{key: "<C-c>", mutate: func(c *pos.Config) {}, expectedAction: ActionQuit},
		{key: "<Resize>", mutate: func(c *pos.Config) {}, expectedAction: ActionResize},
		{key: "x", mutate: func(c *pos.Config) {}, expectedAction: ActionNone},
	} {
		t.Run(tst.key, func(t *testing.T) {
			expected := base
			tst.mutate(&expected)

			config, action := ApplyKey(base, tst.key)
			assert.Equal(t, tst.expectedAction, action)
			assert.Equal(t, expected, config)
		})
	}
}

func TestApplyKeyClamps(t *testing.T) {
	config := pos.Config{
		NumValidators:        5,
		MaxStakePerValidator: 50,
		NumSelected:          1,
		Seed:                 0,
		RawStakeRange:        pos.DefaultRawStakeRange,
	}

	for _, key := range []string{"v", "m", "k", "s"} {
		next, action := ApplyKey(config, key)
		assert.Equal(t, ActionReplay, action)
		assert.Equal(t, config, next)
	}

	config = pos.Config{
		NumValidators:        50,
		MaxStakePerValidator: 495,
		NumSelected:          10,
		Seed:                 10000,
		RawStakeRange:        pos.DefaultRawStakeRange,
	}

	next, _ := ApplyKey(config, "M")
	assert.Equal(t, int64(500), next.MaxStakePerValidator)

	for _, key := range []string{"V", "K", "S"} {
		next, _ := ApplyKey(config, key)
		assert.Equal(t, config, next)
	}
}

package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
	"github.com/KirkDiggler/dungeon-api/internal/errors"
)

func validConfig() dungeon.Config {
	return dungeon.Config{
		Width:             40,
		Depth:             40,
		Divisions:         6,
		SizeConstrain:     8,
		AcceptableRatio:   3,
		WallWidth:         1,
		WallHeight:        3,
		DoorWidth:         2,
		SubtractedPercent: 30,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dungeon.Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(*dungeon.Config) {},
		},
		{
			name:   "negative origin is fine",
			mutate: func(c *dungeon.Config) { c.StartX = -20; c.StartZ = -20 },
		},
		{
			name:   "endless with zero divisions",
			mutate: func(c *dungeon.Config) { c.Endless = true; c.Divisions = 0 },
		},
		{
			name:    "zero width",
			mutate:  func(c *dungeon.Config) { c.Width = 0 },
			wantErr: true,
		},
		{
			name:    "negative depth",
			mutate:  func(c *dungeon.Config) { c.Depth = -5 },
			wantErr: true,
		},
		{
			name:    "negative divisions",
			mutate:  func(c *dungeon.Config) { c.Divisions = -1 },
			wantErr: true,
		},
		{
			name:    "zero wall width",
			mutate:  func(c *dungeon.Config) { c.WallWidth = 0 },
			wantErr: true,
		},
		{
			name:    "zero wall height",
			mutate:  func(c *dungeon.Config) { c.WallHeight = 0 },
			wantErr: true,
		},
		{
			name:    "zero door width",
			mutate:  func(c *dungeon.Config) { c.DoorWidth = 0 },
			wantErr: true,
		},
		{
			name:    "negative door offset",
			mutate:  func(c *dungeon.Config) { c.DoorOffset = -1 },
			wantErr: true,
		},
		{
			name:    "ratio below one",
			mutate:  func(c *dungeon.Config) { c.AcceptableRatio = 0.5 },
			wantErr: true,
		},
		{
			name:    "percent above hundred",
			mutate:  func(c *dungeon.Config) { c.SubtractedPercent = 101 },
			wantErr: true,
		},
		{
			name:    "size constrain not above wall width",
			mutate:  func(c *dungeon.Config) { c.SizeConstrain = 1 },
			wantErr: true,
		},
		{
			name:    "size constrain swallows the footprint",
			mutate:  func(c *dungeon.Config) { c.SizeConstrain = 40 },
			wantErr: true,
		},
		{
			name:    "door too wide for any wall",
			mutate:  func(c *dungeon.Config) { c.DoorWidth = 38 },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigValidate_Nil(t *testing.T) {
	var cfg *dungeon.Config
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_FieldEquivalence(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		Floors:       18,
		Elevators:    2,
		Capacity:     12,
		FloorHeightM: 3.0,
		SpeedMPS:     1.5,
		DwellTimeS:   5,
		SpawnProb:    0.05,
		HorizonS:     3600,
		Seed:         42,
	}
	assert.Equal(t, want, got)
}

func TestConfig_SecondsPerFloor(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2.0, cfg.SecondsPerFloor())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default is valid", func(c *Config) {}, true},
		{"one floor", func(c *Config) { c.Floors = 1 }, false},
		{"no elevators", func(c *Config) { c.Elevators = 0 }, false},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, false},
		{"negative floor height", func(c *Config) { c.FloorHeightM = -1 }, false},
		{"zero speed", func(c *Config) { c.SpeedMPS = 0 }, false},
		{"zero dwell", func(c *Config) { c.DwellTimeS = 0 }, false},
		{"spawn prob above one", func(c *Config) { c.SpawnProb = 1.5 }, false},
		{"negative spawn prob", func(c *Config) { c.SpawnProb = -0.1 }, false},
		{"zero horizon", func(c *Config) { c.HorizonS = 0 }, false},
		{"spawn prob exactly one", func(c *Config) { c.SpawnProb = 1.0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

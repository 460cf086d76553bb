package sim

import "fmt"

// Config groups the building and simulation parameters for NewEnvironment.
type Config struct {
	Floors       int     // number of served floors, 1-based (must be >= 2)
	Elevators    int     // number of elevator cars (must be >= 1)
	Capacity     int     // passengers per car (must be >= 1)
	FloorHeightM float64 // floor-to-floor height in meters
	SpeedMPS     float64 // rated car speed in meters per second
	DwellTimeS   int     // seconds a car holds its doors open at a stop
	SpawnProb    float64 // per-tick probability of a new passenger (in [0, 1])
	HorizonS     int64   // total simulation horizon in ticks (seconds)
	Seed         int64   // master seed for all RNG subsystems
}

// DefaultConfig returns the baseline 18-floor, 2-car building.
func DefaultConfig() Config {
	return Config{
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
}

// SecondsPerFloor is the rated travel time between adjacent floors.
func (c Config) SecondsPerFloor() float64 {
	return c.FloorHeightM / c.SpeedMPS
}

// Validate reports the first configuration parameter that is out of range.
func (c Config) Validate() error {
	if c.Floors < 2 {
		return fmt.Errorf("config: floors must be >= 2, got %d", c.Floors)
	}
	if c.Elevators < 1 {
		return fmt.Errorf("config: elevators must be >= 1, got %d", c.Elevators)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("config: capacity must be >= 1, got %d", c.Capacity)
	}
	if c.FloorHeightM <= 0 {
		return fmt.Errorf("config: floor height must be positive, got %v", c.FloorHeightM)
	}
	if c.SpeedMPS <= 0 {
		return fmt.Errorf("config: speed must be positive, got %v", c.SpeedMPS)
	}
	if c.DwellTimeS < 1 {
		return fmt.Errorf("config: dwell time must be >= 1, got %d", c.DwellTimeS)
	}
	if c.SpawnProb < 0 || c.SpawnProb > 1 {
		return fmt.Errorf("config: spawn probability must be in [0, 1], got %v", c.SpawnProb)
	}
	if c.HorizonS < 1 {
		return fmt.Errorf("config: horizon must be >= 1, got %d", c.HorizonS)
	}
	return nil
}

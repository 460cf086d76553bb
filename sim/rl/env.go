// Package rl adapts the simulation environment to the fixed-shape
// observation/action interface learning agents expect: bounded integer
// vectors, a reset/step episode loop and an explicit action space.
package rl

import (
	"github.com/liftsim/liftsim/sim"
)

// MultiDiscrete describes a vector action or observation component; each
// element is the number of values the corresponding slot can take.
type MultiDiscrete []int

// Observation is the flat, fixed-shape view of the simulation. Floors are
// 0-based here (clipped into [0, floors-1]) and loads are clipped to
// capacity, so every field stays inside its declared space.
type Observation struct {
	ElevatorFloor []int
	ElevatorLoad  []int
	Time          int64
}

// Env wraps a sim.Environment behind the episode interface.
type Env struct {
	Config sim.Config
	Sim    *sim.Environment
}

// NewEnv builds an adapter around a fresh environment. dispatcher may be
// nil for the baseline policy.
func NewEnv(cfg sim.Config, dispatcher sim.Dispatcher) (*Env, error) {
	inner, err := sim.NewEnvironment(cfg, dispatcher, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Env{Config: cfg, Sim: inner}, nil
}

// ObservationFloorSpace describes the per-car floor component.
func (e *Env) ObservationFloorSpace() MultiDiscrete {
	return uniformVector(e.Config.Elevators, e.Config.Floors)
}

// ObservationLoadSpace describes the per-car load component.
func (e *Env) ObservationLoadSpace() MultiDiscrete {
	return uniformVector(e.Config.Elevators, e.Config.Capacity+1)
}

// ActionSpace describes the action vector: one target floor per car,
// with 0 meaning no-op.
func (e *Env) ActionSpace() MultiDiscrete {
	return uniformVector(e.Config.Elevators, e.Config.Floors+1)
}

// Reset starts a new episode. A seed of 0 keeps the configured seed.
func (e *Env) Reset(seed int64) (Observation, sim.Info) {
	if seed != 0 {
		e.Sim.ResetWithSeed(seed)
	} else {
		e.Sim.Reset()
	}
	return e.observe(), sim.Info{ActionMask: e.Sim.ValidActions()}
}

// Step forwards the action vector into the simulation and returns the
// flat observation, reward, terminated and truncated flags, and the
// action mask for the next step. Truncated is always false: the horizon
// is part of the task, so reaching it terminates the episode.
func (e *Env) Step(action []int) (Observation, float64, bool, bool, sim.Info, error) {
	_, reward, terminated, info, err := e.Sim.Step(action)
	if err != nil {
		return Observation{}, 0, false, false, sim.Info{}, err
	}
	return e.observe(), reward, terminated, false, info, nil
}

// observe builds the clipped, 0-based flat observation.
func (e *Env) observe() Observation {
	obs := Observation{
		ElevatorFloor: make([]int, len(e.Sim.Elevators)),
		ElevatorLoad:  make([]int, len(e.Sim.Elevators)),
		Time:          e.Sim.Clock,
	}
	for i, car := range e.Sim.Elevators {
		obs.ElevatorFloor[i] = clip(car.CurrentFloor-1, 0, e.Config.Floors-1)
		obs.ElevatorLoad[i] = clip(car.Load(), 0, e.Config.Capacity)
	}
	return obs
}

func uniformVector(n, value int) MultiDiscrete {
	v := make(MultiDiscrete, n)
	for i := range v {
		v[i] = value
	}
	return v
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

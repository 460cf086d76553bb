// Package workload provides passenger traffic generation for the simulator.
//
// A TrafficProfile is a pure sampler over origin/destination floors; the
// environment owns spawn timing (one Bernoulli trial per tick), so swapping
// profiles never perturbs the arrival stream itself.
package workload

import (
	"fmt"
	"math/rand"
)

// LobbyFloor is the ground floor where up-peak and down-peak traffic
// concentrates.
const LobbyFloor = 1

// TrafficProfile samples one trip (origin floor, destination floor) for a
// building with the given number of floors. Floors are 1-based and the
// returned origin and destination always differ.
type TrafficProfile interface {
	Name() string
	SampleTrip(rng *rand.Rand, floors int) (origin, dest int)
}

// Interfloor is uniform office traffic: origin uniform over all floors,
// destination uniform over the remaining floors.
type Interfloor struct{}

func (Interfloor) Name() string { return "interfloor" }

func (Interfloor) SampleTrip(rng *rand.Rand, floors int) (int, int) {
	origin := 1 + rng.Intn(floors)
	dest := origin
	for dest == origin {
		dest = 1 + rng.Intn(floors)
	}
	return origin, dest
}

// UpPeak models morning rush: with probability LobbyFraction the trip
// starts at the lobby and goes to a uniform upper floor; the remainder is
// ordinary interfloor traffic.
type UpPeak struct {
	LobbyFraction float64 // in [0, 1]
}

func (UpPeak) Name() string { return "uppeak" }

func (p UpPeak) SampleTrip(rng *rand.Rand, floors int) (int, int) {
	if rng.Float64() < p.LobbyFraction {
		dest := LobbyFloor + 1 + rng.Intn(floors-1)
		return LobbyFloor, dest
	}
	return Interfloor{}.SampleTrip(rng, floors)
}

// DownPeak models evening rush: the mirror of UpPeak, trips from a uniform
// upper floor down to the lobby.
type DownPeak struct {
	LobbyFraction float64 // in [0, 1]
}

func (DownPeak) Name() string { return "downpeak" }

func (p DownPeak) SampleTrip(rng *rand.Rand, floors int) (int, int) {
	if rng.Float64() < p.LobbyFraction {
		origin := LobbyFloor + 1 + rng.Intn(floors-1)
		return origin, LobbyFloor
	}
	return Interfloor{}.SampleTrip(rng, floors)
}

// DefaultLobbyFraction is the share of peak traffic touching the lobby.
const DefaultLobbyFraction = 0.8

// NewTrafficProfile creates a traffic profile by name.
// Valid names: "interfloor", "uppeak", "downpeak".
func NewTrafficProfile(name string) (TrafficProfile, error) {
	switch name {
	case "", "interfloor":
		return Interfloor{}, nil
	case "uppeak":
		return UpPeak{LobbyFraction: DefaultLobbyFraction}, nil
	case "downpeak":
		return DownPeak{LobbyFraction: DefaultLobbyFraction}, nil
	default:
		return nil, fmt.Errorf("unknown traffic profile %q; valid profiles: [interfloor, uppeak, downpeak]", name)
	}
}

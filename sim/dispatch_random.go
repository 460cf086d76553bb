package sim

import (
	"math/rand"

	"github.com/liftsim/liftsim/sim/trace"
)

// RandomDispatcher assigns hall calls uniformly across cars with space.
type RandomDispatcher struct {
	rand *rand.Rand
}

// NewRandomDispatcher creates the uniform-random dispatcher.
func NewRandomDispatcher(rng *rand.Rand) *RandomDispatcher {
	return &RandomDispatcher{rand: rng}
}

func (d *RandomDispatcher) Assign(clock int64, passengers []*Passenger, elevators []*Elevator, tr *trace.SimulationTrace) {
	for _, p := range passengers {
		if p.AssignedElevator != Unset {
			continue
		}
		candidates := make([]*Elevator, 0, len(elevators))
		for _, e := range elevators {
			if !e.IsFull() {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) == 0 {
			recordDispatch(tr, clock, p, Unset, "all cars full", nil)
			continue
		}
		best := candidates[d.rand.Intn(len(candidates))]
		p.AssignedElevator = best.ID
		best.EnqueueStop(p.OriginFloor)
		recordDispatch(tr, clock, p, best.ID, "random", nil)
	}
}

package sim

import (
	"github.com/liftsim/liftsim/sim/trace"
)

// RoundRobinDispatcher rotates hall calls across cars with space,
// irrespective of position. Useful as a comparison baseline.
type RoundRobinDispatcher struct {
	next int
}

// NewRoundRobinDispatcher creates the rotating dispatcher.
func NewRoundRobinDispatcher() *RoundRobinDispatcher {
	return &RoundRobinDispatcher{}
}

func (d *RoundRobinDispatcher) Assign(clock int64, passengers []*Passenger, elevators []*Elevator, tr *trace.SimulationTrace) {
	for _, p := range passengers {
		if p.AssignedElevator != Unset {
			continue
		}
		best := d.pickElevator(elevators)
		if best == nil {
			recordDispatch(tr, clock, p, Unset, "all cars full", nil)
			continue
		}
		p.AssignedElevator = best.ID
		best.EnqueueStop(p.OriginFloor)
		recordDispatch(tr, clock, p, best.ID, "round robin", nil)
	}
}

// pickElevator returns the next non-full car in rotation order.
func (d *RoundRobinDispatcher) pickElevator(elevators []*Elevator) *Elevator {
	n := len(elevators)
	for i := 0; i < n; i++ {
		e := elevators[(d.next+i)%n]
		if e.IsFull() {
			continue
		}
		d.next = (d.next + i + 1) % n
		return e
	}
	return nil
}

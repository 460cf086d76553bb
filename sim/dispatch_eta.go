package sim

import (
	"github.com/liftsim/liftsim/sim/trace"
)

// ETADispatcher is the baseline greedy policy: each new hall call goes to
// the nearest car with space, measured by current-floor distance. Queue
// ordering on the car is ignored, which keeps the estimate an ETA proxy
// rather than a true ETA.
type ETADispatcher struct {
	secondsPerFloor float64
}

// NewETADispatcher creates the baseline nearest-car dispatcher.
func NewETADispatcher(secondsPerFloor float64) *ETADispatcher {
	return &ETADispatcher{secondsPerFloor: secondsPerFloor}
}

func (d *ETADispatcher) Assign(clock int64, passengers []*Passenger, elevators []*Elevator, tr *trace.SimulationTrace) {
	for _, p := range passengers {
		if p.AssignedElevator != Unset {
			continue
		}
		best := d.pickElevator(elevators, p.OriginFloor)
		if best == nil {
			recordDispatch(tr, clock, p, Unset, "all cars full", nil)
			continue
		}
		p.AssignedElevator = best.ID
		best.EnqueueStop(p.OriginFloor)
		if tr.Enabled() {
			candidates := scoreCandidates(elevators, p.OriginFloor, func(e *Elevator) float64 {
				return float64(absInt(e.CurrentFloor-p.OriginFloor)) * d.secondsPerFloor
			})
			recordDispatch(tr, clock, p, best.ID, "nearest car", candidates)
		}
	}
}

// pickElevator returns the closest non-full car, or nil when every car is
// at capacity. Ties go to the lower car ID (slice order).
func (d *ETADispatcher) pickElevator(elevators []*Elevator, origin int) *Elevator {
	var best *Elevator
	bestDist := 0
	for _, e := range elevators {
		if e.IsFull() {
			continue
		}
		dist := absInt(e.CurrentFloor - origin)
		if best == nil || dist < bestDist {
			best = e
			bestDist = dist
		}
	}
	return best
}

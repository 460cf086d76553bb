package sim

import (
	"github.com/sirupsen/logrus"
	"github.com/tiendc/go-deepcopy"

	"github.com/liftsim/liftsim/sim/trace"
)

// Cost weights, in seconds. Pending stops dominate raw distance so a busy
// nearby car loses to a free car a few floors away.
const (
	costPerPendingStop  = 4.0
	costDirectionChange = 4.0
)

// CostDispatcher scores every car on a simulated copy of its state and
// assigns each hall call to the cheapest one. The cost combines travel
// time at rated speed, the remaining dwell when the doors are open, a
// penalty per pending stop, and a penalty for reversing direction.
type CostDispatcher struct {
	secondsPerFloor float64
	dwellTimeS      int
}

// NewCostDispatcher creates the cost-scored dispatcher.
func NewCostDispatcher(secondsPerFloor float64, dwellTimeS int) *CostDispatcher {
	return &CostDispatcher{secondsPerFloor: secondsPerFloor, dwellTimeS: dwellTimeS}
}

func (d *CostDispatcher) Assign(clock int64, passengers []*Passenger, elevators []*Elevator, tr *trace.SimulationTrace) {
	for _, p := range passengers {
		if p.AssignedElevator != Unset {
			continue
		}

		var best *Elevator
		bestCost := 0.0
		for _, e := range elevators {
			if e.IsFull() {
				continue
			}
			cost := d.cost(e, p.OriginFloor)
			if best == nil || cost < bestCost {
				best = e
				bestCost = cost
			}
		}
		if best == nil {
			recordDispatch(tr, clock, p, Unset, "all cars full", nil)
			continue
		}

		p.AssignedElevator = best.ID
		best.EnqueueStop(p.OriginFloor)
		if tr.Enabled() {
			candidates := scoreCandidates(elevators, p.OriginFloor, func(e *Elevator) float64 {
				return d.cost(e, p.OriginFloor)
			})
			recordDispatch(tr, clock, p, best.ID, "lowest cost", candidates)
		}
	}
}

// cost estimates the seconds until the car could serve a call at origin.
// The car is scored on a deep copy with the call's stop enqueued, so the
// pending-stop count reflects the state the car would be in after taking
// the call.
func (d *CostDispatcher) cost(elevator *Elevator, origin int) float64 {
	simCar := new(Elevator)
	if err := deepcopy.Copy(simCar, elevator); err != nil {
		logrus.Panicf("cost dispatcher: copying car state: %v", err)
	}
	simCar.EnqueueStop(origin)

	// Base cost: travel time to the call at rated speed.
	cost := float64(absInt(elevator.CurrentFloor-origin)) * d.secondsPerFloor

	// The doors have to finish their dwell before the car moves again.
	if simCar.MoveState == MoveDwell {
		cost += float64(simCar.DwellRemaining)
	}

	// Penalty per stop already committed (the new call itself is free).
	cost += float64(len(simCar.TargetQueue)-1) * costPerPendingStop

	// Penalty if serving the call means reversing direction.
	if elevator.Direction != 0 {
		targetDir := directionOf(elevator.CurrentFloor, origin)
		if targetDir != 0 && targetDir != elevator.Direction {
			cost += costDirectionChange
		}
	}

	return cost
}

func directionOf(from, to int) int {
	if from < to {
		return 1
	}
	if from > to {
		return -1
	}
	return 0
}

package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/liftsim/liftsim/sim/trace"
)

// Dispatcher defines the interface for assigning hall calls to cars.
type Dispatcher interface {
	// Assign walks the unassigned passengers and mutates
	// Passenger.AssignedElevator, enqueuing pickup stops on the chosen
	// cars. Passengers a full system cannot take stay unassigned and are
	// retried next tick.
	// Parameters:
	//   clock: current simulation tick
	//   passengers: passengers with AssignedElevator == Unset
	//   elevators: current state of all cars (for state-aware dispatch)
	//   tr: decision trace sink, may be nil
	Assign(clock int64, passengers []*Passenger, elevators []*Elevator, tr *trace.SimulationTrace)
}

// NewDispatcher creates a dispatcher of the specified type.
func NewDispatcher(dispatcherType string, cfg Config, rng *rand.Rand) Dispatcher {
	switch dispatcherType {
	case "", "eta":
		return NewETADispatcher(cfg.SecondsPerFloor())
	case "cost":
		return NewCostDispatcher(cfg.SecondsPerFloor(), cfg.DwellTimeS)
	case "roundrobin":
		return NewRoundRobinDispatcher()
	case "random":
		return NewRandomDispatcher(rng)
	default:
		logrus.Panicf("unknown dispatcher type: %s", dispatcherType)
		return nil
	}
}

// GetAvailableDispatchers returns the list of supported dispatcher types.
func GetAvailableDispatchers() []string {
	return []string{"eta", "cost", "roundrobin", "random"}
}

// recordDispatch writes one decision to the trace when tracing is enabled.
// chosen is Unset when no car could take the call.
func recordDispatch(tr *trace.SimulationTrace, clock int64, p *Passenger, chosen int, reason string, candidates []trace.CandidateScore) {
	if !tr.Enabled() {
		return
	}
	regret := 0.0
	if chosen >= 0 && len(candidates) > 0 {
		best := candidates[0].Score
		var chosenScore float64
		for _, c := range candidates {
			if c.Score < best {
				best = c.Score
			}
			if c.ElevatorID == chosen {
				chosenScore = c.Score
			}
		}
		regret = chosenScore - best
	}
	tr.RecordDispatch(trace.DispatchRecord{
		PassengerID:    p.ID,
		Clock:          clock,
		ChosenElevator: chosen,
		Reason:         reason,
		Candidates:     candidates,
		Regret:         regret,
	})
}

// scoreCandidates builds the candidate list shared by the tracing paths.
func scoreCandidates(elevators []*Elevator, origin int, score func(e *Elevator) float64) []trace.CandidateScore {
	candidates := make([]trace.CandidateScore, 0, len(elevators))
	for _, e := range elevators {
		candidates = append(candidates, trace.CandidateScore{
			ElevatorID: e.ID,
			Score:      score(e),
			Floor:      e.CurrentFloor,
			Load:       e.Load(),
			Distance:   absInt(e.CurrentFloor - origin),
		})
	}
	return candidates
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

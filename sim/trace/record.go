// Package trace provides decision-trace recording for dispatch policy
// analysis. This package has no dependencies on sim/; it stores pure data
// types.
package trace

// CandidateScore captures a counterfactual candidate car with its score and
// the state it was scored on.
type CandidateScore struct {
	ElevatorID int
	Score      float64 // estimated cost in seconds, lower is better
	Floor      int
	Load       int
	Distance   int // floors between the car and the hall call
}

// DispatchRecord captures a single dispatch decision with optional
// counterfactual analysis.
type DispatchRecord struct {
	PassengerID    int
	Clock          int64
	ChosenElevator int // Unset-style -1 when no car could take the call
	Reason         string
	Candidates     []CandidateScore // all scored candidates (nil when not traced)
	Regret         float64          // score(chosen) - min(candidate scores); 0 if chosen is best
}

package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions  int
	UnassignedCount int // calls no car could take at decision time
	MeanRegret      float64
	MaxRegret       float64
	UniqueCars      int
	CarDistribution map[int]int // elevator ID → count of calls assigned
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CarDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Dispatches)

	assigned := 0
	totalRegret := 0.0
	for _, d := range st.Dispatches {
		if d.ChosenElevator < 0 {
			summary.UnassignedCount++
			continue
		}
		assigned++
		summary.CarDistribution[d.ChosenElevator]++
		totalRegret += d.Regret
		if d.Regret > summary.MaxRegret {
			summary.MaxRegret = d.Regret
		}
	}
	if assigned > 0 {
		summary.MeanRegret = totalRegret / float64(assigned)
	}

	summary.UniqueCars = len(summary.CarDistribution)

	return summary
}

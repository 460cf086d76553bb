// Tracks simulation-wide service quality metrics: completions, rejections,
// unserved calls, and waiting/riding time statistics.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating dispatch policies and debugging behavior over time.
type Metrics struct {
	Completed int // passengers delivered to their destination
	Rejected  int // boarding attempts bounced off a full car
	Unserved  int // passengers still in the system at the horizon

	WaitTimes []int64 // per-completion hall wait (ticks)
	RideTimes []int64 // per-completion in-car time (ticks)
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		WaitTimes: make([]int64, 0),
		RideTimes: make([]int64, 0),
	}
}

// RecordCompletion logs one delivered passenger.
func (m *Metrics) RecordCompletion(waitTime, rideTime int64) {
	m.WaitTimes = append(m.WaitTimes, waitTime)
	m.RideTimes = append(m.RideTimes, rideTime)
	m.Completed++
}

// RecordRejection logs one boarding attempt against a full car.
func (m *Metrics) RecordRejection() {
	m.Rejected++
}

// RecordUnserved logs passengers abandoned at the horizon.
func (m *Metrics) RecordUnserved(n int) {
	m.Unserved += n
}

// Summary is the aggregate service report for a finished run. The time
// statistics are meaningful only when HasCompletions is true.
type Summary struct {
	Completed      int
	Rejected       int
	Unserved       int
	HasCompletions bool
	AvgWaitS       float64
	P95WaitS       float64
	AvgRideS       float64
}

// Summarize computes the aggregate service report.
func (m *Metrics) Summarize() Summary {
	s := Summary{
		Completed: m.Completed,
		Rejected:  m.Rejected,
		Unserved:  m.Unserved,
	}
	if len(m.WaitTimes) == 0 {
		return s
	}
	s.HasCompletions = true
	waits := toSortedFloats(m.WaitTimes)
	rides := toSortedFloats(m.RideTimes)
	s.AvgWaitS = stat.Mean(waits, nil)
	s.P95WaitS = stat.Quantile(0.95, stat.Empirical, waits, nil)
	s.AvgRideS = stat.Mean(rides, nil)
	return s
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(ticks int64) {
	s := m.Summarize()
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Simulated Ticks      : %d\n", ticks)
	fmt.Printf("Completed Passengers : %d\n", s.Completed)
	fmt.Printf("Rejected Boardings   : %d\n", s.Rejected)
	fmt.Printf("Unserved at Horizon  : %d\n", s.Unserved)
	if s.HasCompletions {
		fmt.Printf("Average Wait         : %.2f s\n", s.AvgWaitS)
		fmt.Printf("P95 Wait             : %.2f s\n", s.P95WaitS)
		fmt.Printf("Average Ride         : %.2f s\n", s.AvgRideS)
	}
}

func toSortedFloats(values []int64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	sort.Float64s(out)
	return out
}

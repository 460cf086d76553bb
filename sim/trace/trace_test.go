package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		PassengerID:    1,
		Clock:          1000,
		ChosenElevator: 2,
		Reason:         "nearest car",
	})

	// THEN the trace contains one record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].PassengerID != 1 {
		t.Errorf("expected passenger 1, got %d", st.Dispatches[0].PassengerID)
	}
	if st.Dispatches[0].ChosenElevator != 2 {
		t.Errorf("expected car 2, got %d", st.Dispatches[0].ChosenElevator)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{PassengerID: 1, Clock: 100, ChosenElevator: 1, Reason: "nearest car"})
	st.RecordDispatch(DispatchRecord{PassengerID: 2, Clock: 200, ChosenElevator: -1, Reason: "all cars full"})
	st.RecordDispatch(DispatchRecord{PassengerID: 3, Clock: 300, ChosenElevator: 2, Reason: "nearest car"})

	// THEN order is preserved
	if st.Dispatches[0].PassengerID != 1 || st.Dispatches[2].PassengerID != 3 {
		t.Error("dispatch records out of order")
	}
}

func TestTraceEnabled(t *testing.T) {
	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must report disabled")
	}
	if NewSimulationTrace(TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("level none must report disabled")
	}
	if !NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("level decisions must report enabled")
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	for _, level := range []string{"", "none", "decisions"} {
		if !IsValidTraceLevel(level) {
			t.Errorf("level %q must be valid", level)
		}
	}
	if IsValidTraceLevel("verbose") {
		t.Error("level verbose must be invalid")
	}
}

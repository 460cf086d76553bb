package sim

import (
	"math/rand"
	"testing"

	"github.com/liftsim/liftsim/sim/trace"
)

func carsAtFloors(capacity int, floors ...int) []*Elevator {
	cars := make([]*Elevator, len(floors))
	for i, f := range floors {
		cars[i] = NewElevator(i+1, capacity)
		cars[i].CurrentFloor = f
	}
	return cars
}

func TestETADispatcher_PicksNearestCar(t *testing.T) {
	// GIVEN cars at floors 1 and 9 and a call on floor 7
	cars := carsAtFloors(12, 1, 9)
	p := NewPassenger(1, 0, 7, 2)
	d := NewETADispatcher(2.0)

	// WHEN dispatching
	d.Assign(0, []*Passenger{p}, cars, nil)

	// THEN the call goes to the car at floor 9
	if p.AssignedElevator != 2 {
		t.Errorf("assignment: got car %d, want car 2", p.AssignedElevator)
	}
	if target, ok := cars[1].NextTarget(); !ok || target != 7 {
		t.Errorf("pickup stop: got %d (ok=%v), want 7", target, ok)
	}
	if _, ok := cars[0].NextTarget(); ok {
		t.Error("losing car must not gain a stop")
	}
}

func TestETADispatcher_SkipsFullCars(t *testing.T) {
	// GIVEN a nearby full car and a distant empty car
	cars := carsAtFloors(1, 5, 1)
	cars[0].BoardPassenger(99)
	p := NewPassenger(1, 0, 5, 2)
	d := NewETADispatcher(2.0)

	d.Assign(0, []*Passenger{p}, cars, nil)

	if p.AssignedElevator != 2 {
		t.Errorf("assignment: got car %d, want the non-full car 2", p.AssignedElevator)
	}
}

func TestETADispatcher_AllFull_LeavesUnassigned(t *testing.T) {
	cars := carsAtFloors(1, 1, 2)
	cars[0].BoardPassenger(98)
	cars[1].BoardPassenger(99)
	p := NewPassenger(1, 0, 1, 2)
	d := NewETADispatcher(2.0)

	d.Assign(0, []*Passenger{p}, cars, nil)

	if p.AssignedElevator != Unset {
		t.Errorf("assignment: got car %d, want Unset", p.AssignedElevator)
	}
}

func TestCostDispatcher_PrefersIdleOverBusyCar(t *testing.T) {
	// GIVEN an equidistant busy car and idle car for a call on floor 5
	cars := carsAtFloors(12, 3, 7)
	cars[0].EnqueueStop(1)
	cars[0].EnqueueStop(2)
	p := NewPassenger(1, 0, 5, 1)
	d := NewCostDispatcher(2.0, 5)

	// WHEN dispatching
	d.Assign(0, []*Passenger{p}, cars, nil)

	// THEN the pending-stop penalty steers the call to the idle car
	if p.AssignedElevator != 2 {
		t.Errorf("assignment: got car %d, want idle car 2", p.AssignedElevator)
	}
}

func TestCostDispatcher_DoesNotMutateScoredCars(t *testing.T) {
	// GIVEN a car with one pending stop
	cars := carsAtFloors(12, 3)
	cars[0].EnqueueStop(8)
	d := NewCostDispatcher(2.0, 5)

	// WHEN scoring it for a call
	d.cost(cars[0], 5)

	// THEN the live car state is untouched
	if len(cars[0].TargetQueue) != 1 || cars[0].TargetQueue[0] != 8 {
		t.Errorf("scoring mutated the car: queue %v", cars[0].TargetQueue)
	}
}

func TestCostDispatcher_PenalizesDirectionChange(t *testing.T) {
	// GIVEN two equidistant cars, one moving away from the call
	cars := carsAtFloors(12, 4, 8)
	cars[0].Direction = -1 // heading down, call is above
	cars[0].MoveState = MoveMoving
	cars[1].Direction = 0
	p := NewPassenger(1, 0, 6, 1)
	d := NewCostDispatcher(2.0, 5)

	d.Assign(0, []*Passenger{p}, cars, nil)

	if p.AssignedElevator != 2 {
		t.Errorf("assignment: got car %d, want car 2 (no reversal)", p.AssignedElevator)
	}
}

func TestRoundRobinDispatcher_Rotates(t *testing.T) {
	// GIVEN three cars and three calls
	cars := carsAtFloors(12, 1, 1, 1)
	d := NewRoundRobinDispatcher()
	passengers := []*Passenger{
		NewPassenger(1, 0, 2, 3),
		NewPassenger(2, 0, 4, 5),
		NewPassenger(3, 0, 6, 7),
	}

	d.Assign(0, passengers, cars, nil)

	// THEN each car gets exactly one call, in order
	for i, p := range passengers {
		if p.AssignedElevator != i+1 {
			t.Errorf("passenger %d: got car %d, want car %d", p.ID, p.AssignedElevator, i+1)
		}
	}
}

func TestRandomDispatcher_OnlyPicksCarsWithSpace(t *testing.T) {
	// GIVEN one full car and one free car
	cars := carsAtFloors(1, 1, 9)
	cars[0].BoardPassenger(99)
	d := NewRandomDispatcher(rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		p := NewPassenger(i+1, 0, 5, 2)
		d.Assign(0, []*Passenger{p}, cars, nil)
		if p.AssignedElevator != 2 {
			t.Fatalf("passenger %d: got car %d, want the free car 2", p.ID, p.AssignedElevator)
		}
		// keep car 2 from filling up across iterations
		cars[1].Passengers = cars[1].Passengers[:0]
	}
}

func TestNewDispatcher_KnownTypes(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	for _, name := range GetAvailableDispatchers() {
		if d := NewDispatcher(name, cfg, rng); d == nil {
			t.Errorf("NewDispatcher(%q) returned nil", name)
		}
	}
}

func TestNewDispatcher_UnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDispatcher with unknown type must panic")
		}
	}()
	NewDispatcher("sectoring", DefaultConfig(), rand.New(rand.NewSource(1)))
}

func TestDispatch_RecordsTraceDecisions(t *testing.T) {
	// GIVEN tracing at decision level
	tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	cars := carsAtFloors(12, 1, 9)
	p := NewPassenger(1, 5, 7, 2)
	d := NewETADispatcher(2.0)

	// WHEN dispatching
	d.Assign(5, []*Passenger{p}, cars, tr)

	// THEN one record captures the chosen car and both candidates
	if len(tr.Dispatches) != 1 {
		t.Fatalf("dispatch records: got %d, want 1", len(tr.Dispatches))
	}
	rec := tr.Dispatches[0]
	if rec.ChosenElevator != 2 || rec.PassengerID != 1 || rec.Clock != 5 {
		t.Errorf("record: %+v", rec)
	}
	if len(rec.Candidates) != 2 {
		t.Errorf("candidates: got %d, want 2", len(rec.Candidates))
	}
	if rec.Regret != 0 {
		t.Errorf("nearest-car choice is optimal, regret got %v", rec.Regret)
	}
}

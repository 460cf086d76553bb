package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/liftsim/liftsim/sim/trace"
	"github.com/liftsim/liftsim/sim/workload"
)

// Reward shaping weights. Completions earn a flat bonus discounted by how
// long the trip took; backlog, bounced boardings and abandoned calls cost.
const (
	rewardPerCompletion   = 9.0
	penaltyPerWaitingTick = 0.015
	penaltyPerRejection   = 2.0
	penaltyPerUnserved    = 20.0
	penaltyPerWaitSecond  = 0.005
	penaltyPerRideSecond  = 0.002
)

// Environment is the discrete-time lift simulation. One Step advances the
// world by a single tick (one second): spawn traffic, dispatch new hall
// calls, apply external actions, then move every car.
type Environment struct {
	Config     Config
	Dispatcher Dispatcher
	Clock      int64
	Passengers map[int]*Passenger
	Elevators  []*Elevator
	Metrics    *Metrics
	Trace      *trace.SimulationTrace

	traffic         workload.TrafficProfile
	rng             *PartitionedRNG
	nextPassengerID int
	finalized       bool
}

// NewEnvironment builds an environment from cfg. A nil dispatcher falls
// back to the baseline ETA policy and a nil traffic profile to uniform
// interfloor traffic; tr may be nil to disable decision tracing.
func NewEnvironment(cfg Config, dispatcher Dispatcher, traffic workload.TrafficProfile, tr *trace.SimulationTrace) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dispatcher == nil {
		dispatcher = NewETADispatcher(cfg.SecondsPerFloor())
	}
	if traffic == nil {
		traffic = workload.Interfloor{}
	}
	env := &Environment{
		Config:     cfg,
		Dispatcher: dispatcher,
		Trace:      tr,
		traffic:    traffic,
	}
	env.Reset()
	return env, nil
}

// Reset restores the environment to tick zero with the configured seed and
// returns the initial observation. Dispatcher-internal state (rotation
// counters, private RNGs) is not touched; construct a fresh dispatcher when
// a bit-identical replay matters.
func (env *Environment) Reset() Observation {
	return env.ResetWithSeed(env.Config.Seed)
}

// ResetWithSeed is Reset with a seed override for this episode only.
func (env *Environment) ResetWithSeed(seed int64) Observation {
	env.Clock = 0
	env.Passengers = make(map[int]*Passenger)
	env.Elevators = make([]*Elevator, env.Config.Elevators)
	for i := range env.Elevators {
		env.Elevators[i] = NewElevator(i+1, env.Config.Capacity)
	}
	env.Metrics = NewMetrics()
	env.rng = NewPartitionedRNG(NewSimulationKey(seed))
	env.nextPassengerID = 1
	env.finalized = false
	return env.Observe()
}

// Step advances one tick.
//
// actions: per-car target floors (length must equal the car count), 0 for
// no-op, floors 1-based. A nil actions slice runs the tick fully under the
// dispatcher. Returns the next observation, the tick reward, whether the
// horizon was reached, and the valid-action mask in Info.
//
// Stepping a terminated environment finalizes unserved passengers exactly
// once and keeps returning terminated=true.
func (env *Environment) Step(actions []int) (Observation, float64, bool, Info, error) {
	if env.Clock >= env.Config.HorizonS {
		addedUnserved := env.finalizeUnserved()
		reward := env.computeReward(0, addedUnserved, nil)
		return env.Observe(), reward, true, Info{ActionMask: env.ValidActions()}, nil
	}

	prevRejected := env.Metrics.Rejected
	var completed []*Passenger

	env.spawnPassengers()
	env.dispatchNew()
	if actions != nil {
		if err := env.ApplyActions(actions); err != nil {
			return Observation{}, 0, false, Info{}, err
		}
	}
	env.moveElevators(&completed)
	env.Clock++

	terminated := env.Clock >= env.Config.HorizonS
	addedUnserved := 0
	if terminated {
		addedUnserved = env.finalizeUnserved()
	}
	reward := env.computeReward(env.Metrics.Rejected-prevRejected, addedUnserved, completed)
	return env.Observe(), reward, terminated, Info{ActionMask: env.ValidActions()}, nil
}

// spawnPassengers runs the per-tick Bernoulli trial and materializes at
// most one new hall call from the traffic profile.
func (env *Environment) spawnPassengers() {
	rng := env.rng.ForSubsystem(SubsystemTraffic)
	if rng.Float64() > env.Config.SpawnProb {
		return
	}
	origin, dest := env.traffic.SampleTrip(rng, env.Config.Floors)
	pid := env.nextPassengerID
	env.nextPassengerID++
	env.Passengers[pid] = NewPassenger(pid, env.Clock, origin, dest)
	logrus.Infof("<< Passenger %d at %d ticks: floor %d -> %d", pid, env.Clock, origin, dest)
}

// InjectArrival materializes a hall call at the current tick, bypassing
// the traffic profile. Used by callers that drive their own workload.
func (env *Environment) InjectArrival(origin, dest int) (*Passenger, error) {
	if origin < 1 || origin > env.Config.Floors || dest < 1 || dest > env.Config.Floors {
		return nil, fmt.Errorf("inject: floors must be in [1, %d], got %d -> %d", env.Config.Floors, origin, dest)
	}
	if origin == dest {
		return nil, fmt.Errorf("inject: origin and destination must differ, got floor %d", origin)
	}
	pid := env.nextPassengerID
	env.nextPassengerID++
	p := NewPassenger(pid, env.Clock, origin, dest)
	env.Passengers[pid] = p
	return p, nil
}

// dispatchNew hands every unassigned passenger to the dispatcher, in
// passenger ID order so runs are reproducible.
func (env *Environment) dispatchNew() {
	unassigned := make([]*Passenger, 0)
	for _, p := range env.Passengers {
		if p.AssignedElevator == Unset && !p.Boarded() {
			unassigned = append(unassigned, p)
		}
	}
	if len(unassigned) == 0 {
		return
	}
	sort.Slice(unassigned, func(i, j int) bool { return unassigned[i].ID < unassigned[j].ID })
	env.Dispatcher.Assign(env.Clock, unassigned, env.Elevators, env.Trace)
}

// ApplyActions enqueues externally chosen target floors. Target 0 is a
// no-op; out-of-range targets and targets for full cars are ignored, the
// same way a pressed button on a full car changes nothing.
func (env *Environment) ApplyActions(actions []int) error {
	if len(actions) != len(env.Elevators) {
		return fmt.Errorf("actions length %d must equal number of elevators %d", len(actions), len(env.Elevators))
	}
	for i, target := range actions {
		if target == 0 {
			continue
		}
		elevator := env.Elevators[i]
		if target >= 1 && target <= env.Config.Floors && !elevator.IsFull() {
			elevator.EnqueueStop(target)
		}
	}
	return nil
}

// moveElevators advances every car by one tick: dwelling cars count down,
// cars at their head target serve the stop, the rest move one floor.
func (env *Environment) moveElevators(completed *[]*Passenger) {
	for _, elevator := range env.Elevators {
		if elevator.MoveState == MoveDwell {
			elevator.TickDwell(1)
			continue
		}
		target, ok := elevator.NextTarget()
		if !ok {
			elevator.Direction = 0
			elevator.MoveState = MoveIdle
			continue
		}
		if elevator.CurrentFloor == target {
			// Arrived: unload/load and dwell.
			env.processStop(elevator, completed)
			elevator.PopTarget()
			elevator.BeginDwell(env.Config.DwellTimeS)
			continue
		}
		elevator.MoveToward(target)
	}
}

// processStop serves one stop: riders for this floor alight, then waiting
// passengers assigned to this car board until it is full. Bounced
// passengers are unassigned so the next dispatch can retry them.
func (env *Environment) processStop(elevator *Elevator, completed *[]*Passenger) {
	toDrop := make([]int, 0)
	for _, pid := range elevator.Passengers {
		if env.Passengers[pid].DestFloor == elevator.CurrentFloor {
			toDrop = append(toDrop, pid)
		}
	}
	for _, pid := range toDrop {
		passenger := env.Passengers[pid]
		passenger.ArriveTime = env.Clock
		elevator.RemovePassenger(pid)
		wait, okWait := passenger.WaitingTime()
		ride, okRide := passenger.RideTime()
		if okWait && okRide {
			env.Metrics.RecordCompletion(wait, ride)
			*completed = append(*completed, passenger)
			logrus.Infof(">> Passenger %d arrived at floor %d (wait=%ds ride=%ds)",
				pid, elevator.CurrentFloor, wait, ride)
		}
	}

	waiting := make([]*Passenger, 0)
	for _, p := range env.Passengers {
		if p.AssignedElevator == elevator.ID && !p.Boarded() && p.OriginFloor == elevator.CurrentFloor {
			waiting = append(waiting, p)
		}
	}
	sort.Slice(waiting, func(i, j int) bool { return waiting[i].ID < waiting[j].ID })
	for _, p := range waiting {
		if elevator.IsFull() {
			env.Metrics.RecordRejection()
			// Unassign so the passenger can be redispatched and board later.
			p.AssignedElevator = Unset
			continue
		}
		p.BoardTime = env.Clock
		elevator.BoardPassenger(p.ID)
		elevator.EnqueueStop(p.DestFloor)
	}
}

// Observe snapshots the observable system state.
func (env *Environment) Observe() Observation {
	n := len(env.Elevators)
	obs := Observation{
		Time:              env.Clock,
		ElevatorFloor:     make([]int, n),
		ElevatorDirection: make([]int, n),
		DoorState:         make([]int, n),
		IsFull:            make([]int, n),
	}
	for i, e := range env.Elevators {
		obs.ElevatorFloor[i] = e.CurrentFloor
		obs.ElevatorDirection[i] = e.Direction
		if e.DoorState != DoorClosed {
			obs.DoorState[i] = 1
		}
		if e.IsFull() {
			obs.IsFull[i] = 1
		}
	}
	obs.HallCallUp, obs.HallCallDown = env.hallCalls()
	return obs
}

// ValidActions returns the per-car list of valid target floors (including
// 0 = no-op). Full cars only allow no-op until space frees up.
func (env *Environment) ValidActions() [][]int {
	valid := make([][]int, 0, len(env.Elevators))
	for _, e := range env.Elevators {
		if e.IsFull() {
			valid = append(valid, []int{0})
			continue
		}
		targets := make([]int, 0, env.Config.Floors+1)
		for f := 0; f <= env.Config.Floors; f++ {
			targets = append(targets, f)
		}
		valid = append(valid, targets)
	}
	return valid
}

// finalizeUnserved counts passengers still in the system at the horizon,
// exactly once per episode.
func (env *Environment) finalizeUnserved() int {
	if env.finalized {
		return 0
	}
	unserved := 0
	for _, p := range env.Passengers {
		if !p.Arrived() {
			unserved++
		}
	}
	if unserved > 0 {
		env.Metrics.RecordUnserved(unserved)
	}
	env.finalized = true
	return unserved
}

// hallCalls derives the lit call buttons from passengers not yet aboard.
func (env *Environment) hallCalls() (up, down []int) {
	up = make([]int, env.Config.Floors)
	down = make([]int, env.Config.Floors)
	for _, p := range env.Passengers {
		if p.Boarded() {
			continue
		}
		idx := p.OriginFloor - 1
		if p.GoingUp() {
			up[idx] = 1
		} else {
			down[idx] = 1
		}
	}
	return up, down
}

// computeReward shapes the per-tick reward from backlog, this tick's
// rejections and horizon abandonments, and this tick's completed trips.
func (env *Environment) computeReward(deltaRejected, deltaUnserved int, completed []*Passenger) float64 {
	waitingCount := 0
	for _, p := range env.Passengers {
		if !p.Boarded() {
			waitingCount++
		}
	}
	reward := 0.0
	reward -= penaltyPerWaitingTick * float64(waitingCount)
	reward -= penaltyPerRejection * float64(deltaRejected)
	reward -= penaltyPerUnserved * float64(deltaUnserved)
	for _, p := range completed {
		wait, _ := p.WaitingTime()
		ride, _ := p.RideTime()
		reward += rewardPerCompletion
		reward -= penaltyPerWaitSecond * float64(wait)
		reward -= penaltyPerRideSecond * float64(ride)
	}
	return reward
}

// Run drives the environment to the horizon under the dispatcher alone and
// returns the number of ticks simulated.
func (env *Environment) Run() int64 {
	steps := int64(0)
	for {
		_, _, terminated, _, err := env.Step(nil)
		steps++
		if err != nil || terminated {
			return steps
		}
	}
}

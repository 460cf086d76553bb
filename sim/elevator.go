package sim

// DoorState models the car doors.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

// MoveState models the car motion state machine.
type MoveState int

const (
	MoveIdle MoveState = iota
	MoveMoving
	MoveDwell
)

// Elevator is a single car. Floors are 1-based; Direction is -1 (down),
// 0 (idle) or +1 (up). TargetQueue holds pending stop floors in visit
// order with no duplicates. Passengers holds the IDs of riders on board.
type Elevator struct {
	ID             int
	Capacity       int
	CurrentFloor   int
	Direction      int
	DoorState      DoorState
	MoveState      MoveState
	TargetQueue    []int
	Passengers     []int
	DwellRemaining int // ticks left at the current stop
}

// NewElevator creates an idle car parked at floor 1 with closed doors.
func NewElevator(id, capacity int) *Elevator {
	return &Elevator{
		ID:           id,
		Capacity:     capacity,
		CurrentFloor: 1,
		DoorState:    DoorClosed,
		MoveState:    MoveIdle,
		TargetQueue:  make([]int, 0),
		Passengers:   make([]int, 0),
	}
}

// Load returns the number of passengers on board.
func (e *Elevator) Load() int {
	return len(e.Passengers)
}

// IsFull reports whether the car is at capacity.
func (e *Elevator) IsFull() bool {
	return len(e.Passengers) >= e.Capacity
}

// EnqueueStop appends a stop floor unless it is already queued.
func (e *Elevator) EnqueueStop(floor int) {
	for _, f := range e.TargetQueue {
		if f == floor {
			return
		}
	}
	e.TargetQueue = append(e.TargetQueue, floor)
}

// NextTarget returns the head of the stop queue, and false when idle.
func (e *Elevator) NextTarget() (int, bool) {
	if len(e.TargetQueue) == 0 {
		return 0, false
	}
	return e.TargetQueue[0], true
}

// PopTarget removes the head of the stop queue.
func (e *Elevator) PopTarget() {
	if len(e.TargetQueue) > 0 {
		e.TargetQueue = e.TargetQueue[1:]
	}
}

// MoveToward advances the car one floor toward target and updates the
// motion state. Calling it with target == CurrentFloor is a no-op.
func (e *Elevator) MoveToward(target int) {
	switch {
	case target > e.CurrentFloor:
		e.CurrentFloor++
		e.Direction = 1
	case target < e.CurrentFloor:
		e.CurrentFloor--
		e.Direction = -1
	default:
		return
	}
	e.MoveState = MoveMoving
	e.DoorState = DoorClosed
}

// BeginDwell opens the doors and holds the car for dwellTicks.
func (e *Elevator) BeginDwell(dwellTicks int) {
	e.MoveState = MoveDwell
	e.DoorState = DoorOpen
	e.Direction = 0
	e.DwellRemaining = dwellTicks
}

// TickDwell counts down an in-progress dwell by dt ticks. When the dwell
// expires the doors close and the car goes idle.
func (e *Elevator) TickDwell(dt int) {
	if e.MoveState != MoveDwell {
		return
	}
	e.DwellRemaining -= dt
	if e.DwellRemaining <= 0 {
		e.DwellRemaining = 0
		e.DoorState = DoorClosed
		e.MoveState = MoveIdle
	}
}

// BoardPassenger adds a rider. The caller checks IsFull first.
func (e *Elevator) BoardPassenger(id int) {
	e.Passengers = append(e.Passengers, id)
}

// RemovePassenger drops a rider by ID, preserving boarding order.
func (e *Elevator) RemovePassenger(id int) {
	for i, pid := range e.Passengers {
		if pid == id {
			e.Passengers = append(e.Passengers[:i], e.Passengers[i+1:]...)
			return
		}
	}
}

package sim

// Observation is the per-tick view of the system an agent (or logger) sees.
// Slices indexed by car are in car order; hall call slices are indexed by
// floor-1 and hold 1 when the call button is lit.
type Observation struct {
	Time              int64
	ElevatorFloor     []int
	ElevatorDirection []int
	DoorState         []int // 0 closed, 1 open
	IsFull            []int // 0/1 per car
	HallCallUp        []int
	HallCallDown      []int
}

// Info carries step side-channel data alongside the observation.
type Info struct {
	// ActionMask lists, per car, the currently valid targets (0 = no-op).
	ActionMask [][]int
}

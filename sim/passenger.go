package sim

// Unset marks a passenger timestamp or assignment that has not happened yet.
const Unset = -1

// Passenger tracks one trip through the building, from the moment the hall
// call is pressed until the passenger steps out at the destination floor.
//
// Lifecycle: waiting (BoardTime == Unset) → riding (ArriveTime == Unset) →
// arrived. AssignedElevator may be cleared back to Unset when a full car
// forces a redispatch.
type Passenger struct {
	ID               int
	AppearTime       int64 // tick the hall call was made
	OriginFloor      int   // 1-based
	DestFloor        int   // 1-based, never equal to OriginFloor
	AssignedElevator int   // car ID, or Unset
	BoardTime        int64 // tick of boarding, or Unset
	ArriveTime       int64 // tick of alighting, or Unset
}

// NewPassenger creates a waiting passenger with no assignment yet.
func NewPassenger(id int, appearTime int64, origin, dest int) *Passenger {
	return &Passenger{
		ID:               id,
		AppearTime:       appearTime,
		OriginFloor:      origin,
		DestFloor:        dest,
		AssignedElevator: Unset,
		BoardTime:        Unset,
		ArriveTime:       Unset,
	}
}

// Boarded reports whether the passenger has entered a car.
func (p *Passenger) Boarded() bool {
	return p.BoardTime != Unset
}

// Arrived reports whether the passenger has reached the destination floor.
func (p *Passenger) Arrived() bool {
	return p.ArriveTime != Unset
}

// GoingUp reports the direction of the requested trip.
func (p *Passenger) GoingUp() bool {
	return p.DestFloor > p.OriginFloor
}

// WaitingTime returns the ticks spent waiting at the hall call, and false
// while the passenger has not boarded.
func (p *Passenger) WaitingTime() (int64, bool) {
	if !p.Boarded() {
		return 0, false
	}
	return p.BoardTime - p.AppearTime, true
}

// RideTime returns the ticks spent inside the car, and false until the
// passenger has both boarded and arrived.
func (p *Passenger) RideTime() (int64, bool) {
	if !p.Boarded() || !p.Arrived() {
		return 0, false
	}
	return p.ArriveTime - p.BoardTime, true
}

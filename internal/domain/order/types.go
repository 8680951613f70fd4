package order

type Status string

const (
	StatusPending       Status = "pending"
	StatusCollected     Status = "collected"
	StatusInTransit     Status = "in_transit"
	StatusAtDestination Status = "at_destination"
	StatusDelivered     Status = "delivered"
	StatusCancelled     Status = "cancelled"
)

// progression is the forward order of the lifecycle; cancelled sits outside it
// and is reachable from any non-terminal status.
var progression = map[Status]int{
	StatusPending:       0,
	StatusCollected:     1,
	StatusInTransit:     2,
	StatusAtDestination: 3,
	StatusDelivered:     4,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := progression[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	cur, ok := progression[s]
	if !ok {
		return false
	}
	nxt, ok := progression[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

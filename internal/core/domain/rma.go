package domain

// RMAStatus is the lifecycle state of a return request
type RMAStatus string

const (
	RMAPending  RMAStatus = "PENDING"
	RMAAccepted RMAStatus = "ACCEPTED"
	RMARejected RMAStatus = "REJECTED"
	RMAResolved RMAStatus = "RESOLVED"
)

// Valid reports whether s is a known status
func (s RMAStatus) Valid() bool {
	_, ok := rmaTransitions[s]
	return ok
}

// rmaTransitions lists the target states reachable from each state.
// Every state can currently move to every other state: accept, reject and
// resolve are independent admin actions. Tightening the workflow means
// removing entries here.
var rmaTransitions = map[RMAStatus][]RMAStatus{
	RMAPending:  {RMAPending, RMAAccepted, RMARejected, RMAResolved},
	RMAAccepted: {RMAPending, RMAAccepted, RMARejected, RMAResolved},
	RMARejected: {RMAPending, RMAAccepted, RMARejected, RMAResolved},
	RMAResolved: {RMAPending, RMAAccepted, RMARejected, RMAResolved},
}

// CanTransition reports whether an RMA in state from may move to state to
func CanTransition(from, to RMAStatus) bool {
	for _, s := range rmaTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

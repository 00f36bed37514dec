package internal

import "go.uber.org/atomic"

// Identity counters. Zero is never issued, so a zero ID marks an unset value.
var (
	destinationIDs = atomic.NewUint64(0)
	nodeIDs        = atomic.NewUint64(0)
	actionIDs      = atomic.NewUint64(0)
)

// NextDestinationID returns a fresh destination identity.
func NextDestinationID() uint64 {
	return destinationIDs.Inc()
}

// NextNodeID returns a fresh navigation node identity.
func NextNodeID() uint64 {
	return nodeIDs.Inc()
}

// NextActionID returns a fresh alert action identity.
func NextActionID() uint64 {
	return actionIDs.Inc()
}

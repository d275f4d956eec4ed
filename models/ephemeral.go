package models

import "time"

// EphemeralState is the lifecycle state of one ephemeral message record.
// The progression is Active -> Destroying -> Destroyed; Destroyed is
// terminal and any further read or timer event on the record is a no-op.
type EphemeralState int

const (
	EphemeralActive EphemeralState = iota
	EphemeralDestroying
	EphemeralDestroyed
)

// String returns a short label for logging.
func (s EphemeralState) String() string {
	switch s {
	case EphemeralActive:
		return "active"
	case EphemeralDestroying:
		return "destroying"
	case EphemeralDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// EphemeralMessageRecord tracks destruction policy for one message observed
// locally. Records live only in process memory: persisting them would let a
// restart resurrect messages that were due for destruction.
type EphemeralMessageRecord struct {
	// MessageID identifies the message (UUID string).
	MessageID string

	// DestructAt is the wall-clock destruction deadline. The zero value
	// means no time-based destruction (read-count only).
	DestructAt time.Time

	// ReadCount is how many times the message has been read so far.
	ReadCount uint32

	// MaxReadCount is the read budget; reaching it triggers destruction
	// when WipeAfterRead is set.
	MaxReadCount uint32

	// WipeAfterRead enables read-count-triggered destruction.
	WipeAfterRead bool

	// State is the record's lifecycle state, guarded by the policy's lock.
	State EphemeralState
}

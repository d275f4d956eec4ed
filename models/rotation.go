package models

import "time"

// RotationState tracks when the identity keypair was last replaced.
// One record per logged-in account; initialized at login, persisted across
// sessions, cleared at logout.
type RotationState struct {
	// LastRotationAt is the completion time of the most recent successful
	// rotation. The zero value means the account has never rotated, which
	// makes the first ShouldRotate check fire immediately.
	LastRotationAt time.Time `json:"last_rotation_at"`

	// IntervalHours is the rotation period. Keys older than this are
	// considered stale.
	IntervalHours uint32 `json:"interval_hours"`
}

// Interval returns the rotation period as a duration.
func (s RotationState) Interval() time.Duration {
	return time.Duration(s.IntervalHours) * time.Hour
}

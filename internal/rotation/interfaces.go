package rotation

//go:generate mockgen -source=interfaces.go -destination=../mock/rotation_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// Scheduler replaces the identity keypair when it has outlived its
// configured interval. A failed rotation is logged and retried on the next
// check; the session keeps running on the old key either way.
type Scheduler interface {
	// ShouldRotate reports whether the key is due: the interval has
	// elapsed since the last rotation, or no rotation ever happened.
	ShouldRotate(state models.RotationState, now time.Time) bool

	// Rotate performs one rotation: issue a fresh keypair, retire the
	// current one to the grace slot, store and publish the new one, and
	// persist the updated state. Concurrent calls collapse into a single
	// issuance round-trip; the extra callers return immediately.
	Rotate(ctx context.Context) error
}

// Job runs the scheduler in the background: an eager check at start and a
// periodic one thereafter.
type Job interface {
	// Start launches the background loop. It stops any previous run first.
	Start(ctx context.Context)

	// Stop cancels the loop and blocks until it has fully exited. Safe to
	// call when not running.
	Stop()
}

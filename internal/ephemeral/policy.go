// SPDX-License-Identifier: Apache-2.0

// Package ephemeral enforces per-message self-destruction: time-based
// deadlines, read-count budgets, and exactly-once destruction callbacks.
//
// Records live only in process memory. The state machine per record is
// Active -> Destroying -> Destroyed; the terminal flag, checked and set
// under one mutex, is the sole mechanism that makes destruction idempotent
// in a multi-goroutine runtime.
package ephemeral

import (
	"errors"
	"sync"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

var (
	// ErrUnknownMessage is returned for operations on an id that was
	// never registered or was already destroyed and removed.
	ErrUnknownMessage = errors.New("unknown ephemeral message")
)

// DestructionCallback is invoked exactly once per destroyed message, after
// the record is gone. It scrubs whatever plaintext copies the host keeps
// (preview cache, UI buffers). An error does not resurrect the record.
type DestructionCallback func(messageID string) error

// Policy schedules and executes message destruction.
type Policy interface {
	// Register starts tracking a message. destructAt zero means no
	// deadline; maxReadCount is only consulted when wipeAfterRead is set.
	// Re-registering a live id replaces its policy and timer.
	Register(messageID string, destructAt time.Time, maxReadCount uint32, wipeAfterRead bool)

	// OnRead records one read. When the read budget is exhausted the
	// message is scheduled for destruction after the display grace
	// period. Reads of unknown or destroyed messages return
	// [ErrUnknownMessage].
	OnRead(messageID string) error

	// Destroy destroys the message now: cancels its timer, removes the
	// record, and fires the destruction callback. Exactly once per id;
	// later calls return [ErrUnknownMessage].
	Destroy(messageID string) error

	// State reports the record's lifecycle state.
	State(messageID string) (models.EphemeralState, error)

	// Shutdown cancels every pending timer and drops all records without
	// firing callbacks. Used on logout; the messages themselves are gone
	// with the session.
	Shutdown()
}

type tracked struct {
	rec   models.EphemeralMessageRecord
	timer *time.Timer
}

type policy struct {
	onDestroy DestructionCallback
	readGrace time.Duration
	log       *logger.Logger

	mu      sync.Mutex
	records map[string]*tracked
}

// NewPolicy constructs a [Policy]. readGrace is how long a message stays
// visible after its final read before destruction fires.
func NewPolicy(onDestroy DestructionCallback, readGrace time.Duration, log *logger.Logger) Policy {
	return &policy{
		onDestroy: onDestroy,
		readGrace: readGrace,
		log:       log,
		records:   make(map[string]*tracked),
	}
}

// Register implements [Policy].
func (p *policy) Register(messageID string, destructAt time.Time, maxReadCount uint32, wipeAfterRead bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.records[messageID]; ok && old.timer != nil {
		old.timer.Stop()
	}

	t := &tracked{
		rec: models.EphemeralMessageRecord{
			MessageID:     messageID,
			DestructAt:    destructAt,
			MaxReadCount:  maxReadCount,
			WipeAfterRead: wipeAfterRead,
			State:         models.EphemeralActive,
		},
	}

	if !destructAt.IsZero() {
		delay := time.Until(destructAt)
		if delay < 0 {
			delay = 0
		}
		t.timer = time.AfterFunc(delay, func() { p.destroy(messageID) })
	}

	p.records[messageID] = t

	p.log.Debug().
		Str("message_id", messageID).
		Bool("timed", !destructAt.IsZero()).
		Bool("wipe_after_read", wipeAfterRead).
		Msg("ephemeral message registered")
}

// OnRead implements [Policy].
func (p *policy) OnRead(messageID string) error {
	p.mu.Lock()

	t, ok := p.records[messageID]
	if !ok || t.rec.State != models.EphemeralActive {
		p.mu.Unlock()
		return ErrUnknownMessage
	}

	if !t.rec.WipeAfterRead {
		p.mu.Unlock()
		return nil
	}

	t.rec.ReadCount++
	exhausted := t.rec.ReadCount >= t.rec.MaxReadCount
	if exhausted {
		// Give the reader the grace period, then destroy. The terminal
		// guard in destroy absorbs a race with the deadline timer.
		t.rec.State = models.EphemeralDestroying
		if t.timer != nil {
			t.timer.Stop()
		}
		t.timer = time.AfterFunc(p.readGrace, func() { p.destroy(messageID) })
	}
	p.mu.Unlock()

	if exhausted {
		p.log.Debug().Str("message_id", messageID).Msg("read budget exhausted, destruction scheduled")
	}
	return nil
}

// Destroy implements [Policy].
func (p *policy) Destroy(messageID string) error {
	return p.destroy(messageID)
}

// State implements [Policy].
func (p *policy) State(messageID string) (models.EphemeralState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.records[messageID]
	if !ok {
		return models.EphemeralDestroyed, ErrUnknownMessage
	}
	return t.rec.State, nil
}

// Shutdown implements [Policy].
func (p *policy) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range p.records {
		if t.timer != nil {
			t.timer.Stop()
		}
	}
	n := len(p.records)
	p.records = make(map[string]*tracked)

	p.log.Debug().Int("cancelled", n).Msg("ephemeral policy shut down")
}

// destroy transitions the record to Destroyed and fires the callback.
// The terminal check under the lock makes it exactly-once no matter how
// many timers, reads, and explicit calls race for the same id.
func (p *policy) destroy(messageID string) error {
	p.mu.Lock()

	t, ok := p.records[messageID]
	if !ok || t.rec.State == models.EphemeralDestroyed {
		p.mu.Unlock()
		return ErrUnknownMessage
	}

	t.rec.State = models.EphemeralDestroyed
	if t.timer != nil {
		t.timer.Stop()
	}
	delete(p.records, messageID)
	p.mu.Unlock()

	if p.onDestroy != nil {
		if err := p.onDestroy(messageID); err != nil {
			// The record is already gone; the callback failure is the
			// host's problem to observe, not a reason to resurrect.
			p.log.Error().Err(err).Str("message_id", messageID).Msg("destruction callback failed")
		}
	}

	p.log.Debug().Str("message_id", messageID).Msg("ephemeral message destroyed")
	return nil
}

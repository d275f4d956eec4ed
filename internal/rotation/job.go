package rotation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// maxAttemptsPerCheck bounds the retries of one due rotation. After the
// budget is spent the job waits for the next tick.
const maxAttemptsPerCheck = 3

type job struct {
	scheduler     Scheduler
	state         store.RotationStateStorage
	checkInterval time.Duration
	intervalHours uint32
	log           *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob creates a rotation job that checks key age on a ticker. The job is
// idle until Start is called. If checkInterval is zero or negative it
// defaults to one hour.
func NewJob(scheduler Scheduler, state store.RotationStateStorage, checkInterval time.Duration, intervalHours uint32, log *logger.Logger) Job {
	if checkInterval <= 0 {
		checkInterval = time.Hour
	}
	return &job{
		scheduler:     scheduler,
		state:         state,
		checkInterval: checkInterval,
		intervalHours: intervalHours,
		log:           log,
	}
}

// Start implements [Job]. It stops any previously running job, performs an
// eager check, then launches a background goroutine that repeats the check
// every checkInterval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *job) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		// Keys can go stale while the client is offline, so check before
		// the first tick.
		j.checkAndRotate(jobCtx)

		t := time.NewTicker(j.checkInterval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.checkAndRotate(jobCtx)
			}
		}
	}()
}

// Stop implements [Job]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *job) checkAndRotate(ctx context.Context) {
	state, err := j.state.GetRotationState(ctx)
	switch {
	case errors.Is(err, store.ErrRotationStateNotFound):
		// First run for this account; the zero state makes the check fire.
		state = models.RotationState{IntervalHours: j.intervalHours}
	case err != nil:
		j.log.Error().Err(err).Msg("rotation check: cannot read state")
		return
	}

	if !j.scheduler.ShouldRotate(state, time.Now()) {
		return
	}

	for attempt := 1; attempt <= maxAttemptsPerCheck; attempt++ {
		if ctx.Err() != nil {
			return
		}

		err := j.scheduler.Rotate(ctx)
		if err == nil {
			return
		}
		j.log.Error().Err(err).Int("attempt", attempt).Msg("rotation attempt failed")
	}

	j.log.Warn().Msg("rotation retry budget spent, will retry on next check")
}

// SPDX-License-Identifier: Apache-2.0

package rotation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/custodian"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

type scheduler struct {
	keyService adapter.KeyServiceAdapter
	custodian  custodian.KeyCustodian
	state      store.RotationStateStorage
	log        *logger.Logger

	accountID     string
	passphrase    string
	intervalHours uint32

	// inFlight collapses concurrent Rotate calls into one issuance.
	inFlight atomic.Bool
}

// NewScheduler constructs a [Scheduler].
func NewScheduler(
	keyService adapter.KeyServiceAdapter,
	keeper custodian.KeyCustodian,
	state store.RotationStateStorage,
	accountID, passphrase string,
	intervalHours uint32,
	log *logger.Logger,
) Scheduler {
	return &scheduler{
		keyService:    keyService,
		custodian:     keeper,
		state:         state,
		log:           log,
		accountID:     accountID,
		passphrase:    passphrase,
		intervalHours: intervalHours,
	}
}

// ShouldRotate implements [Scheduler].
func (s *scheduler) ShouldRotate(state models.RotationState, now time.Time) bool {
	if state.LastRotationAt.IsZero() {
		return true
	}
	return now.Sub(state.LastRotationAt) >= state.Interval()
}

// Rotate implements [Scheduler].
func (s *scheduler) Rotate(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("rotation already in flight, skipping")
		return nil
	}
	defer s.inFlight.Store(false)

	start := time.Now()
	s.log.Info().Msg("key rotation started")

	pair, err := s.keyService.GenerateKeyPair(ctx)
	if err != nil {
		return fmt.Errorf("rotation: issue keypair: %w", err)
	}

	key, err := crypto.DecodePrivateKeyPEM(pair.PrivateKey)
	if err != nil {
		return fmt.Errorf("rotation: decode issued key: %w", err)
	}

	// Retire the current key into the grace slot. On the very first
	// rotation there is nothing to retire.
	if err := s.custodian.Retire(ctx); err != nil && !errors.Is(err, store.ErrKeyRecordNotFound) {
		return fmt.Errorf("rotation: retire current key: %w", err)
	}

	if err := s.custodian.Store(ctx, key, s.passphrase); err != nil {
		return fmt.Errorf("rotation: store new key: %w", err)
	}

	if err := s.keyService.PublishPublicKey(ctx, models.PublishKeyRequest{
		AccountID: s.accountID,
		PublicKey: pair.PublicKey,
	}); err != nil {
		return fmt.Errorf("rotation: publish public key: %w", err)
	}

	newState := models.RotationState{
		LastRotationAt: time.Now(),
		IntervalHours:  s.intervalHours,
	}
	if err := s.state.SaveRotationState(ctx, newState); err != nil {
		return fmt.Errorf("rotation: persist state: %w", err)
	}

	s.log.Info().Dur("took", time.Since(start)).Msg("key rotation completed")
	return nil
}

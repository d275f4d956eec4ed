// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/custodian"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/ephemeral"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/rotation"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	custodian   custodian.KeyCustodian
	keyService  adapter.KeyServiceAdapter
	rotationJob rotation.Job
	state       store.RotationStateStorage
	policy      ephemeral.Policy
	cache       *ephemeral.PreviewCache
	logger      *logger.Logger

	accountID  string
	passphrase string
}

// NewSessionService constructs a SessionService over the given
// collaborators.
func NewSessionService(
	keeper custodian.KeyCustodian,
	keyService adapter.KeyServiceAdapter,
	rotationJob rotation.Job,
	state store.RotationStateStorage,
	policy ephemeral.Policy,
	cache *ephemeral.PreviewCache,
	cfg config.ClientConfig,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		custodian:   keeper,
		keyService:  keyService,
		rotationJob: rotationJob,
		state:       state,
		policy:      policy,
		cache:       cache,
		logger:      logger,
		accountID:   cfg.AccountID,
		passphrase:  cfg.Crypto.Passphrase,
	}
}

// Login implements [SessionService]. On first login there is no stored
// identity key yet; one is generated, stored, and published. On later
// logins the stored key is loaded and its public half republished, so the
// directory heals from a lost publish.
func (s *sessionService) Login(ctx context.Context) error {
	log := logger.FromContext(ctx)

	key, err := s.custodian.Load(ctx, s.passphrase)
	switch {
	case errors.Is(err, custodian.ErrKeyUnavailable):
		log.Info().Str("accountID", s.accountID).Msg("no identity key stored, generating")
		key, err = s.custodian.Generate(ctx)
		if err != nil {
			return fmt.Errorf("login: generate identity key: %w", err)
		}
		if err = s.custodian.Store(ctx, key, s.passphrase); err != nil {
			return fmt.Errorf("login: store identity key: %w", err)
		}
	case err != nil:
		return fmt.Errorf("login: load identity key: %w", err)
	}

	pubPEM, err := crypto.EncodePublicKeyPEM(&key.PublicKey)
	if err != nil {
		return fmt.Errorf("login: encode public key: %w", err)
	}
	if err = s.keyService.PublishPublicKey(ctx, models.PublishKeyRequest{
		AccountID: s.accountID,
		PublicKey: pubPEM,
	}); err != nil {
		return mapAdapterError(fmt.Errorf("login: publish public key: %w", err))
	}

	s.rotationJob.Start(ctx)
	log.Info().Str("accountID", s.accountID).Msg("crypto session established")
	return nil
}

// Logout implements [SessionService]. Teardown order matters: the rotation
// job must stop before the vault is destroyed or it could re-store a key,
// and the timers must be cancelled before the cache is scrubbed or a firing
// callback could race the scrub.
func (s *sessionService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.rotationJob.Stop()
	s.policy.Shutdown()
	s.cache.ScrubAll()

	err := errors.Join(
		s.custodian.Clear(ctx),
		s.state.ClearRotationState(ctx),
	)
	if err != nil {
		log.Err(err).Msg("session teardown finished with errors")
		return fmt.Errorf("logout: %w", err)
	}

	log.Info().Str("accountID", s.accountID).Msg("crypto session destroyed")
	return nil
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/custodian"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/ephemeral"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// messengerService is the concrete implementation of MessengerService.
type messengerService struct {
	cipher     crypto.HybridCipherService
	custodian  custodian.KeyCustodian
	keyService adapter.KeyServiceAdapter
	policy     ephemeral.Policy
	cache      *ephemeral.PreviewCache
	validator  validators.Validator
	logger     *logger.Logger

	passphrase string
}

// NewMessengerService constructs a MessengerService over the given
// collaborators.
func NewMessengerService(
	cipher crypto.HybridCipherService,
	keeper custodian.KeyCustodian,
	keyService adapter.KeyServiceAdapter,
	policy ephemeral.Policy,
	cache *ephemeral.PreviewCache,
	validator validators.Validator,
	passphrase string,
	logger *logger.Logger,
) MessengerService {
	return &messengerService{
		cipher:     cipher,
		custodian:  keeper,
		keyService: keyService,
		policy:     policy,
		cache:      cache,
		validator:  validator,
		logger:     logger,
		passphrase: passphrase,
	}
}

// EncryptMessage implements [MessengerService].
func (m *messengerService) EncryptMessage(ctx context.Context, recipientID string, plaintext []byte, ttl time.Duration) (models.Envelope, error) {
	log := logger.FromContext(ctx)

	if recipientID == "" {
		return models.Envelope{}, ErrInvalidDataProvided
	}

	resp, err := m.keyService.LookupPublicKey(ctx, recipientID)
	if err != nil {
		log.Err(err).Str("recipientID", recipientID).Msg("recipient key lookup failed")
		return models.Envelope{}, mapAdapterError(fmt.Errorf("encrypt: lookup recipient key: %w", err))
	}

	pub, err := crypto.DecodePublicKeyPEM(resp.PublicKey)
	if err != nil {
		log.Err(err).Str("recipientID", recipientID).Msg("directory served undecodable key")
		return models.Envelope{}, fmt.Errorf("encrypt: decode recipient key: %w", err)
	}

	envelope, err := m.cipher.Encrypt(plaintext, pub, crypto.EncryptOptions{TTL: ttl})
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt: %w", err)
	}

	log.Debug().Str("messageID", envelope.MessageID).Str("recipientID", recipientID).Msg("message encrypted")
	return envelope, nil
}

// DecryptMessage implements [MessengerService]. An envelope wrapped for the
// key that was just rotated out still opens via the grace slot; any other
// unwrap failure is reported as-is.
func (m *messengerService) DecryptMessage(ctx context.Context, envelope models.Envelope) ([]byte, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, envelope); err != nil {
		log.Err(err).Str("messageID", envelope.MessageID).Msg("structurally unsound envelope")
		return nil, fmt.Errorf("decrypt: %w", classifyValidationError(err))
	}

	key, err := m.custodian.Load(ctx, m.passphrase)
	if err != nil {
		return nil, fmt.Errorf("decrypt: load identity key: %w", err)
	}

	plain, err := m.cipher.Decrypt(envelope, key)
	if errors.Is(err, crypto.ErrKeyUnwrapFailed) {
		prev, prevErr := m.custodian.LoadPrevious(ctx, m.passphrase)
		if prevErr != nil {
			// No retired key to fall back to; the original failure stands.
			return nil, fmt.Errorf("decrypt: %w", err)
		}
		log.Debug().Str("messageID", envelope.MessageID).Msg("current key cannot unwrap, trying retired key")
		plain, err = m.cipher.Decrypt(envelope, prev)
	}
	if err != nil {
		log.Err(err).Str("messageID", envelope.MessageID).Msg("decryption failed")
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	m.cache.Put(envelope.MessageID, plain)
	if expiry, ok := envelope.ExpiryTime(); ok {
		m.policy.Register(envelope.MessageID, expiry, 0, false)
	}

	log.Debug().Str("messageID", envelope.MessageID).Msg("message decrypted")
	return plain, nil
}

// MarkEphemeral implements [MessengerService].
func (m *messengerService) MarkEphemeral(messageID string, destructAt time.Time, maxReadCount uint32, wipeAfterRead bool) {
	m.policy.Register(messageID, destructAt, maxReadCount, wipeAfterRead)
}

// ReadMessage implements [MessengerService]. The read is counted before the
// plaintext is returned; on the final read of a wipe-after-read message the
// caller still gets the plaintext and the grace timer starts.
func (m *messengerService) ReadMessage(messageID string) ([]byte, error) {
	plain, ok := m.cache.Get(messageID)
	if !ok {
		return nil, ErrPreviewGone
	}

	// A non-ephemeral message has no policy record; that is fine.
	if err := m.policy.OnRead(messageID); err != nil && !errors.Is(err, ephemeral.ErrUnknownMessage) {
		return nil, err
	}

	return plain, nil
}

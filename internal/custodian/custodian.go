// SPDX-License-Identifier: Apache-2.0

package custodian

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// minRSAKeyBits is the smallest modulus the custodian will generate.
// 4096 is the production default; going below it is a configuration
// decision, never a silent fallback.
const minRSAKeyBits = 2048

type keyCustodian struct {
	vault    store.KeyVaultStorage
	keychain crypto.KeyChainService
	log      *logger.Logger

	keyBits int

	// mu serializes all vault operations. TryLock keeps an overlapping
	// call from ever observing a half-written record.
	mu sync.Mutex
}

// NewKeyCustodian constructs a [KeyCustodian] over the given vault storage.
// keyBits below 2048 is rejected at construction rather than at first use.
func NewKeyCustodian(vault store.KeyVaultStorage, keychain crypto.KeyChainService, keyBits int, log *logger.Logger) (KeyCustodian, error) {
	if keyBits < minRSAKeyBits {
		return nil, fmt.Errorf("key size %d below minimum %d", keyBits, minRSAKeyBits)
	}

	return &keyCustodian{
		vault:    vault,
		keychain: keychain,
		log:      log,
		keyBits:  keyBits,
	}, nil
}

// Generate implements [KeyCustodian].
func (c *keyCustodian) Generate(ctx context.Context) (*rsa.PrivateKey, error) {
	start := time.Now()
	key, err := rsa.GenerateKey(rand.Reader, c.keyBits)
	if err != nil {
		return nil, fmt.Errorf("error generating identity key: %w", err)
	}

	c.log.Debug().
		Int("bits", c.keyBits).
		Dur("took", time.Since(start)).
		Msg("identity keypair generated")

	return key, nil
}

// Store implements [KeyCustodian].
func (c *keyCustodian) Store(ctx context.Context, key *rsa.PrivateKey, passphrase string) error {
	if !c.mu.TryLock() {
		return ErrCustodianBusy
	}
	defer c.mu.Unlock()

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("error encoding identity key: %w", err)
	}
	defer crypto.Zeroize(keyDER)

	rec := models.KeyVaultRecord{CreatedAt: time.Now()}

	if passphrase != "" {
		salt, err := c.keychain.GenerateSalt()
		if err != nil {
			return fmt.Errorf("error generating salt: %w", err)
		}

		kek := c.keychain.DeriveKEK(passphrase, salt)
		defer crypto.Zeroize(kek)

		blob, err := c.keychain.WrapKey(keyDER, kek)
		if err != nil {
			return fmt.Errorf("error wrapping identity key: %w", err)
		}

		rec.Salt = salt
		rec.Ciphertext = blob
		rec.Wrapped = true
	} else {
		// Raw DER at rest. Allowed, but not equivalent to the wrapped mode.
		rec.Ciphertext = append([]byte(nil), keyDER...)
		rec.Wrapped = false
		c.log.Warn().Msg("storing identity key without passphrase wrapping")
	}

	if err := c.vault.SaveKeyRecord(ctx, models.KeySlotCurrent, rec); err != nil {
		return fmt.Errorf("error persisting identity key: %w", err)
	}

	c.log.Debug().Bool("wrapped", rec.Wrapped).Msg("identity key stored")
	return nil
}

// Load implements [KeyCustodian].
func (c *keyCustodian) Load(ctx context.Context, passphrase string) (*rsa.PrivateKey, error) {
	return c.load(ctx, models.KeySlotCurrent, passphrase)
}

// LoadPrevious implements [KeyCustodian].
func (c *keyCustodian) LoadPrevious(ctx context.Context, passphrase string) (*rsa.PrivateKey, error) {
	return c.load(ctx, models.KeySlotPrevious, passphrase)
}

func (c *keyCustodian) load(ctx context.Context, slot, passphrase string) (*rsa.PrivateKey, error) {
	if !c.mu.TryLock() {
		return nil, ErrCustodianBusy
	}
	defer c.mu.Unlock()

	rec, err := c.vault.GetKeyRecord(ctx, slot)
	switch {
	case errors.Is(err, store.ErrKeyRecordNotFound):
		return nil, ErrKeyUnavailable
	case errors.Is(err, store.ErrVaultCorrupted):
		c.log.Error().Str("slot", slot).Msg("key vault record corrupted")
		return nil, ErrStorageCorrupted
	case err != nil:
		return nil, fmt.Errorf("error reading key vault: %w", err)
	}

	keyDER := rec.Ciphertext
	if rec.Wrapped {
		kek := c.keychain.DeriveKEK(passphrase, rec.Salt)
		defer crypto.Zeroize(kek)

		keyDER, err = c.keychain.UnwrapKey(rec.Ciphertext, kek)
		if err != nil {
			// Wrong passphrase and tampered blob are indistinguishable
			// by construction. Either way the key is not available.
			return nil, ErrKeyUnavailable
		}
		defer crypto.Zeroize(keyDER)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(keyDER)
	if err != nil {
		c.log.Error().Str("slot", slot).Msg("stored key bytes do not decode")
		return nil, ErrStorageCorrupted
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		c.log.Error().Str("slot", slot).Msg("stored key is not an RSA key")
		return nil, ErrStorageCorrupted
	}

	return key, nil
}

// Retire implements [KeyCustodian].
func (c *keyCustodian) Retire(ctx context.Context) error {
	if !c.mu.TryLock() {
		return ErrCustodianBusy
	}
	defer c.mu.Unlock()

	if err := c.vault.MoveKeyRecord(ctx, models.KeySlotCurrent, models.KeySlotPrevious); err != nil {
		return fmt.Errorf("error retiring identity key: %w", err)
	}

	c.log.Debug().Msg("identity key retired to previous slot")
	return nil
}

// Clear implements [KeyCustodian].
func (c *keyCustodian) Clear(ctx context.Context) error {
	if !c.mu.TryLock() {
		return ErrCustodianBusy
	}
	defer c.mu.Unlock()

	for _, slot := range []string{models.KeySlotCurrent, models.KeySlotPrevious} {
		if err := c.vault.DeleteKeyRecord(ctx, slot); err != nil {
			return fmt.Errorf("error clearing key vault slot %s: %w", slot, err)
		}
	}

	c.log.Debug().Msg("key vault cleared")
	return nil
}

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mocks.go -package=mock

import (
	"crypto/rsa"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// EncryptOptions carries the per-message knobs of [HybridCipherService.Encrypt].
// The zero value produces a non-expiring envelope with a fresh message id.
type EncryptOptions struct {
	// TTL, when positive, sets the envelope's expiresAt to now+TTL.
	TTL time.Duration

	// MessageID overrides the generated message id. Leave empty to have a
	// fresh UUID drawn per envelope.
	MessageID string
}

// HybridCipherService is the stateless hybrid cipher: a fresh 256-bit
// symmetric key and 96-bit IV per message, AES-256-GCM over the body, and
// the symmetric key wrapped under RSA-OAEP(SHA-256) for the recipient.
//
// Neither the symmetric key nor the IV is ever exposed to a caller; both
// are scoped to the call. Implementations hold no mutable state, so any
// number of Encrypt/Decrypt calls may run concurrently.
type HybridCipherService interface {
	// Encrypt produces an immutable envelope for the recipient.
	Encrypt(plaintext []byte, recipient *rsa.PublicKey, opts EncryptOptions) (models.Envelope, error)

	// Decrypt reverses Encrypt. It is all-or-nothing: the authentication
	// tag is verified before any plaintext byte is returned. Failures are
	// exactly one of [ErrExpired], [ErrUnsupportedVersion],
	// [ErrMalformedEnvelope], [ErrKeyUnwrapFailed], [ErrAuthenticationFailed].
	Decrypt(envelope models.Envelope, recipient *rsa.PrivateKey) ([]byte, error)
}

// KeyChainService covers the custodian's at-rest cryptography: passphrase
// KDF and AEAD wrapping of the identity private key. It knows nothing about
// storage, accounts, or the network.
type KeyChainService interface {
	// GenerateSalt returns a fresh random 16-byte KDF salt.
	GenerateSalt() ([]byte, error)

	// DeriveKEK derives a 256-bit key-encryption key from the passphrase
	// and salt via Argon2id. The KEK exists only in memory.
	DeriveKEK(passphrase string, salt []byte) []byte

	// WrapKey encrypts keyDER (PKCS#8) under kek with AES-256-GCM and
	// returns the blob nonce ‖ ciphertext.
	WrapKey(keyDER, kek []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey. A wrong KEK or corrupted blob fails the
	// authentication tag and returns an error, never garbage key bytes.
	UnwrapKey(blob, kek []byte) ([]byte, error)
}

// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

const (
	// symmetricKeySize is the per-message AES key size (256 bits).
	symmetricKeySize = 32

	// ivSize is the GCM nonce size (96 bits).
	ivSize = 12

	// authTagSize is the GCM authentication tag size (128 bits).
	authTagSize = 16

	// aadPrefix is the fixed associated-data prefix bound into every GCM
	// operation. Concatenated with the envelope version, it domain-separates
	// this protocol from any other consumer of the same primitives.
	aadPrefix = "ulta-secure-messenger/envelope/"
)

// hybridCipherService is the private implementation of [HybridCipherService].
// It is stateless; every call draws its key material from the OS CSPRNG.
type hybridCipherService struct{}

// NewHybridCipherService constructs the production [HybridCipherService].
func NewHybridCipherService() HybridCipherService {
	return &hybridCipherService{}
}

// Encrypt implements [HybridCipherService]. The symmetric key and IV are
// drawn fresh from crypto/rand on every call, so key/nonce reuse across
// messages is impossible by construction. The key is zeroized before return.
func (h *hybridCipherService) Encrypt(plaintext []byte, recipient *rsa.PublicKey, opts EncryptOptions) (models.Envelope, error) {
	symKey := make([]byte, symmetricKeySize)
	if _, err := io.ReadFull(rand.Reader, symKey); err != nil {
		return models.Envelope{}, err
	}
	defer Zeroize(symKey)

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.Envelope{}, err
	}

	ciphertext, tag, err := sealAESGCM(symKey, iv, plaintext, aad(models.VersionHybridV1))
	if err != nil {
		return models.Envelope{}, err
	}

	wrappedKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, recipient, symKey, nil)
	if err != nil {
		return models.Envelope{}, ErrKeyUnwrapFailed
	}

	messageID := opts.MessageID
	if messageID == "" {
		messageID = uuid.NewString()
	}

	now := time.Now()
	envelope := models.Envelope{
		EncryptedContent:      ciphertext,
		EncryptedSymmetricKey: wrappedKey,
		IV:                    iv,
		AuthTag:               tag,
		Timestamp:             now.UnixMilli(),
		MessageID:             messageID,
		Version:               models.VersionHybridV1,
	}
	if opts.TTL > 0 {
		expiresAt := now.Add(opts.TTL).UnixMilli()
		envelope.ExpiresAt = &expiresAt
	}

	return envelope, nil
}

// Decrypt implements [HybridCipherService]. Check order: expiry, version,
// structure, key unwrap, AEAD open. Every failure path returns only the
// sentinel kind.
func (h *hybridCipherService) Decrypt(envelope models.Envelope, recipient *rsa.PrivateKey) ([]byte, error) {
	if envelope.ExpiredAt(time.Now()) {
		return nil, ErrExpired
	}
	if envelope.Version != models.VersionHybridV1 {
		return nil, ErrUnsupportedVersion
	}
	if err := checkEnvelopeShape(envelope); err != nil {
		return nil, err
	}

	symKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, recipient, envelope.EncryptedSymmetricKey, nil)
	if err != nil {
		return nil, ErrKeyUnwrapFailed
	}
	defer Zeroize(symKey)

	plaintext, err := openAESGCM(symKey, envelope.IV, envelope.EncryptedContent, envelope.AuthTag, aad(envelope.Version))
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// aad returns the associated-data string binding the given format version.
func aad(version string) []byte {
	return []byte(aadPrefix + version)
}

// checkEnvelopeShape rejects structurally broken envelopes before any
// cryptographic work.
func checkEnvelopeShape(envelope models.Envelope) error {
	if len(envelope.IV) != ivSize {
		return ErrMalformedEnvelope
	}
	if len(envelope.AuthTag) != authTagSize {
		return ErrMalformedEnvelope
	}
	if len(envelope.EncryptedSymmetricKey) == 0 {
		return ErrMalformedEnvelope
	}
	return nil
}

// sealAESGCM encrypts plaintext with AES-256-GCM and returns ciphertext and
// tag separately, matching the envelope layout.
func sealAESGCM(key, iv, plaintext, additionalData []byte) (ciphertext, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	sealed := gcm.Seal(nil, iv, plaintext, additionalData)
	split := len(sealed) - authTagSize
	return sealed[:split], sealed[split:], nil
}

// openAESGCM verifies tag and decrypts. The tag is checked by GCM before a
// single plaintext byte is produced, so decryption is all-or-nothing.
func openAESGCM(key, iv, ciphertext, tag, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	return gcm.Open(nil, iv, sealed, additionalData)
}

// Zeroize overwrites b with zero bytes. Used on every in-memory copy of
// secret key material once it is no longer needed.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

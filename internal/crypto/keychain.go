// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. The salt is not a secret; it exists so equal passphrases
// derive different KEKs.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKEK implements [KeyChainService]. It derives a 256-bit
// key-encryption key from the passphrase and salt using Argon2id with the
// parameters stored in the receiver. The KEK never leaves client memory.
func (k *keyChainService) DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapKey implements [KeyChainService]. It encrypts the PKCS#8 DER of the
// identity private key under kek with AES-256-GCM. A random 12-byte nonce
// is prepended to the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChainService) WrapKey(keyDER, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so UnwrapKey can split it out.
	wrapped := gcm.Seal(nil, nonce, keyDER, nil)
	return append(nonce, wrapped...), nil
}

// UnwrapKey implements [KeyChainService]. It reverses [keyChainService.WrapKey].
// The blob must be at least as long as the GCM nonce (12 bytes). An
// authentication-tag mismatch here almost always means a wrong passphrase
// produced a wrong KEK; no garbage key bytes are ever returned.
func (k *keyChainService) UnwrapKey(blob, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, errors.New("wrapped key blob too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	keyDER, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("key unwrap failed")
	}

	return keyDER, nil
}

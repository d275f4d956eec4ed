package custodian

//go:generate mockgen -source=interfaces.go -destination=../mock/custodian_mocks.go -package=mock

import (
	"context"
	"crypto/rsa"
)

// KeyCustodian owns the lifecycle of the account's identity keypair: secure
// generation, encrypted persistence, retrieval, and destruction. It is the
// only component that touches the key vault.
//
// Vault operations are serialized: an overlapping Store/Load/Clear fails
// fast with [ErrCustodianBusy] instead of blocking or racing.
type KeyCustodian interface {
	// Generate creates a fresh RSA identity keypair of the configured
	// modulus size. The key is returned in memory only; call Store to
	// persist it.
	Generate(ctx context.Context) (*rsa.PrivateKey, error)

	// Store persists the private key in the current slot. With a
	// non-empty passphrase the key is wrapped (Argon2id KEK, AES-256-GCM);
	// with an empty one the raw DER is stored, a reduced-security mode.
	Store(ctx context.Context, key *rsa.PrivateKey, passphrase string) error

	// Load retrieves and unwraps the current identity key.
	// Returns [ErrKeyUnavailable] when nothing usable is stored and
	// [ErrStorageCorrupted] when the record cannot be decoded.
	Load(ctx context.Context, passphrase string) (*rsa.PrivateKey, error)

	// LoadPrevious retrieves the retired keypair kept for the rotation
	// grace window, with the same error contract as Load.
	LoadPrevious(ctx context.Context, passphrase string) (*rsa.PrivateKey, error)

	// Retire moves the current key record to the previous slot, replacing
	// whatever was there. Called by the rotation scheduler just before it
	// stores the new key, so envelopes in flight under the old key stay
	// decryptable for one rotation interval.
	Retire(ctx context.Context) error

	// Clear destroys both slots. Stored key bytes are overwritten before
	// the records are deleted. Clearing an empty vault is a no-op.
	Clear(ctx context.Context) error
}

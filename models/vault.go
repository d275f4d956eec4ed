package models

import "time"

// Key-vault slot names. The custodian keeps the current identity key and,
// for a grace window after rotation, the previous one so envelopes still in
// flight under the old key remain decryptable.
const (
	KeySlotCurrent  = "current"
	KeySlotPrevious = "previous"
)

// KeyVaultRecord is the persisted at-rest form of one identity private key.
//
// When Wrapped is true, Ciphertext is the AES-256-GCM encryption of the
// PKCS#8 DER key under a KEK derived from the user's passphrase via Argon2id
// with Salt. When Wrapped is false, Ciphertext holds the raw DER and Salt is
// empty — a reduced-security mode for installations without a passphrase,
// not an equivalent one.
type KeyVaultRecord struct {
	Salt       []byte    `json:"salt"`
	Ciphertext []byte    `json:"ciphertext"`
	Wrapped    bool      `json:"wrapped"`
	CreatedAt  time.Time `json:"created_at"`
}

package models

import "time"

// Envelope format versions understood by this build. Decrypt rejects any
// other value with an unsupported-version error instead of guessing.
const (
	// VersionHybridV1 is the classical hybrid scheme: AES-256-GCM content
	// encryption with the symmetric key wrapped under RSA-OAEP(SHA-256).
	VersionHybridV1 = "1.0"

	// VersionHybridPQ is the post-quantum scheme: AES-256-GCM content
	// encryption with the symmetric key wrapped under an ML-KEM-768
	// encapsulated shared secret.
	VersionHybridPQ = "2.0-pq"
)

// Envelope is the self-contained encrypted unit for one message. It is
// immutable once produced and is persisted/transmitted as JSON; the field
// names below are the wire contract and must not change.
//
// Byte fields serialize as standard base64 strings (encoding/json default
// for []byte). Timestamp and ExpiresAt are Unix milliseconds; ExpiresAt is
// null when the message carries no TTL.
type Envelope struct {
	// EncryptedContent is the AEAD ciphertext of the message body,
	// without the authentication tag.
	EncryptedContent []byte `json:"encryptedContent"`

	// EncryptedSymmetricKey is the per-message 256-bit content key wrapped
	// for the recipient. Layout depends on Version: RSA-OAEP output for
	// VersionHybridV1, KEM ciphertext ‖ GCM-wrapped key for VersionHybridPQ.
	EncryptedSymmetricKey []byte `json:"encryptedSymmetricKey"`

	// IV is the 96-bit GCM nonce. Freshly drawn per message, never reused.
	IV []byte `json:"iv"`

	// AuthTag is the 128-bit GCM authentication tag over the content.
	AuthTag []byte `json:"authTag"`

	// Timestamp is the envelope creation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`

	// ExpiresAt is the moment after which decryption is refused, in Unix
	// milliseconds. Nil means the message never expires.
	ExpiresAt *int64 `json:"expiresAt"`

	// MessageID is the message identifier (UUID string).
	MessageID string `json:"messageId"`

	// Version is the envelope format version, one of the constants above.
	Version string `json:"version"`
}

// CreatedTime returns Timestamp as a time.Time.
func (e Envelope) CreatedTime() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// ExpiryTime returns the expiry moment and whether a TTL is set.
func (e Envelope) ExpiryTime() (time.Time, bool) {
	if e.ExpiresAt == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*e.ExpiresAt), true
}

// ExpiredAt reports whether the envelope's TTL has elapsed at the given
// moment. Envelopes without a TTL never expire.
func (e Envelope) ExpiredAt(now time.Time) bool {
	expiry, ok := e.ExpiryTime()
	if !ok {
		return false
	}
	return now.After(expiry)
}

package crypto

import "errors"

// Decrypt failure kinds. Callers match these with [errors.Is] and must only
// ever surface the kind — no partial plaintext, no primitive internals that
// could aid an attacker.
var (
	// ErrExpired is returned when an envelope's TTL has elapsed. Expiry is
	// checked before any cryptographic work.
	ErrExpired = errors.New("envelope expired")

	// ErrUnsupportedVersion is returned when the envelope format version is
	// not recognized. Unknown versions are rejected, never guessed at.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	// The envelope or its IV/tag has been tampered with, or the unwrapped
	// content key is wrong.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrKeyUnwrapFailed is returned when the wrapped symmetric key cannot
	// be recovered with the supplied private key.
	ErrKeyUnwrapFailed = errors.New("symmetric key unwrap failed")

	// ErrMalformedEnvelope is returned when the envelope is structurally
	// invalid (wrong IV or tag length, missing fields) before any
	// cryptographic operation is attempted.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)

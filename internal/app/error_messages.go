// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// key service handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is
	// syntactically valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgKeyNotPublished is returned when a directory lookup targets an
	// account that never published a public key.
	MsgKeyNotPublished = "no public key published for account"

	// MsgNoAccountIDProvided is returned when a directory operation
	// arrives without an account identifier.
	MsgNoAccountIDProvided = "no account ID provided"

	// MsgInvalidPublicKey is returned when a published key is not a valid
	// PEM-encoded RSA public key.
	MsgInvalidPublicKey = "invalid public key"

	// MsgEnvelopeExpired is returned when a preview decryption targets an
	// envelope whose TTL has already elapsed.
	MsgEnvelopeExpired = "message expired"

	// MsgEnvelopeMalformed is returned when an envelope is structurally
	// unsound: wrong IV or tag length, missing ciphertext or wrapped key.
	MsgEnvelopeMalformed = "malformed envelope"

	// MsgUnsupportedVersion is returned when an envelope declares a format
	// version this build does not understand.
	MsgUnsupportedVersion = "unsupported envelope version"

	// MsgDecryptionFailed is returned when key unwrap or tag verification
	// fails during a preview decryption. The two causes are deliberately
	// not distinguished in the response body.
	MsgDecryptionFailed = "decryption failed"
)

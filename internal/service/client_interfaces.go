package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// SessionService defines the client-side contract for bringing the crypto
// subsystem up and down around a messenger session.
type SessionService interface {
	// Login prepares the account's cryptographic state: it loads the
	// identity key from the local vault (generating, storing, and
	// publishing a fresh one on first login), republishes the public key
	// to the directory, and starts the background rotation job.
	// Returns an error if key material cannot be established; the session
	// must not proceed without it.
	Login(ctx context.Context) error

	// Logout tears the session down: it stops the rotation job, cancels
	// all pending ephemeral destruction timers, scrubs the preview cache,
	// destroys the local key vault, and wipes the rotation state, in that
	// order. Errors from the individual steps are joined; later steps run
	// even when an earlier one fails.
	Logout(ctx context.Context) error
}

// MessengerService defines the client-side contract for encrypting outbound
// and decrypting inbound messages, including ephemeral bookkeeping.
type MessengerService interface {
	// EncryptMessage looks up the recipient's published public key and
	// produces an envelope for them. A positive ttl stamps the envelope
	// with an expiry; zero means the message never expires.
	// Returns ErrRecipientKeyNotFound if the recipient never published.
	EncryptMessage(ctx context.Context, recipientID string, plaintext []byte, ttl time.Duration) (models.Envelope, error)

	// DecryptMessage opens the envelope with the local identity key,
	// falling back to the retired key from the rotation grace slot when
	// the current one cannot unwrap it. The plaintext is cached for
	// preview and, if the envelope carries an expiry, the message is
	// registered for timed destruction.
	DecryptMessage(ctx context.Context, envelope models.Envelope) ([]byte, error)

	// MarkEphemeral registers (or tightens) the destruction policy of an
	// already decrypted message: a read budget, wipe-after-read, or both
	// on top of any envelope expiry.
	MarkEphemeral(messageID string, destructAt time.Time, maxReadCount uint32, wipeAfterRead bool)

	// ReadMessage returns the cached plaintext of a previously decrypted
	// message and counts the read against its destruction policy.
	// Returns ErrPreviewGone when the plaintext has been scrubbed.
	ReadMessage(messageID string) ([]byte, error)
}

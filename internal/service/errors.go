package service

import (
	"errors"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrKeyNotPublished is returned by directory lookups for accounts
	// that never published a public key.
	ErrKeyNotPublished = errors.New("no public key published for account")

	// ErrRecipientKeyNotFound is the client-side counterpart of
	// ErrKeyNotPublished: encryption cannot proceed because the directory
	// has no key for the recipient.
	ErrRecipientKeyNotFound = errors.New("recipient has no published key")

	// ErrPreviewGone is returned when the plaintext of a message is no
	// longer in the preview cache: the TTL elapsed or the destruction
	// policy already scrubbed it.
	ErrPreviewGone = errors.New("message preview no longer available")
)

// classifyValidationError converts a structural validation failure into the
// cipher's error taxonomy: an unrecognized envelope version is an
// unsupported-version error, everything else is a malformed envelope.
func classifyValidationError(err error) error {
	if errors.Is(err, validators.ErrUnknownVersion) {
		return fmt.Errorf("%w: %w", crypto.ErrUnsupportedVersion, err)
	}
	return fmt.Errorf("%w: %w", crypto.ErrMalformedEnvelope, err)
}

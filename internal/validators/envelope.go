package validators

import (
	"context"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldMessageID targets the envelope's message identifier.
	FieldMessageID = "message_id"

	// FieldContent targets the AEAD ciphertext of the message body.
	FieldContent = "encrypted_content"

	// FieldWrappedKey targets the wrapped per-message symmetric key.
	FieldWrappedKey = "encrypted_symmetric_key"

	// FieldIV targets the GCM nonce.
	FieldIV = "iv"

	// FieldAuthTag targets the GCM authentication tag.
	FieldAuthTag = "auth_tag"

	// FieldVersion targets the envelope format version.
	FieldVersion = "version"

	// FieldTimestamp targets the envelope creation timestamp.
	FieldTimestamp = "timestamp"
)

const (
	ivLength      = 12
	authTagLength = 16
)

// allowedVersions is the exhaustive set of envelope format versions accepted
// by the validator. Any version not present in this slice is considered
// invalid.
var allowedVersions = []string{
	models.VersionHybridV1,
	models.VersionHybridPQ,
}

// EnvelopeValidator implements the Validator interface for
// [models.Envelope]. It performs the structural checks a decryptor would
// reject anyway, but before any key material is touched, so transport and
// service layers can fail fast with a precise error.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type EnvelopeValidator struct {
}

// NewEnvelopeValidator constructs a new EnvelopeValidator
// and returns it as the Validator interface.
func NewEnvelopeValidator() Validator {
	return &EnvelopeValidator{}
}

// Validate dispatches validation to the envelope-specific method.
// Returns ErrUnsupportedType for any value that is not an envelope.
func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Envelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.Envelope:
		return v.validateEnvelope(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *EnvelopeValidator) validateEnvelope(_ context.Context, envelope models.Envelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldMessageID, FieldContent, FieldWrappedKey,
			FieldIV, FieldAuthTag, FieldVersion, FieldTimestamp,
		}
	}

	for _, field := range fields {
		switch field {
		case FieldMessageID:
			if envelope.MessageID == "" {
				return ErrEmptyMessageID
			}
		case FieldContent:
			if len(envelope.EncryptedContent) == 0 {
				return ErrEmptyContent
			}
		case FieldWrappedKey:
			if len(envelope.EncryptedSymmetricKey) == 0 {
				return ErrEmptyWrappedKey
			}
		case FieldIV:
			if len(envelope.IV) != ivLength {
				return fmt.Errorf("%w: got %d", ErrInvalidIVLength, len(envelope.IV))
			}
		case FieldAuthTag:
			if len(envelope.AuthTag) != authTagLength {
				return fmt.Errorf("%w: got %d", ErrInvalidAuthTagLength, len(envelope.AuthTag))
			}
		case FieldVersion:
			if !versionAllowed(envelope.Version) {
				return fmt.Errorf("%w: %q", ErrUnknownVersion, envelope.Version)
			}
		case FieldTimestamp:
			if envelope.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func versionAllowed(version string) bool {
	for _, allowed := range allowedVersions {
		if version == allowed {
			return true
		}
	}
	return false
}

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMessageID       = errors.New("message ID is required")
	ErrEmptyContent         = errors.New("encrypted content is required")
	ErrEmptyWrappedKey      = errors.New("encrypted symmetric key is required")
	ErrInvalidIVLength      = errors.New("IV must be 12 bytes")
	ErrInvalidAuthTagLength = errors.New("auth tag must be 16 bytes")
	ErrUnknownVersion       = errors.New("unknown envelope version")
	ErrInvalidTimestamp     = errors.New("invalid timestamp")
)

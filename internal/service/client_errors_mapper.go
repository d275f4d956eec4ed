// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRecipientKeyNotFound, err)
	}

	return err
}

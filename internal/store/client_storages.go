package store

import (
	"context"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
)

// ClientStorages aggregates the client-side storage backends. Both views are
// currently served by one SQLite database.
type ClientStorages struct {
	KeyVault KeyVaultStorage
	Rotation RotationStateStorage

	closer interface{ Close() error }
}

// NewClientStorages opens the local database configured in cfg and wires the
// storage interfaces.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	local, err := NewClientSQLiteStorage(ctx, cfg.DBPath, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		KeyVault: local,
		Rotation: local,
		closer:   local,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

package store

import (
	"context"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/migrations"
)

// Storages aggregates the server-side repositories.
type Storages struct {
	Directory DirectoryRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		Directory: NewDirectoryRepository(db, log),
	}, nil
}

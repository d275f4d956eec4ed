package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
)

// directoryRepository is the PostgreSQL-backed implementation of
// [DirectoryRepository] over the "key_directory" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type directoryRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewDirectoryRepository constructs a [DirectoryRepository] backed by the
// provided database connection and logger.
func NewDirectoryRepository(db *DB, logger *logger.Logger) DirectoryRepository {
	logger.Debug().Msg("creating key directory repository")
	return &directoryRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertPublicKey implements [DirectoryRepository]. Re-publishing replaces
// the stored key: rotation makes this the common path, so a conflict on the
// account id updates the row instead of failing.
func (r *directoryRepository) UpsertPublicKey(ctx context.Context, accountID, publicKeyPEM string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("key_directory").
		Columns("account_id", "public_key", "published_at").
		Values(accountID, publicKeyPEM, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			public_key = EXCLUDED.public_key,
			published_at = EXCLUDED.published_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.UpsertPublicKey").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*directoryRepository.UpsertPublicKey").
			Str("pg_code", postgresError(err)).Msg("error publishing public key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetPublicKey implements [DirectoryRepository].
func (r *directoryRepository) GetPublicKey(ctx context.Context, accountID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("public_key").
		From("key_directory").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.GetPublicKey").Msg("error building select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var publicKeyPEM string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&publicKeyPEM); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDirectoryEntryNotFound
		}
		log.Err(err).Str("func", "*directoryRepository.GetPublicKey").Msg("error scanning public key")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return publicKeyPEM, nil
}

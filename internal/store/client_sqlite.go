package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

const clientSchema = `
CREATE TABLE IF NOT EXISTS key_vault (
	slot       TEXT PRIMARY KEY,
	salt       BLOB,
	ciphertext BLOB NOT NULL,
	wrapped    INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS rotation_state (
	id               INTEGER PRIMARY KEY CHECK (id = 1),
	last_rotation_at INTEGER NOT NULL,
	interval_hours   INTEGER NOT NULL
);`

// clientSQLiteStorage is the SQLite-backed implementation of
// [KeyVaultStorage] and [RotationStateStorage]. One database file per
// device; ":memory:" is accepted for tests.
type clientSQLiteStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewClientSQLiteStorage opens (creating if needed) the local database and
// applies the schema.
func NewClientSQLiteStorage(ctx context.Context, dsn string, log *logger.Logger) (*clientSQLiteStorage, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewClientSQLiteStorage").Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewClientSQLiteStorage").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewClientSQLiteStorage").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, clientSchema); err != nil {
		return nil, fmt.Errorf("error applying client schema: %w", err)
	}
	log.Debug().Str("func", "NewClientSQLiteStorage").Msg("connected to local database")

	return &clientSQLiteStorage{db: conn, logger: log}, nil
}

// Close releases the underlying database handle.
func (s *clientSQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *clientSQLiteStorage) SaveKeyRecord(ctx context.Context, slot string, rec models.KeyVaultRecord) error {
	wrapped := 0
	if rec.Wrapped {
		wrapped = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO key_vault (slot, salt, ciphertext, wrapped, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
			salt = excluded.salt,
			ciphertext = excluded.ciphertext,
			wrapped = excluded.wrapped,
			created_at = excluded.created_at;`,
		slot, rec.Salt, rec.Ciphertext, wrapped, rec.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("save key record: %w", err)
	}
	return nil
}

func (s *clientSQLiteStorage) GetKeyRecord(ctx context.Context, slot string) (models.KeyVaultRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT salt, ciphertext, wrapped, created_at FROM key_vault WHERE slot = ?;`, slot)

	var (
		rec       models.KeyVaultRecord
		wrapped   int
		createdAt int64
	)
	if err := row.Scan(&rec.Salt, &rec.Ciphertext, &wrapped, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.KeyVaultRecord{}, ErrKeyRecordNotFound
		}
		return models.KeyVaultRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(rec.Ciphertext) == 0 {
		s.logger.Error().Str("slot", slot).Msg("key vault record has empty ciphertext")
		return models.KeyVaultRecord{}, ErrVaultCorrupted
	}

	rec.Wrapped = wrapped != 0
	rec.CreatedAt = time.UnixMilli(createdAt)
	return rec, nil
}

func (s *clientSQLiteStorage) MoveKeyRecord(ctx context.Context, fromSlot, toSlot string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin move transaction: %w", err)
	}
	defer tx.Rollback()

	if err = wipeSlot(ctx, tx, toSlot); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE key_vault SET slot = ? WHERE slot = ?;`, toSlot, fromSlot); err != nil {
		return fmt.Errorf("move key record: %w", err)
	}

	return tx.Commit()
}

func (s *clientSQLiteStorage) DeleteKeyRecord(ctx context.Context, slot string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	if err = wipeSlot(ctx, tx, slot); err != nil {
		return err
	}

	return tx.Commit()
}

// wipeSlot overwrites the slot's key bytes with zeros of the same length
// before deleting the row, so the database file never retains recoverable
// key material.
func wipeSlot(ctx context.Context, tx *sql.Tx, slot string) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE key_vault
		 SET ciphertext = zeroblob(length(ciphertext)), salt = zeroblob(length(salt))
		 WHERE slot = ?;`, slot); err != nil {
		return fmt.Errorf("overwrite key record: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM key_vault WHERE slot = ?;`, slot); err != nil {
		return fmt.Errorf("delete key record: %w", err)
	}
	return nil
}

func (s *clientSQLiteStorage) SaveRotationState(ctx context.Context, state models.RotationState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rotation_state (id, last_rotation_at, interval_hours)
		 VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			last_rotation_at = excluded.last_rotation_at,
			interval_hours = excluded.interval_hours;`,
		state.LastRotationAt.UnixMilli(), state.IntervalHours)
	if err != nil {
		return fmt.Errorf("save rotation state: %w", err)
	}
	return nil
}

func (s *clientSQLiteStorage) GetRotationState(ctx context.Context) (models.RotationState, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT last_rotation_at, interval_hours FROM rotation_state WHERE id = 1;`)

	var (
		state  models.RotationState
		lastAt int64
	)
	if err := row.Scan(&lastAt, &state.IntervalHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RotationState{}, ErrRotationStateNotFound
		}
		return models.RotationState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	state.LastRotationAt = time.UnixMilli(lastAt)
	return state, nil
}

func (s *clientSQLiteStorage) ClearRotationState(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM rotation_state WHERE id = 1;`); err != nil {
		return fmt.Errorf("clear rotation state: %w", err)
	}
	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

func newTestClientStorage(t *testing.T) *clientSQLiteStorage {
	t.Helper()

	s, err := NewClientSQLiteStorage(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func testRecord() models.KeyVaultRecord {
	return models.KeyVaultRecord{
		Salt:       []byte("salt"),
		Ciphertext: []byte("sealed key bytes"),
		Wrapped:    true,
		CreatedAt:  time.Now().Truncate(time.Millisecond),
	}
}

func TestKeyVault_SaveAndGet(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, s.SaveKeyRecord(ctx, "current", rec))

	got, err := s.GetKeyRecord(ctx, "current")
	require.NoError(t, err)
	assert.Equal(t, rec.Salt, got.Salt)
	assert.Equal(t, rec.Ciphertext, got.Ciphertext)
	assert.True(t, got.Wrapped)
	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestKeyVault_SaveReplacesSlot(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	first := testRecord()
	require.NoError(t, s.SaveKeyRecord(ctx, "current", first))

	second := testRecord()
	second.Ciphertext = []byte("rotated key bytes")
	require.NoError(t, s.SaveKeyRecord(ctx, "current", second))

	got, err := s.GetKeyRecord(ctx, "current")
	require.NoError(t, err)
	assert.Equal(t, second.Ciphertext, got.Ciphertext)
}

func TestKeyVault_GetMissingSlot(t *testing.T) {
	s := newTestClientStorage(t)

	_, err := s.GetKeyRecord(context.Background(), "current")
	assert.ErrorIs(t, err, ErrKeyRecordNotFound)
}

func TestKeyVault_CorruptedRecord(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO key_vault (slot, salt, ciphertext, wrapped, created_at)
		 VALUES ('current', x'', x'', 1, 0);`)
	require.NoError(t, err)

	_, err = s.GetKeyRecord(ctx, "current")
	assert.ErrorIs(t, err, ErrVaultCorrupted)
}

func TestKeyVault_MoveReplacesDestination(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	current := testRecord()
	retired := testRecord()
	retired.Ciphertext = []byte("old key bytes")

	require.NoError(t, s.SaveKeyRecord(ctx, "current", current))
	require.NoError(t, s.SaveKeyRecord(ctx, "previous", retired))

	require.NoError(t, s.MoveKeyRecord(ctx, "current", "previous"))

	got, err := s.GetKeyRecord(ctx, "previous")
	require.NoError(t, err)
	assert.Equal(t, current.Ciphertext, got.Ciphertext)

	_, err = s.GetKeyRecord(ctx, "current")
	assert.ErrorIs(t, err, ErrKeyRecordNotFound)
}

func TestKeyVault_DeleteIsIdempotent(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveKeyRecord(ctx, "current", testRecord()))
	require.NoError(t, s.DeleteKeyRecord(ctx, "current"))

	_, err := s.GetKeyRecord(ctx, "current")
	assert.ErrorIs(t, err, ErrKeyRecordNotFound)

	// deleting an empty slot is a no-op
	require.NoError(t, s.DeleteKeyRecord(ctx, "current"))
}

func TestRotationState_SaveAndGet(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	state := models.RotationState{
		LastRotationAt: time.Now().Truncate(time.Millisecond),
		IntervalHours:  720,
	}
	require.NoError(t, s.SaveRotationState(ctx, state))

	got, err := s.GetRotationState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(720), got.IntervalHours)
	assert.WithinDuration(t, state.LastRotationAt, got.LastRotationAt, time.Millisecond)
}

func TestRotationState_FirstRun(t *testing.T) {
	s := newTestClientStorage(t)

	_, err := s.GetRotationState(context.Background())
	assert.ErrorIs(t, err, ErrRotationStateNotFound)
}

func TestRotationState_Clear(t *testing.T) {
	s := newTestClientStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRotationState(ctx, models.RotationState{
		LastRotationAt: time.Now(),
		IntervalHours:  720,
	}))
	require.NoError(t, s.ClearRotationState(ctx))

	_, err := s.GetRotationState(ctx)
	assert.ErrorIs(t, err, ErrRotationStateNotFound)

	// clearing twice is harmless
	require.NoError(t, s.ClearRotationState(ctx))
}

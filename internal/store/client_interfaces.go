package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// KeyVaultStorage persists the at-rest identity key records. One logical
// record per slot; the custodian is the only component allowed to touch it.
type KeyVaultStorage interface {
	// SaveKeyRecord stores rec in the given slot, replacing any previous
	// record there.
	SaveKeyRecord(ctx context.Context, slot string, rec models.KeyVaultRecord) error

	// GetKeyRecord returns the record in the slot, or
	// [ErrKeyRecordNotFound] / [ErrVaultCorrupted].
	GetKeyRecord(ctx context.Context, slot string) (models.KeyVaultRecord, error)

	// MoveKeyRecord relocates the record from one slot to another,
	// replacing the destination. Used to retire the current key to the
	// previous slot during rotation.
	MoveKeyRecord(ctx context.Context, fromSlot, toSlot string) error

	// DeleteKeyRecord irreversibly removes the record in the slot. The
	// stored key bytes are overwritten with zeros before the row is
	// deleted, so the storage medium retains no recoverable key material.
	// Deleting an empty slot is a no-op.
	DeleteKeyRecord(ctx context.Context, slot string) error
}

// RotationStateStorage persists the per-account rotation bookkeeping.
type RotationStateStorage interface {
	SaveRotationState(ctx context.Context, state models.RotationState) error

	// GetRotationState returns the persisted state or
	// [ErrRotationStateNotFound] on first run.
	GetRotationState(ctx context.Context) (models.RotationState, error)

	// ClearRotationState removes the state. Called at logout.
	ClearRotationState(ctx context.Context) error
}

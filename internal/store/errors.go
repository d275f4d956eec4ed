package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyRecordNotFound is returned when the requested key-vault slot
	// holds no record. The custodian maps this to its key-unavailable error.
	ErrKeyRecordNotFound = errors.New("key record not found")

	// ErrRotationStateNotFound is returned when no rotation state has been
	// persisted yet for the account (first run).
	ErrRotationStateNotFound = errors.New("rotation state not found")

	// ErrVaultCorrupted is returned when a persisted key record cannot be
	// read back in a structurally valid form. Surfaced to callers as
	// key-unavailable but logged distinctly for diagnostics.
	ErrVaultCorrupted = errors.New("key vault storage corrupted")

	// ErrDirectoryEntryNotFound is returned when a public-key lookup
	// matches no published account.
	ErrDirectoryEntryNotFound = errors.New("directory entry not found")
)

// Low-level database operation errors, returned (or wrapped) when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)

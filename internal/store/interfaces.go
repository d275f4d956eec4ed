package store

import (
	"context"
)

// DirectoryRepository is the server-side public-key directory. Peers look up
// a recipient's published key here before encrypting to them. The directory
// never sees private key material.
type DirectoryRepository interface {
	// UpsertPublicKey publishes (or replaces) the account's public key PEM.
	UpsertPublicKey(ctx context.Context, accountID, publicKeyPEM string) error

	// GetPublicKey returns the published PEM for the account, or
	// [ErrDirectoryEntryNotFound].
	GetPublicKey(ctx context.Context, accountID string) (string, error)
}

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// KeyIssueService issues fresh RSA identity keypairs on behalf of clients
// that cannot (or choose not to) generate their own. The private half is
// returned once and never retained server-side.
type KeyIssueService interface {
	IssueKeyPair(ctx context.Context) (models.KeyPairResponse, error)
}

// DirectoryService manages the public-key directory: accounts publish their
// public keys here and peers look them up before encrypting.
type DirectoryService interface {
	// Publish upserts the account's public key. The PEM is parsed before
	// it is stored; a key the directory cannot decode is rejected with
	// ErrInvalidDataProvided.
	Publish(ctx context.Context, req models.PublishKeyRequest) error

	// Lookup returns the published key for the account, or
	// ErrKeyNotPublished.
	Lookup(ctx context.Context, accountID string) (models.PublicKeyResponse, error)
}

// PreviewService decrypts an envelope server-side using a private key the
// caller hands over. A reduced-security fallback for clients that cannot
// decrypt locally; the key and plaintext live only for the duration of the
// call.
type PreviewService interface {
	DecryptPreview(ctx context.Context, req models.DecryptPreviewRequest) (models.DecryptPreviewResponse, error)
}

// AuthService verifies the bearer tokens guarding the key service
// endpoints. Token issuance happens elsewhere in the messenger; this
// subsystem only validates.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

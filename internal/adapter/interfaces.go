// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the key service.
//
// The primary abstraction is [KeyServiceAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPKeyServiceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for a missing directory entry).
package adapter

import (
	"context"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mocks.go -package=mock

// KeyServiceAdapter defines transport-agnostic communication with the key
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type KeyServiceAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. The token is provisioned externally;
	// session issuance is not this subsystem's concern.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if none has been set.
	Token() string

	// GenerateKeyPair asks the key service to issue a fresh RSA keypair.
	// Both halves come back PEM-encoded; the server retains neither.
	GenerateKeyPair(ctx context.Context) (models.KeyPairResponse, error)

	// PublishPublicKey upserts the account's public key in the directory
	// so other parties can encrypt to it.
	PublishPublicKey(ctx context.Context, req models.PublishKeyRequest) error

	// LookupPublicKey fetches the published public key for accountID.
	// Returns [ErrNotFound] (wrapped) when the account never published.
	LookupPublicKey(ctx context.Context, accountID string) (models.PublicKeyResponse, error)

	// DecryptPreview sends the envelope and the private key PEM to the
	// server for decryption. A reduced-security fallback documented as
	// outside the end-to-end guarantee; prefer local Decrypt.
	DecryptPreview(ctx context.Context, req models.DecryptPreviewRequest) (models.DecryptPreviewResponse, error)
}

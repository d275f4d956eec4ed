package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// directoryService is the concrete implementation of DirectoryService
// backed by the PostgreSQL key directory.
type directoryService struct {
	directory store.DirectoryRepository
	logger    *logger.Logger
}

// NewDirectoryService constructs a DirectoryService wired to the given
// repository.
func NewDirectoryService(directory store.DirectoryRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{directory: directory, logger: logger}
}

// Publish upserts the account's public key in the directory.
//
// The PEM is parsed before storage so the directory never serves a key no
// client could use.
//
// Returns ErrInvalidDataProvided if the account ID is empty or the PEM does
// not decode to an RSA public key, or a wrapped storage error.
func (s *directoryService) Publish(ctx context.Context, req models.PublishKeyRequest) error {
	log := logger.FromContext(ctx)

	if req.AccountID == "" || req.PublicKey == "" {
		log.Error().Str("accountID", req.AccountID).Msg("invalid publish request")
		return ErrInvalidDataProvided
	}
	if _, err := crypto.DecodePublicKeyPEM(req.PublicKey); err != nil {
		log.Err(err).Str("accountID", req.AccountID).Msg("undecodable public key submitted")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.directory.UpsertPublicKey(ctx, req.AccountID, req.PublicKey); err != nil {
		log.Err(err).Str("accountID", req.AccountID).Msg("public key upsert failed")
		return fmt.Errorf("public key upsert failed: %w", err)
	}

	log.Info().Str("accountID", req.AccountID).Msg("public key published")
	return nil
}

// Lookup returns the published public key for accountID.
//
// Returns:
//   - ErrInvalidDataProvided if accountID is empty.
//   - ErrKeyNotPublished if the account never published a key.
//   - A wrapped storage error otherwise.
func (s *directoryService) Lookup(ctx context.Context, accountID string) (models.PublicKeyResponse, error) {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return models.PublicKeyResponse{}, ErrInvalidDataProvided
	}

	pem, err := s.directory.GetPublicKey(ctx, accountID)
	if errors.Is(err, store.ErrDirectoryEntryNotFound) {
		return models.PublicKeyResponse{}, fmt.Errorf("%w: %s", ErrKeyNotPublished, accountID)
	}
	if err != nil {
		log.Err(err).Str("accountID", accountID).Msg("public key lookup failed")
		return models.PublicKeyResponse{}, fmt.Errorf("public key lookup failed: %w", err)
	}

	return models.PublicKeyResponse{AccountID: accountID, PublicKey: pem}, nil
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

const (
	defaultIssuedKeyBits = 4096
	minIssuedKeyBits     = 2048
)

// keyIssueService generates RSA keypairs on request. The private half
// exists in server memory only for the duration of the call; nothing is
// persisted.
type keyIssueService struct {
	keyBits int
	logger  *logger.Logger
}

// NewKeyIssueService constructs a KeyIssueService issuing keys of the given
// modulus size. Sizes below 2048 bits (including zero for "unset") fall
// back to 4096.
func NewKeyIssueService(keyBits int, logger *logger.Logger) KeyIssueService {
	if keyBits < minIssuedKeyBits {
		keyBits = defaultIssuedKeyBits
	}
	return &keyIssueService{keyBits: keyBits, logger: logger}
}

// IssueKeyPair generates a fresh RSA keypair and returns both halves
// PEM-encoded. The server retains neither.
func (s *keyIssueService) IssueKeyPair(ctx context.Context) (models.KeyPairResponse, error) {
	log := logger.FromContext(ctx)

	key, err := rsa.GenerateKey(rand.Reader, s.keyBits)
	if err != nil {
		log.Err(err).Int("bits", s.keyBits).Msg("keypair generation failed")
		return models.KeyPairResponse{}, fmt.Errorf("keypair generation failed: %w", err)
	}

	privPEM, err := crypto.EncodePrivateKeyPEM(key)
	if err != nil {
		return models.KeyPairResponse{}, fmt.Errorf("encoding private key: %w", err)
	}
	pubPEM, err := crypto.EncodePublicKeyPEM(&key.PublicKey)
	if err != nil {
		return models.KeyPairResponse{}, fmt.Errorf("encoding public key: %w", err)
	}

	log.Debug().Int("bits", s.keyBits).Msg("keypair issued")
	return models.KeyPairResponse{PublicKey: pubPEM, PrivateKey: privPEM}, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// previewService decrypts envelopes server-side with a caller-supplied
// private key. This path breaks the end-to-end property on purpose and is
// only offered for clients that cannot decrypt locally; the key and the
// plaintext never outlive the request.
type previewService struct {
	cipher    crypto.HybridCipherService
	validator validators.Validator
	logger    *logger.Logger
}

// NewPreviewService constructs a PreviewService over the given cipher.
func NewPreviewService(cipher crypto.HybridCipherService, validator validators.Validator, logger *logger.Logger) PreviewService {
	return &previewService{cipher: cipher, validator: validator, logger: logger}
}

// DecryptPreview decrypts req.Envelope with the private key PEM in the
// request and returns the plaintext.
//
// Returns:
//   - ErrInvalidDataProvided if the private key PEM does not decode.
//   - The cipher's sentinel errors (crypto.ErrExpired,
//     crypto.ErrMalformedEnvelope, ...) wrapped, when decryption fails.
func (s *previewService) DecryptPreview(ctx context.Context, req models.DecryptPreviewRequest) (models.DecryptPreviewResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req.Envelope); err != nil {
		log.Err(err).Str("messageID", req.Envelope.MessageID).Msg("structurally unsound envelope")
		return models.DecryptPreviewResponse{}, classifyValidationError(err)
	}

	key, err := crypto.DecodePrivateKeyPEM(req.PrivateKey)
	if err != nil {
		log.Err(err).Msg("undecodable private key in preview request")
		return models.DecryptPreviewResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	plain, err := s.cipher.Decrypt(req.Envelope, key)
	if err != nil {
		log.Err(err).Str("messageID", req.Envelope.MessageID).Msg("preview decryption failed")
		return models.DecryptPreviewResponse{}, fmt.Errorf("preview decryption failed: %w", err)
	}

	resp := models.DecryptPreviewResponse{
		MessageID: req.Envelope.MessageID,
		Plaintext: string(plain),
	}
	crypto.Zeroize(plain)
	return resp, nil
}

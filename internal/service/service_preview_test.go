package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

func TestPreviewService_DecryptPreview(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keyPEM, err := crypto.EncodePrivateKeyPEM(key)
	require.NoError(t, err)

	cipher := crypto.NewHybridCipherService()
	envelope, err := cipher.Encrypt([]byte("off the record"), &key.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)

	svc := NewPreviewService(cipher, validators.NewEnvelopeValidator(), logger.Nop())

	t.Run("happy path", func(t *testing.T) {
		resp, err := svc.DecryptPreview(context.Background(), models.DecryptPreviewRequest{
			Envelope:   envelope,
			PrivateKey: keyPEM,
		})
		require.NoError(t, err)
		assert.Equal(t, envelope.MessageID, resp.MessageID)
		assert.Equal(t, "off the record", resp.Plaintext)
	})

	t.Run("undecodable private key", func(t *testing.T) {
		_, err := svc.DecryptPreview(context.Background(), models.DecryptPreviewRequest{
			Envelope:   envelope,
			PrivateKey: "garbage",
		})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("wrong private key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		otherPEM, err := crypto.EncodePrivateKeyPEM(other)
		require.NoError(t, err)

		_, err = svc.DecryptPreview(context.Background(), models.DecryptPreviewRequest{
			Envelope:   envelope,
			PrivateKey: otherPEM,
		})
		assert.ErrorIs(t, err, crypto.ErrKeyUnwrapFailed)
	})

	t.Run("structurally unsound envelope", func(t *testing.T) {
		_, err := svc.DecryptPreview(context.Background(), models.DecryptPreviewRequest{
			Envelope:   models.Envelope{},
			PrivateKey: keyPEM,
		})
		assert.ErrorIs(t, err, crypto.ErrMalformedEnvelope)
	})

	t.Run("unrecognized version", func(t *testing.T) {
		future := envelope
		future.Version = "9.9"

		_, err := svc.DecryptPreview(context.Background(), models.DecryptPreviewRequest{
			Envelope:   future,
			PrivateKey: keyPEM,
		})
		assert.ErrorIs(t, err, crypto.ErrUnsupportedVersion)
		assert.NotErrorIs(t, err, crypto.ErrMalformedEnvelope)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		tampered := envelope
		tampered.EncryptedContent = append([]byte(nil), envelope.EncryptedContent...)
		tampered.EncryptedContent[0] ^= 0xFF

		_, err := svc.DecryptPreview(context.Background(), models.DecryptPreviewRequest{
			Envelope:   tampered,
			PrivateKey: keyPEM,
		})
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	})
}

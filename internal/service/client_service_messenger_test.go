package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/custodian"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/ephemeral"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/mock"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

type messengerFixture struct {
	keeper     *mock.MockKeyCustodian
	keyService *mock.MockKeyServiceAdapter
	policy     ephemeral.Policy
	cache      *ephemeral.PreviewCache
	cipher     crypto.HybridCipherService
	svc        MessengerService
}

func newMessengerFixture(t *testing.T) *messengerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &messengerFixture{
		keeper:     mock.NewMockKeyCustodian(ctrl),
		keyService: mock.NewMockKeyServiceAdapter(ctrl),
		cache:      ephemeral.NewPreviewCache(time.Minute),
		cipher:     crypto.NewHybridCipherService(),
	}
	f.policy = ephemeral.NewPolicy(func(messageID string) error {
		f.cache.Scrub(messageID)
		return nil
	}, 10*time.Millisecond, logger.Nop())

	f.svc = NewMessengerService(f.cipher, f.keeper, f.keyService, f.policy, f.cache, validators.NewEnvelopeValidator(), "pw", logger.Nop())
	return f
}

func TestMessengerService_EncryptMessage(t *testing.T) {
	f := newMessengerFixture(t)

	recipient, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubPEM, err := crypto.EncodePublicKeyPEM(&recipient.PublicKey)
	require.NoError(t, err)

	f.keyService.EXPECT().LookupPublicKey(gomock.Any(), "bob").Return(models.PublicKeyResponse{
		AccountID: "bob",
		PublicKey: pubPEM,
	}, nil)

	envelope, err := f.svc.EncryptMessage(context.Background(), "bob", []byte("hi bob"), 0)
	require.NoError(t, err)

	// The recipient can open what we produced.
	plain, err := f.cipher.Decrypt(envelope, recipient)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi bob"), plain)
	assert.Nil(t, envelope.ExpiresAt)
}

func TestMessengerService_EncryptMessage_TTL(t *testing.T) {
	f := newMessengerFixture(t)

	recipient, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubPEM, err := crypto.EncodePublicKeyPEM(&recipient.PublicKey)
	require.NoError(t, err)

	f.keyService.EXPECT().LookupPublicKey(gomock.Any(), "bob").Return(models.PublicKeyResponse{
		AccountID: "bob",
		PublicKey: pubPEM,
	}, nil)

	envelope, err := f.svc.EncryptMessage(context.Background(), "bob", []byte("burn me"), time.Hour)
	require.NoError(t, err)
	require.NotNil(t, envelope.ExpiresAt)
	assert.Greater(t, *envelope.ExpiresAt, envelope.Timestamp)
}

func TestMessengerService_EncryptMessage_RecipientUnknown(t *testing.T) {
	f := newMessengerFixture(t)

	f.keyService.EXPECT().LookupPublicKey(gomock.Any(), "nobody").
		Return(models.PublicKeyResponse{}, fmt.Errorf("lookup: %w", adapter.ErrNotFound))

	_, err := f.svc.EncryptMessage(context.Background(), "nobody", []byte("hello?"), 0)
	assert.ErrorIs(t, err, ErrRecipientKeyNotFound)
}

func TestMessengerService_EncryptMessage_EmptyRecipient(t *testing.T) {
	f := newMessengerFixture(t)

	_, err := f.svc.EncryptMessage(context.Background(), "", []byte("hello?"), 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMessengerService_DecryptMessage(t *testing.T) {
	f := newMessengerFixture(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	envelope, err := f.cipher.Encrypt([]byte("for your eyes"), &key.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)

	f.keeper.EXPECT().Load(gomock.Any(), "pw").Return(key, nil)

	plain, err := f.svc.DecryptMessage(context.Background(), envelope)
	require.NoError(t, err)
	assert.Equal(t, []byte("for your eyes"), plain)

	// The plaintext is available for preview reads afterwards.
	cached, err := f.svc.ReadMessage(envelope.MessageID)
	require.NoError(t, err)
	assert.Equal(t, []byte("for your eyes"), cached)
}

func TestMessengerService_DecryptMessage_GraceSlotFallback(t *testing.T) {
	f := newMessengerFixture(t)

	oldKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	newKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	// Envelope wrapped for the key that was since rotated out.
	envelope, err := f.cipher.Encrypt([]byte("sent before rotation"), &oldKey.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)

	f.keeper.EXPECT().Load(gomock.Any(), "pw").Return(newKey, nil)
	f.keeper.EXPECT().LoadPrevious(gomock.Any(), "pw").Return(oldKey, nil)

	plain, err := f.svc.DecryptMessage(context.Background(), envelope)
	require.NoError(t, err)
	assert.Equal(t, []byte("sent before rotation"), plain)
}

func TestMessengerService_DecryptMessage_NoGraceSlot(t *testing.T) {
	f := newMessengerFixture(t)

	oldKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	newKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	envelope, err := f.cipher.Encrypt([]byte("unreachable"), &oldKey.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)

	f.keeper.EXPECT().Load(gomock.Any(), "pw").Return(newKey, nil)
	f.keeper.EXPECT().LoadPrevious(gomock.Any(), "pw").Return(nil, custodian.ErrKeyUnavailable)

	_, err = f.svc.DecryptMessage(context.Background(), envelope)
	assert.ErrorIs(t, err, crypto.ErrKeyUnwrapFailed)
}

func TestMessengerService_DecryptMessage_KeyUnavailable(t *testing.T) {
	f := newMessengerFixture(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	envelope, err := f.cipher.Encrypt([]byte("locked out"), &key.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)

	f.keeper.EXPECT().Load(gomock.Any(), "pw").Return(nil, custodian.ErrKeyUnavailable)

	_, err = f.svc.DecryptMessage(context.Background(), envelope)
	assert.ErrorIs(t, err, custodian.ErrKeyUnavailable)
}

func TestMessengerService_DecryptMessage_MalformedEnvelope(t *testing.T) {
	f := newMessengerFixture(t)

	// Structural validation runs before any key material is touched.
	_, err := f.svc.DecryptMessage(context.Background(), models.Envelope{})
	assert.ErrorIs(t, err, crypto.ErrMalformedEnvelope)
}

func TestMessengerService_DecryptMessage_UnknownVersion(t *testing.T) {
	f := newMessengerFixture(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	envelope, err := f.cipher.Encrypt([]byte("from the future"), &key.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)
	envelope.Version = "9.9"

	_, err = f.svc.DecryptMessage(context.Background(), envelope)
	assert.ErrorIs(t, err, crypto.ErrUnsupportedVersion)
	assert.NotErrorIs(t, err, crypto.ErrMalformedEnvelope)
}

func TestMessengerService_ReadMessage_WipeAfterRead(t *testing.T) {
	f := newMessengerFixture(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	envelope, err := f.cipher.Encrypt([]byte("read once"), &key.PublicKey, crypto.EncryptOptions{})
	require.NoError(t, err)

	f.keeper.EXPECT().Load(gomock.Any(), "pw").Return(key, nil)
	_, err = f.svc.DecryptMessage(context.Background(), envelope)
	require.NoError(t, err)

	f.svc.MarkEphemeral(envelope.MessageID, time.Time{}, 1, true)

	// The budgeted read still succeeds.
	plain, err := f.svc.ReadMessage(envelope.MessageID)
	require.NoError(t, err)
	assert.Equal(t, []byte("read once"), plain)

	// After the grace period the plaintext is scrubbed.
	assert.Eventually(t, func() bool {
		_, err := f.svc.ReadMessage(envelope.MessageID)
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)

	_, err = f.svc.ReadMessage(envelope.MessageID)
	assert.ErrorIs(t, err, ErrPreviewGone)
}

func TestMessengerService_ReadMessage_Unknown(t *testing.T) {
	f := newMessengerFixture(t)

	_, err := f.svc.ReadMessage("never-seen")
	assert.ErrorIs(t, err, ErrPreviewGone)
}

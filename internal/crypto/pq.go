package crypto

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/google/uuid"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// ML-KEM-768 sizes (circl encoding).
const (
	kemCiphertextSize = 1088
	kemSharedKeySize  = 32
)

// PQCipherService is the post-quantum variant of the hybrid cipher. The
// message body is still AES-256-GCM; the content key is wrapped under an
// ML-KEM-768 encapsulated shared secret instead of RSA-OAEP. Envelopes use
// format version "2.0-pq".
//
// This replaces the original product's cosmetic "lattice" layer with a
// vetted KEM; accounts opting in carry an ML-KEM keypair alongside the RSA
// identity.
type PQCipherService interface {
	// GenerateKeyPair creates an ML-KEM-768 keypair in circl's binary
	// encoding (public 1184 bytes, secret 2400 bytes).
	GenerateKeyPair() (publicKey, secretKey []byte, err error)

	// Encrypt produces a VersionHybridPQ envelope for the recipient's
	// ML-KEM public key.
	Encrypt(plaintext, recipientPublicKey []byte, opts EncryptOptions) (models.Envelope, error)

	// Decrypt reverses Encrypt with the recipient's ML-KEM secret key.
	// Failure kinds match [HybridCipherService.Decrypt].
	Decrypt(envelope models.Envelope, recipientSecretKey []byte) ([]byte, error)
}

type pqCipherService struct{}

// NewPQCipherService constructs the production [PQCipherService].
func NewPQCipherService() PQCipherService {
	return &pqCipherService{}
}

// GenerateKeyPair implements [PQCipherService].
func (p *pqCipherService) GenerateKeyPair() ([]byte, []byte, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	// MarshalBinary never fails for keys produced by GenerateKeyPair.
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()
	return pubBytes, privBytes, nil
}

// Encrypt implements [PQCipherService]. The wrapped-key field carries
// KEM ciphertext ‖ nonce ‖ GCM(contentKey under shared secret), so one
// envelope field round-trips the whole wrap regardless of scheme.
func (p *pqCipherService) Encrypt(plaintext, recipientPublicKey []byte, opts EncryptOptions) (models.Envelope, error) {
	var pub mlkem768.PublicKey
	if err := pub.Unpack(recipientPublicKey); err != nil {
		return models.Envelope{}, ErrKeyUnwrapFailed
	}

	symKey := make([]byte, symmetricKeySize)
	if _, err := io.ReadFull(rand.Reader, symKey); err != nil {
		return models.Envelope{}, err
	}
	defer Zeroize(symKey)

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.Envelope{}, err
	}

	ciphertext, tag, err := sealAESGCM(symKey, iv, plaintext, aad(models.VersionHybridPQ))
	if err != nil {
		return models.Envelope{}, err
	}

	kemCiphertext := make([]byte, kemCiphertextSize)
	sharedSecret := make([]byte, kemSharedKeySize)
	pub.EncapsulateTo(kemCiphertext, sharedSecret, nil)
	defer Zeroize(sharedSecret)

	wrapNonce := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, wrapNonce); err != nil {
		return models.Envelope{}, err
	}
	wrappedSym, wrapTag, err := sealAESGCM(sharedSecret, wrapNonce, symKey, aad(models.VersionHybridPQ))
	if err != nil {
		return models.Envelope{}, err
	}

	wrappedKey := make([]byte, 0, kemCiphertextSize+ivSize+len(wrappedSym)+len(wrapTag))
	wrappedKey = append(wrappedKey, kemCiphertext...)
	wrappedKey = append(wrappedKey, wrapNonce...)
	wrappedKey = append(wrappedKey, wrappedSym...)
	wrappedKey = append(wrappedKey, wrapTag...)

	messageID := opts.MessageID
	if messageID == "" {
		messageID = uuid.NewString()
	}

	now := time.Now()
	envelope := models.Envelope{
		EncryptedContent:      ciphertext,
		EncryptedSymmetricKey: wrappedKey,
		IV:                    iv,
		AuthTag:               tag,
		Timestamp:             now.UnixMilli(),
		MessageID:             messageID,
		Version:               models.VersionHybridPQ,
	}
	if opts.TTL > 0 {
		expiresAt := now.Add(opts.TTL).UnixMilli()
		envelope.ExpiresAt = &expiresAt
	}

	return envelope, nil
}

// Decrypt implements [PQCipherService].
func (p *pqCipherService) Decrypt(envelope models.Envelope, recipientSecretKey []byte) ([]byte, error) {
	if envelope.ExpiredAt(time.Now()) {
		return nil, ErrExpired
	}
	if envelope.Version != models.VersionHybridPQ {
		return nil, ErrUnsupportedVersion
	}
	if err := checkEnvelopeShape(envelope); err != nil {
		return nil, err
	}
	if len(envelope.EncryptedSymmetricKey) < kemCiphertextSize+ivSize+authTagSize {
		return nil, ErrMalformedEnvelope
	}

	var priv mlkem768.PrivateKey
	if err := priv.Unpack(recipientSecretKey); err != nil {
		return nil, ErrKeyUnwrapFailed
	}

	kemCiphertext := envelope.EncryptedSymmetricKey[:kemCiphertextSize]
	rest := envelope.EncryptedSymmetricKey[kemCiphertextSize:]
	wrapNonce := rest[:ivSize]
	wrapped := rest[ivSize : len(rest)-authTagSize]
	wrapTag := rest[len(rest)-authTagSize:]

	sharedSecret := make([]byte, kemSharedKeySize)
	priv.DecapsulateTo(sharedSecret, kemCiphertext)
	defer Zeroize(sharedSecret)

	symKey, err := openAESGCM(sharedSecret, wrapNonce, wrapped, wrapTag, aad(envelope.Version))
	if err != nil {
		// ML-KEM decapsulation is implicit-rejection: a tampered KEM
		// ciphertext yields a wrong shared secret, surfacing here.
		return nil, ErrKeyUnwrapFailed
	}
	defer Zeroize(symKey)

	plaintext, err := openAESGCM(symKey, envelope.IV, envelope.EncryptedContent, envelope.AuthTag, aad(envelope.Version))
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

const (
	pemTypePublicKey  = "PUBLIC KEY"
	pemTypePrivateKey = "PRIVATE KEY"
)

var errNotRSAKey = errors.New("PEM block does not contain an RSA key")

// EncodePublicKeyPEM serializes an RSA public key as a PKIX "PUBLIC KEY"
// PEM block, the form published to the key directory and sent over the wire.
func EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der})), nil
}

// DecodePublicKeyPEM parses a PKIX "PUBLIC KEY" PEM block into an RSA
// public key.
func DecodePublicKeyPEM(data string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil || block.Type != pemTypePublicKey {
		return nil, errors.New("no PUBLIC KEY PEM block found")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errNotRSAKey
	}
	return pub, nil
}

// EncodePrivateKeyPEM serializes an RSA private key as a PKCS#8
// "PRIVATE KEY" PEM block. Only the key-issuance response uses this form;
// at-rest keys are stored as wrapped DER, never PEM.
func EncodePrivateKeyPEM(priv *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", fmt.Errorf("marshal private key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: der})), nil
}

// DecodePrivateKeyPEM parses a PKCS#8 "PRIVATE KEY" PEM block into an RSA
// private key.
func DecodePrivateKeyPEM(data string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil || block.Type != pemTypePrivateKey {
		return nil, errors.New("no PRIVATE KEY PEM block found")
	}
	return ParsePrivateKeyDER(block.Bytes)
}

// MarshalPrivateKeyDER serializes an RSA private key as PKCS#8 DER, the
// form the custodian wraps and persists.
func MarshalPrivateKeyDER(priv *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return der, nil
}

// ParsePrivateKeyDER parses PKCS#8 DER into an RSA private key.
func ParsePrivateKeyDER(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errNotRSAKey
	}
	return priv, nil
}

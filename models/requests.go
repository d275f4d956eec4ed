package models

// Request and response bodies of the key service HTTP API.

// KeyPairResponse is returned by POST /api/crypto/generate-keypair.
// Both halves are PEM-encoded; the server does not retain the private half.
type KeyPairResponse struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// PublishKeyRequest publishes an account's public key to the directory.
type PublishKeyRequest struct {
	AccountID string `json:"accountId"`
	PublicKey string `json:"publicKey"`
}

// PublicKeyResponse is the directory lookup result for one account.
type PublicKeyResponse struct {
	AccountID string `json:"accountId"`
	PublicKey string `json:"publicKey"`
}

// DecryptPreviewRequest asks the server to decrypt an envelope on the
// caller's behalf. This path hands the private key to the server and is a
// deliberately reduced-security fallback, outside the end-to-end guarantee.
type DecryptPreviewRequest struct {
	Envelope   Envelope `json:"envelope"`
	PrivateKey string   `json:"privateKey"`
}

// DecryptPreviewResponse carries the recovered plaintext.
type DecryptPreviewResponse struct {
	MessageID string `json:"messageId"`
	Plaintext string `json:"plaintext"`
}

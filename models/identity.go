package models

import (
	"crypto/rsa"
	"time"
)

// IdentityKeyPair is the long-lived asymmetric identity of one account.
// Exactly one pair is active per account at any time. The public half is
// published to the key directory; the private half never leaves the owning
// device in plaintext and is held only by the custodian.
type IdentityKeyPair struct {
	PublicKey  *rsa.PublicKey
	PrivateKey *rsa.PrivateKey
	CreatedAt  time.Time
}

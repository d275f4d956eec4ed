package crypto

import (
	"strings"
	"testing"
)

func TestPublicKeyPEM_RoundTrip(t *testing.T) {
	priv := testKeyPair(t)

	pemStr, err := EncodePublicKeyPEM(&priv.PublicKey)
	if err != nil {
		t.Fatalf("EncodePublicKeyPEM: %v", err)
	}
	if !strings.HasPrefix(pemStr, "-----BEGIN PUBLIC KEY-----") {
		t.Fatalf("unexpected PEM header: %q", pemStr[:40])
	}

	pub, err := DecodePublicKeyPEM(pemStr)
	if err != nil {
		t.Fatalf("DecodePublicKeyPEM: %v", err)
	}
	if pub.N.Cmp(priv.PublicKey.N) != 0 || pub.E != priv.PublicKey.E {
		t.Fatal("decoded public key differs from original")
	}
}

func TestPrivateKeyPEM_RoundTrip(t *testing.T) {
	priv := testKeyPair(t)

	pemStr, err := EncodePrivateKeyPEM(priv)
	if err != nil {
		t.Fatalf("EncodePrivateKeyPEM: %v", err)
	}

	got, err := DecodePrivateKeyPEM(pemStr)
	if err != nil {
		t.Fatalf("DecodePrivateKeyPEM: %v", err)
	}
	if got.D.Cmp(priv.D) != 0 {
		t.Fatal("decoded private key differs from original")
	}
}

func TestDecodePublicKeyPEM_Garbage(t *testing.T) {
	if _, err := DecodePublicKeyPEM("not a pem block"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

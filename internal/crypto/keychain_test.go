package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKEK_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKEK(passphrase, salt)
	k2 := svc.DeriveKEK(passphrase, salt)

	if len(k1) != 32 {
		t.Fatalf("KEK length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same passphrase+salt")
	}
}

func TestDeriveKEK_DifferentSaltProducesDifferentKEK(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "same passphrase"
	k1 := svc.DeriveKEK(passphrase, bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKEK(passphrase, bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different salts to produce different KEKs")
	}
}

func TestWrapKey_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()

	kek := svc.DeriveKEK("pw", bytes.Repeat([]byte{0x11}, 16))
	keyDER := bytes.Repeat([]byte{0xCD}, 1200)

	blob, err := svc.WrapKey(keyDER, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	if bytes.Contains(blob, keyDER) {
		t.Fatalf("wrapped blob contains the plaintext key")
	}

	got, err := svc.UnwrapKey(blob, kek)
	if err != nil {
		t.Fatalf("UnwrapKey error: %v", err)
	}
	if !bytes.Equal(got, keyDER) {
		t.Fatalf("unwrapped key differs from original")
	}
}

func TestUnwrapKey_WrongKEKFails(t *testing.T) {
	svc := NewKeyChainService()

	salt := bytes.Repeat([]byte{0x22}, 16)
	blob, err := svc.WrapKey([]byte("key material"), svc.DeriveKEK("right", salt))
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	got, err := svc.UnwrapKey(blob, svc.DeriveKEK("wrong", salt))
	if err == nil {
		t.Fatalf("expected unwrap with wrong KEK to fail, got %d bytes", len(got))
	}
}

func TestUnwrapKey_TruncatedBlobFails(t *testing.T) {
	svc := NewKeyChainService()
	kek := svc.DeriveKEK("pw", bytes.Repeat([]byte{0x33}, 16))

	if _, err := svc.UnwrapKey([]byte{0x01, 0x02}, kek); err == nil {
		t.Fatalf("expected truncated blob to fail")
	}
}

// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAccountIDCtxKey(t *testing.T) {
	if AccountIDCtxKey.String() != "accountID" {
		t.Errorf("expected 'accountID', got '%s'", AccountIDCtxKey.String())
	}
}

func TestGetAccountIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, "alice")

	accountID, ok := GetAccountIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if accountID != "alice" {
		t.Errorf("expected accountID='alice', got %q", accountID)
	}
}

func TestGetAccountIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	accountID, ok := GetAccountIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if accountID != "" {
		t.Errorf("expected empty accountID, got %q", accountID)
	}
}

func TestGetAccountIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, int64(42))

	accountID, ok := GetAccountIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if accountID != "" {
		t.Errorf("expected empty accountID, got %q", accountID)
	}
}

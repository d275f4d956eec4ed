// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// JWT token generation and validation, UUID generation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the account identifier in the
// context. Used together with GetAccountIDFromContext for type-safe
// retrieval of the account ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountIDCtxKey, "alice")
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the account identifier from the context.
//
// Returns the account ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	accountID, ok := utils.GetAccountIDFromContext(ctx)
//	if !ok {
//	    // handle missing account in context
//	}
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok
}

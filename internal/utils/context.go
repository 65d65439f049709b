// SPDX-License-Identifier: Apache-2.0

// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP client
// initialization, and service JWT generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that
// store string-keyed values in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the authentication middleware stores
// the name of the calling service (the validated token's "sub" claim).
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the calling service name from the context.
//
// Returns the caller name and an ok flag:
//   - ok == true  — value is found and is a string
//   - ok == false — value is missing or has an unexpected type
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok
}

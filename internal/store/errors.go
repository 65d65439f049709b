// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAlreadyDelivered is returned when recording a delivery for a
	// (receiver, trigger, occurrence) tuple that already has one. It is the
	// idempotency signal: the caller must treat the send as already done.
	ErrAlreadyDelivered = errors.New("message already delivered for this trigger occurrence")

	// ErrScheduledMessageNotClaimed is returned when a PROCESSING claim on a
	// scheduled message affects no rows, meaning another poll already took it
	// or the row is no longer PENDING.
	ErrScheduledMessageNotClaimed = errors.New("scheduled message was not claimed")

	// ErrScheduledMessageNotFound is returned when a status transition targets
	// a scheduled message that does not exist or is not in the expected state.
	ErrScheduledMessageNotFound = errors.New("scheduled message was not found")
)

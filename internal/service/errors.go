// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values outside the accepted range.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoCoachAvailable means no coach persona could be resolved for a
	// user: no assigned coach, no persona account, no ADMIN/MENTOR fallback.
	ErrNoCoachAvailable = errors.New("no coach persona available")

	// ErrTokenIsExpiredOrInvalid is returned for any service-token
	// validation failure; callers never inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

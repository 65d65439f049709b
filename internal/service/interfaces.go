// SPDX-License-Identifier: Apache-2.0

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/coach-courier/models"
)

// TriggerService is the auto-message dispatcher. Dispatch is
// fire-and-forget from the caller's point of view: content lookup misses,
// dedup hits and adapter failures are logged and swallowed so the business
// action behind the trigger never fails. Persistence errors of the
// first-login welcome flow are the one exception and are returned.
type TriggerService interface {
	Dispatch(ctx context.Context, req models.TriggerRequest) error
}

// ScheduledMessageService owns the deferred-send lifecycle: the worker's
// poll pass plus the operator listing and requeue surface.
type ScheduledMessageService interface {
	// ProcessDue claims and delivers all due PENDING rows, up to the
	// configured batch size. Per-row failures are recorded on the row
	// (FAILED + last_error), never returned.
	ProcessDue(ctx context.Context) error

	// List returns scheduled messages filtered by optional status.
	List(ctx context.Context, status string, limit int) ([]models.ScheduledMessage, error)

	// Requeue returns a FAILED row to PENDING.
	Requeue(ctx context.Context, id int64) error
}

// LoginService handles platform-reported logins: login bookkeeping, the
// background audit write with geolocation, and the first-login welcome
// dispatch.
type LoginService interface {
	HandleLogin(ctx context.Context, userID int64, ip, userAgent string) error
}

// TokenService validates the service JWTs presented by internal callers.
type TokenService interface {
	ParseToken(ctx context.Context, tokenString string) (models.ServiceToken, error)
}

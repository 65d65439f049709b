package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/models"
)

// loginEventRepository is the SQL-backed implementation of
// [LoginEventRepository].
type loginEventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLoginEventRepository constructs a [LoginEventRepository] backed by the
// provided database connection and logger.
func NewLoginEventRepository(db *DB, logger *logger.Logger) LoginEventRepository {
	logger.Debug().Msg("creating login event repository")
	return &loginEventRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLoginEvent persists a login audit row and returns it with
// server-assigned fields.
func (r *loginEventRepository) CreateLoginEvent(ctx context.Context, e models.LoginEvent) (models.LoginEvent, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createLoginEvent,
		e.UserID, e.IP, e.Country, e.CountryCode, e.City, e.Region, e.ISP, e.UserAgent)

	if err := row.Scan(
		&e.LoginEventID,
		&e.UserID,
		&e.IP,
		&e.Country,
		&e.CountryCode,
		&e.City,
		&e.Region,
		&e.ISP,
		&e.UserAgent,
		&e.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*loginEventRepository.CreateLoginEvent").Msg("error: scanning error")
		return models.LoginEvent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return e, nil
}

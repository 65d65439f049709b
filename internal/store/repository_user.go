// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It reads platform accounts and performs the two mutations this workflow
// owns: coach assignment and login bookkeeping.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByID retrieves a user record by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record by its unique email address.
//
// Error handling mirrors [userRepository.FindUserByID].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindEarliestByRoles returns the earliest-created active account carrying
// one of the given roles. Used as the last-resort coach fallback.
//
// The query is built with squirrel because the role list is variadic
// (squirrel generates IN ($1,$2,...) for a slice).
func (r *userRepository) FindEarliestByRoles(ctx context.Context, roles ...string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("user_id", "email", "first_name", "last_name", "role", "is_active", "is_fake",
			"assigned_coach_id", "mini_diploma_category", "first_login_at", "last_login_at", "login_count", "created_at").
		From("users").
		Where(sq.Eq{"role": roles, "is_active": true}).
		OrderBy("created_at").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindEarliestByRoles").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindEarliestByRoles").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// SetAssignedCoach pins coachID onto the user so future triggers keep the
// same persona.
func (r *userRepository) SetAssignedCoach(ctx context.Context, userID, coachID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setAssignedCoach, coachID, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAssignedCoach").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// RecordLogin refreshes last_login_at, increments login_count and sets
// first_login_at once. Reports first=true when this was the user's first
// recorded login (login_count became 1).
func (r *userRepository) RecordLogin(ctx context.Context, userID int64, at time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	var loginCount int64
	row := r.db.QueryRowContext(ctx, recordLogin, at, userID)
	if err := row.Scan(&loginCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.RecordLogin").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return loginCount == 1, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsActive,
		&user.IsFake,
		&user.AssignedCoachID,
		&user.MiniDiplomaCategory,
		&user.FirstLoginAt,
		&user.LastLoginAt,
		&user.LoginCount,
		&user.CreatedAt,
	)
	return user, err
}

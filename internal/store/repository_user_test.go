package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{
		"user_id", "email", "first_name", "last_name", "role", "is_active", "is_fake",
		"assigned_coach_id", "mini_diploma_category", "first_login_at", "last_login_at", "login_count", "created_at",
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(7, "anna@example.com", "Anna", "Lee", "STUDENT", true, false, nil, "", nil, nil, 0, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := repo.FindUserByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", user.UserID)
	}
	if user.FirstName != "Anna" {
		t.Errorf("expected first name Anna, got %s", user.FirstName)
	}
	if user.AssignedCoachID.Valid {
		t.Error("expected no assigned coach")
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("sarah@courses.example").
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindUserByEmail(context.Background(), "sarah@courses.example")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindEarliestByRoles_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(2, "mentor@example.com", "Max", "Mentor", "MENTOR", true, false, nil, "", nil, nil, 3, now)

	// squirrel sorts the Eq keys, so is_active binds before the role
	// slice's IN ($2,$3).
	mock.ExpectQuery("SELECT (.+) FROM users WHERE").
		WithArgs(true, "ADMIN", "MENTOR").
		WillReturnRows(rows)

	user, err := repo.FindEarliestByRoles(context.Background(), "ADMIN", "MENTOR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != "MENTOR" {
		t.Errorf("expected MENTOR role, got %s", user.Role)
	}
}

func TestSetAssignedCoach_NoRows(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(9), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetAssignedCoach(context.Background(), 5, 9)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestRecordLogin_FirstLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	at := time.Now()
	mock.ExpectQuery("UPDATE users").
		WithArgs(at, int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"login_count"}).AddRow(1))

	first, err := repo.RecordLogin(context.Background(), 5, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first {
		t.Error("expected first=true on login_count=1")
	}
}

func TestRecordLogin_RepeatLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	at := time.Now()
	mock.ExpectQuery("UPDATE users").
		WithArgs(at, int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"login_count"}).AddRow(12))

	first, err := repo.RecordLogin(context.Background(), 5, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first {
		t.Error("expected first=false on login_count=12")
	}
}

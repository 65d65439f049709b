package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
)

// NewConnectSQLite opens the local development backend. The schema is
// applied directly (SQLite DDL differs from the PostgreSQL migrations).
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error applying sqlite schema")
		return nil, fmt.Errorf("error applying sqlite schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		driver: "sqlite3",
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    user_id               INTEGER PRIMARY KEY AUTOINCREMENT,
    email                 TEXT      NOT NULL UNIQUE,
    first_name            TEXT      NOT NULL DEFAULT '',
    last_name             TEXT      NOT NULL DEFAULT '',
    role                  TEXT      NOT NULL DEFAULT 'STUDENT',
    is_active             BOOLEAN   NOT NULL DEFAULT TRUE,
    is_fake               BOOLEAN   NOT NULL DEFAULT FALSE,
    assigned_coach_id     INTEGER,
    mini_diploma_category TEXT      NOT NULL DEFAULT '',
    first_login_at        TIMESTAMP,
    last_login_at         TIMESTAMP,
    login_count           INTEGER   NOT NULL DEFAULT 0,
    created_at            TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages (
    message_id      INTEGER PRIMARY KEY AUTOINCREMENT,
    sender_id       INTEGER   NOT NULL,
    receiver_id     INTEGER   NOT NULL,
    content         TEXT      NOT NULL,
    type            TEXT      NOT NULL DEFAULT 'DIRECT',
    attachment_url  TEXT      NOT NULL DEFAULT '',
    attachment_type TEXT      NOT NULL DEFAULT '',
    attachment_name TEXT      NOT NULL DEFAULT '',
    voice_duration  INTEGER   NOT NULL DEFAULT 0,
    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS notifications (
    notification_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id         INTEGER   NOT NULL,
    type            TEXT      NOT NULL,
    title           TEXT      NOT NULL,
    message         TEXT      NOT NULL,
    payload         TEXT      NOT NULL DEFAULT '{}',
    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS scheduled_messages (
    scheduled_message_id INTEGER PRIMARY KEY AUTOINCREMENT,
    sender_id            INTEGER   NOT NULL,
    receiver_id          INTEGER   NOT NULL,
    kind                 TEXT      NOT NULL DEFAULT 'LITERAL',
    text_content         TEXT      NOT NULL DEFAULT '',
    voice_script         TEXT      NOT NULL DEFAULT '',
    trigger_name         TEXT      NOT NULL DEFAULT '',
    trigger_value        TEXT      NOT NULL DEFAULT '',
    scheduled_for        TIMESTAMP NOT NULL,
    status               TEXT      NOT NULL DEFAULT 'PENDING',
    attempts             INTEGER   NOT NULL DEFAULT 0,
    last_error           TEXT      NOT NULL DEFAULT '',
    sent_at              TIMESTAMP,
    created_at           TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS message_deliveries (
    delivery_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    receiver_id    INTEGER   NOT NULL,
    trigger_key    TEXT      NOT NULL,
    occurrence_key TEXT      NOT NULL DEFAULT '-',
    message_id     INTEGER,
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (receiver_id, trigger_key, occurrence_key)
);

CREATE TABLE IF NOT EXISTS login_events (
    login_event_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id        INTEGER   NOT NULL,
    ip             TEXT      NOT NULL DEFAULT '',
    country        TEXT      NOT NULL DEFAULT '',
    country_code   TEXT      NOT NULL DEFAULT '',
    city           TEXT      NOT NULL DEFAULT '',
    region         TEXT      NOT NULL DEFAULT '',
    isp            TEXT      NOT NULL DEFAULT '',
    user_agent     TEXT      NOT NULL DEFAULT '',
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

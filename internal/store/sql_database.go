// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/migrations"
)

type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies the embedded schema. The PostgreSQL backend runs the
// goose migrations; the SQLite development backend applies its own schema
// in NewConnectSQLite, so Migrate is a no-op there.
func (db *DB) Migrate() error {
	if db.driver == "sqlite3" {
		return nil
	}
	return migrations.Migrate(db.DB)
}

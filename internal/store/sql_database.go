package store

import (
	"database/sql"

	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/migrations"
)

// DB is the session journal connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending journal migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

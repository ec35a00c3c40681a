package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/logger"
)

// Storages groups every persistence backend used by the host.
type Storages struct {
	// SessionJournal is the SQLite-backed session history.
	SessionJournal SessionJournal

	// Checkpoints hands out bbolt checkpoint stores per light-client data
	// directory.
	Checkpoints *CheckpointStorePool

	db *DB
}

// NewStorages opens the journal database and runs its migrations. A
// relative DSN is resolved against appDir.
func NewStorages(ctx context.Context, cfg config.Storage, appDir string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	dsn := cfg.DB.DSN
	if !filepath.IsAbs(dsn) {
		dsn = filepath.Join(appDir, dsn)
	}

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SessionJournal: NewSessionRepository(db, logger),
		Checkpoints:    NewCheckpointStorePool(logger),
		db:             db,
	}, nil
}

// Close closes the checkpoint files and the journal database.
func (s *Storages) Close() error {
	var errs []error
	if s.Checkpoints != nil {
		errs = append(errs, s.Checkpoints.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}

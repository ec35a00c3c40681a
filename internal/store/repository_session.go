// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/models"
)

const (
	sessionsTable       = "sessions"
	defaultSessionLimit = 50
	maxSessionLimit     = 500
)

var sessionColumns = []string{
	"id",
	"chain_id",
	"network",
	"execution_rpc",
	"consensus_rpc",
	"data_dir",
	"state",
	"error",
	"started_at",
	"stopped_at",
}

// sessionRepository is the SQLite-backed implementation of [SessionJournal].
// Queries are built with squirrel using "?" placeholders.
type sessionRepository struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewSessionRepository constructs a [SessionJournal] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionJournal {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, rec models.SessionRecord) error {
	log := logger.FromContext(ctx)

	var stoppedAt any
	if rec.StoppedAt != nil {
		stoppedAt = rec.StoppedAt.UTC()
	}

	query, args, err := r.builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			rec.ID,
			rec.ChainID,
			rec.Network,
			rec.ExecutionRPC,
			rec.ConsensusRPC,
			rec.DataDir,
			string(rec.State),
			rec.Error,
			rec.StartedAt.UTC(),
			stoppedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FinishSession only transitions rows that are still running, so a late
// stop never overwrites an earlier terminal state.
func (r *sessionRepository) FinishSession(ctx context.Context, id string, state models.SessionState, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(sessionsTable).
		Set("state", string(state)).
		Set("stopped_at", at.UTC()).
		Where(sq.Eq{"id": id, "state": string(models.SessionRunning)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FinishSession").Msg("error updating session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	limit = min(limit, maxSessionLimit)

	qb := r.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit))
	if filter.State != "" {
		qb = qb.Where(sq.Eq{"state": string(filter.State)})
	}
	if filter.ChainID != 0 {
		qb = qb.Where(sq.Eq{"chain_id": filter.ChainID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ListSessions").Msg("error querying sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SessionRecord, 0)
	for rows.Next() {
		var (
			rec       models.SessionRecord
			state     string
			stoppedAt sql.NullTime
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.ChainID,
			&rec.Network,
			&rec.ExecutionRPC,
			&rec.ConsensusRPC,
			&rec.DataDir,
			&state,
			&rec.Error,
			&rec.StartedAt,
			&stoppedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.State = models.SessionState(state)
		if stoppedAt.Valid {
			t := stoppedAt.Time
			rec.StoppedAt = &t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when a journal update targets a session
	// id that is not recorded or is no longer running.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrCheckpointStoreClosed is returned when a checkpoint store handle is
	// used after Close.
	ErrCheckpointStoreClosed = errors.New("checkpoint store is closed")

	// ErrCorruptCheckpoint is returned when a stored checkpoint is not a
	// 32-byte root.
	ErrCorruptCheckpoint = errors.New("stored checkpoint is corrupt")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan session rows")
)

package store

import "errors"

// Sentinel errors returned by the record storage. Callers should use
// [errors.Is] to match against these values; the underlying OS or decoding
// error is wrapped alongside.
var (
	// ErrRecordNotFound is returned when no record file exists for a username.
	ErrRecordNotFound = errors.New("no user was found")

	// ErrLoginAlreadyExists is returned when registering a username whose
	// record file is already present.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrIOFailure is returned when opening, reading or writing a record file
	// fails for a reason other than the file being absent.
	ErrIOFailure = errors.New("record file i/o failure")

	// ErrMalformedRecord is returned when a record file declares a length or
	// count that is negative, exceeds its bound, or runs past the end of the
	// file.
	ErrMalformedRecord = errors.New("malformed record")
)

// Low-level journal database errors. These are returned (or wrapped) by
// [EventRepository] methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan event rows")

	// ErrUnsupportedDSN is returned when the journal DSN names neither a
	// PostgreSQL URL nor a SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a row addressed by local id (or, in
	// the in-memory server collection, by server id) does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrServerIDConflict is returned when a server identity is already bound
	// to a different local row.
	ErrServerIDConflict = errors.New("server id is already bound to another record")

	// ErrUnknownColumn is returned by partial updates naming a column that is
	// not a payload column of the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNothingToUpdate is returned by partial updates with no fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrNoSession is returned when no session has been saved locally.
	ErrNoSession = errors.New("no session was saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

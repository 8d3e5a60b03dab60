// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// syncRepository is the SQLite-backed implementation of [SyncRepository]
// for one [Table].
type syncRepository[P any] struct {
	*DB
	table  Table[P]
	now    func() time.Time
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository] over table.
func NewSyncRepository[P any](db *DB, table Table[P], logger *logger.Logger) SyncRepository[P] {
	return &syncRepository[P]{
		DB:     db,
		table:  table,
		now:    time.Now,
		logger: logger,
	}
}

// Insert stores a new local row: no server id, dirty, revision 1.
func (r *syncRepository[P]) Insert(ctx context.Context, ownerID int64, payload P) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(r.table, ownerID, nil, payload, false, 1, formatTimestamp(r.now()))
	if err != nil {
		return 0, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.Insert").
			Str("table", r.table.Name).
			Int64("owner_id", ownerID).
			Msg("failed to insert local record")
		return 0, r.classify(err)
	}

	localID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return localID, nil
}

// Update merges fields into the payload columns of localID as a local
// mutation.
func (r *syncRepository[P]) Update(ctx context.Context, localID int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return ErrNothingToUpdate
	}
	for col := range fields {
		if !r.table.hasColumn(col) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, r.table.Name, col)
		}
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		prev, err := r.updatedAt(ctx, tx, localID)
		if err != nil {
			return err
		}

		query, args, err := buildLocalUpdateQuery(r.table.Name, localID, fields, formatTimestamp(advance(r.now(), prev)))
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "syncRepository.Update").
				Str("table", r.table.Name).
				Int64("local_id", localID).
				Msg("failed to update local record")
			return r.classify(err)
		}
		return nil
	})
}

// Mutate runs a read-modify-write of the payload of localID inside one
// transaction. An error from fn aborts the mutation and is returned as is.
func (r *syncRepository[P]) Mutate(ctx context.Context, localID int64, fn func(*P) error) (models.LocalRecord[P], error) {
	log := logger.FromContext(ctx)

	var record models.LocalRecord[P]
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.get(ctx, tx, localID)
		if err != nil {
			return err
		}

		if err = fn(&current.Payload); err != nil {
			return err
		}

		fields := make(map[string]any, len(r.table.Columns))
		values := r.table.Values(current.Payload)
		for i, col := range r.table.Columns {
			fields[col] = values[i]
		}

		updatedAt := advance(r.now(), current.UpdatedAt)
		query, args, err := buildLocalUpdateQuery(r.table.Name, localID, fields, formatTimestamp(updatedAt))
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "syncRepository.Mutate").
				Str("table", r.table.Name).
				Int64("local_id", localID).
				Msg("failed to write mutated record")
			return r.classify(err)
		}

		current.Dirty = true
		current.Revision++
		current.UpdatedAt = updatedAt
		record = current
		return nil
	})
	if err != nil {
		return models.LocalRecord[P]{}, err
	}

	return record, nil
}

// Delete removes localID permanently.
func (r *syncRepository[P]) Delete(ctx context.Context, localID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.table.Name, localID)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.Delete").
			Str("table", r.table.Name).
			Int64("local_id", localID).
			Msg("failed to delete local record")
		return r.classify(err)
	}

	return requireAffected(result, localID)
}

func (r *syncRepository[P]) Get(ctx context.Context, localID int64) (models.LocalRecord[P], error) {
	return r.get(ctx, r.DB, localID)
}

func (r *syncRepository[P]) ListByOwner(ctx context.Context, ownerID int64) ([]models.LocalRecord[P], error) {
	return r.list(ctx, ownerID, false)
}

func (r *syncRepository[P]) ListDirtyByOwner(ctx context.Context, ownerID int64) ([]models.LocalRecord[P], error) {
	return r.list(ctx, ownerID, true)
}

// GetServerID returns the server identity bound to localID, nil if none.
func (r *syncRepository[P]) GetServerID(ctx context.Context, localID int64) (*string, error) {
	query, args, err := buildSelectServerIDQuery(r.table.Name, localID)
	if err != nil {
		return nil, err
	}

	var serverID sql.NullString
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&serverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: local_id=%d", ErrRecordNotFound, localID)
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nullableString(serverID), nil
}

// FindByServerID looks up the row bound to serverID for the owner.
func (r *syncRepository[P]) FindByServerID(ctx context.Context, ownerID int64, serverID string) (models.LocalRecord[P], bool, error) {
	return r.findByServerID(ctx, r.DB, ownerID, serverID)
}

// ApplyRemote merges one remote record. The lookup, the accept decision and
// the write happen in one transaction, so a local mutation can never slip in
// between the decision and the overwrite.
func (r *syncRepository[P]) ApplyRemote(ctx context.Context, ownerID int64, remote models.RemoteRecord[P], accept AcceptFunc[P]) (models.ApplyOutcome, error) {
	log := logger.FromContext(ctx)

	outcome := models.ApplyRejected
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		local, found, err := r.findByServerID(ctx, tx, ownerID, remote.ServerID)
		if err != nil {
			return err
		}

		var localPtr *models.LocalRecord[P]
		if found {
			localPtr = &local
		}
		if !accept(localPtr, remote) {
			outcome = models.ApplyRejected
			return nil
		}

		updatedAt := formatTimestamp(remote.UpdatedAt)

		if !found {
			serverID := remote.ServerID
			query, args, err := buildInsertQuery(r.table, ownerID, &serverID, remote.Payload, true, 0, updatedAt)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "syncRepository.ApplyRemote").
					Str("table", r.table.Name).
					Str("server_id", remote.ServerID).
					Msg("failed to insert remote record")
				return r.classify(err)
			}
			outcome = models.ApplyInserted
			return nil
		}

		if !local.Dirty && r.table.equal(local.Payload, remote.Payload) && local.UpdatedAt.Equal(remote.UpdatedAt) {
			outcome = models.ApplyUnchanged
			return nil
		}

		query, args, err := buildRemoteOverwriteQuery(r.table, local.LocalID, remote.Payload, updatedAt)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "syncRepository.ApplyRemote").
				Str("table", r.table.Name).
				Int64("local_id", local.LocalID).
				Str("server_id", remote.ServerID).
				Msg("failed to overwrite local record")
			return r.classify(err)
		}
		outcome = models.ApplyUpdated
		return nil
	})
	if err != nil {
		return models.ApplyRejected, err
	}

	return outcome, nil
}

// BindServerID stores serverID on localID unconditionally and clears dirty
// only when the row is still at revision.
func (r *syncRepository[P]) BindServerID(ctx context.Context, localID int64, serverID string, revision int64) (bool, error) {
	log := logger.FromContext(ctx)

	var cleared bool
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildBindServerIDQuery(r.table.Name, localID, serverID)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "syncRepository.BindServerID").
				Str("table", r.table.Name).
				Int64("local_id", localID).
				Str("server_id", serverID).
				Msg("failed to bind server id")
			return r.classify(err)
		}
		if err = requireAffected(result, localID); err != nil {
			return err
		}

		cleared, err = r.markClean(ctx, tx, localID, revision)
		return err
	})
	if err != nil {
		return false, err
	}

	return cleared, nil
}

// MarkClean clears dirty only when the row is still at revision.
func (r *syncRepository[P]) MarkClean(ctx context.Context, localID int64, revision int64) (bool, error) {
	return r.markClean(ctx, r.DB, localID, revision)
}

func (r *syncRepository[P]) markClean(ctx context.Context, q queryer, localID, revision int64) (bool, error) {
	query, args, err := buildMarkCleanQuery(r.table.Name, localID, revision)
	if err != nil {
		return false, err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncRepository.MarkClean").
			Str("table", r.table.Name).
			Int64("local_id", localID).
			Int64("revision", revision).
			Msg("failed to mark record clean")
		return false, r.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected == 1, nil
}

func (r *syncRepository[P]) get(ctx context.Context, q queryer, localID int64) (models.LocalRecord[P], error) {
	query, args, err := buildSelectByIDQuery(r.table, localID)
	if err != nil {
		return models.LocalRecord[P]{}, err
	}

	record, err := r.scanRecord(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalRecord[P]{}, fmt.Errorf("%w: local_id=%d", ErrRecordNotFound, localID)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "syncRepository.Get").
			Str("table", r.table.Name).
			Int64("local_id", localID).
			Msg("failed to scan local record")
		return models.LocalRecord[P]{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *syncRepository[P]) findByServerID(ctx context.Context, q queryer, ownerID int64, serverID string) (models.LocalRecord[P], bool, error) {
	query, args, err := buildSelectByServerIDQuery(r.table, ownerID, serverID)
	if err != nil {
		return models.LocalRecord[P]{}, false, err
	}

	record, err := r.scanRecord(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalRecord[P]{}, false, nil
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "syncRepository.FindByServerID").
			Str("table", r.table.Name).
			Str("server_id", serverID).
			Msg("failed to scan local record")
		return models.LocalRecord[P]{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, true, nil
}

func (r *syncRepository[P]) list(ctx context.Context, ownerID int64, dirtyOnly bool) ([]models.LocalRecord[P], error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListByOwnerQuery(r.table, ownerID, dirtyOnly)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.list").
			Str("table", r.table.Name).
			Int64("owner_id", ownerID).
			Bool("dirty_only", dirtyOnly).
			Msg("failed to query local records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.LocalRecord[P], 0, 16)
	for rows.Next() {
		record, scanErr := r.scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncRepository.list").
				Str("table", r.table.Name).
				Int64("owner_id", ownerID).
				Msg("failed to scan local record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *syncRepository[P]) scanRecord(s rowScanner) (models.LocalRecord[P], error) {
	var (
		record    models.LocalRecord[P]
		serverID  sql.NullString
		synced    bool
		updatedAt string
	)

	dest := make([]any, 0, len(r.table.Columns)+6)
	dest = append(dest, &record.LocalID, &serverID, &record.OwnerID)
	dest = append(dest, r.table.Scan(&record.Payload)...)
	dest = append(dest, &synced, &record.Revision, &updatedAt)

	if err := s.Scan(dest...); err != nil {
		return models.LocalRecord[P]{}, err
	}

	ts, err := parseTimestamp(updatedAt)
	if err != nil {
		return models.LocalRecord[P]{}, err
	}

	record.ServerID = nullableString(serverID)
	record.Dirty = !synced
	record.UpdatedAt = ts
	return record, nil
}

func (r *syncRepository[P]) updatedAt(ctx context.Context, q queryer, localID int64) (time.Time, error) {
	query, args, err := buildSelectUpdatedAtQuery(r.table.Name, localID)
	if err != nil {
		return time.Time{}, err
	}

	var raw string
	if err = q.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, fmt.Errorf("%w: local_id=%d", ErrRecordNotFound, localID)
		}
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return parseTimestamp(raw)
}

func requireAffected(result sql.Result, localID int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: local_id=%d", ErrRecordNotFound, localID)
	}
	return nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	getCurrentSession = `SELECT owner_id, token, saved_at FROM sessions WHERE id = 1;`

	saveSession = `INSERT INTO sessions (id, owner_id, token, saved_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET owner_id = excluded.owner_id, token = excluded.token, saved_at = excluded.saved_at;`

	deleteSession = `DELETE FROM sessions WHERE id = 1;`

	deleteSessionWithToken = `DELETE FROM sessions WHERE id = 1 AND token = ?;`
)

func buildInsertQuery[P any](t Table[P], ownerID int64, serverID *string, payload P, synced bool, revision int64, updatedAt string) (string, []any, error) {
	columns := make([]string, 0, len(t.Columns)+5)
	columns = append(columns, "owner_id", "server_id")
	columns = append(columns, t.Columns...)
	columns = append(columns, "synced", "revision", "updated_at")

	values := make([]any, 0, len(columns))
	values = append(values, ownerID, serverID)
	values = append(values, t.Values(payload)...)
	values = append(values, synced, revision, updatedAt)

	query, args, err := sq.Insert(t.Name).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectByIDQuery[P any](t Table[P], localID int64) (string, []any, error) {
	query, args, err := sq.Select(t.selectColumns()...).
		From(t.Name).
		Where(sq.Eq{"id": localID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectByServerIDQuery[P any](t Table[P], ownerID int64, serverID string) (string, []any, error) {
	query, args, err := sq.Select(t.selectColumns()...).
		From(t.Name).
		Where(sq.Eq{"owner_id": ownerID, "server_id": serverID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListByOwnerQuery lists all rows of the owner, newest first. With
// dirtyOnly it lists the push queue instead, in insertion order.
func buildListByOwnerQuery[P any](t Table[P], ownerID int64, dirtyOnly bool) (string, []any, error) {
	builder := sq.Select(t.selectColumns()...).From(t.Name)

	if dirtyOnly {
		builder = builder.Where(sq.Eq{"owner_id": ownerID, "synced": false}).OrderBy("id ASC")
	} else {
		builder = builder.Where(sq.Eq{"owner_id": ownerID}).OrderBy("updated_at DESC", "id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLocalUpdateQuery writes fields as a local mutation: dirty, revision+1,
// updated_at set.
func buildLocalUpdateQuery(table string, localID int64, fields map[string]any, updatedAt string) (string, []any, error) {
	query, args, err := sq.Update(table).
		SetMap(fields).
		Set("synced", false).
		Set("revision", sq.Expr("revision + 1")).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": localID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildRemoteOverwriteQuery writes an accepted remote payload: clean, server
// updated_at, revision untouched.
func buildRemoteOverwriteQuery[P any](t Table[P], localID int64, payload P, updatedAt string) (string, []any, error) {
	values := t.Values(payload)
	builder := sq.Update(t.Name)
	for i, col := range t.Columns {
		builder = builder.Set(col, values[i])
	}

	query, args, err := builder.
		Set("synced", true).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": localID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildBindServerIDQuery(table string, localID int64, serverID string) (string, []any, error) {
	query, args, err := sq.Update(table).
		Set("server_id", serverID).
		Where(sq.Eq{"id": localID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMarkCleanQuery clears dirty only when no local mutation happened
// after revision was captured.
func buildMarkCleanQuery(table string, localID, revision int64) (string, []any, error) {
	query, args, err := sq.Update(table).
		Set("synced", true).
		Where(sq.Eq{"id": localID, "revision": revision}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(table string, localID int64) (string, []any, error) {
	query, args, err := sq.Delete(table).Where(sq.Eq{"id": localID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectServerIDQuery(table string, localID int64) (string, []any, error) {
	query, args, err := sq.Select("server_id").From(table).Where(sq.Eq{"id": localID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUpdatedAtQuery(table string, localID int64) (string, []any, error) {
	query, args, err := sq.Select("updated_at").From(table).Where(sq.Eq{"id": localID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

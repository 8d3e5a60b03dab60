// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "reflect"

// Table describes how one payload type is laid out in SQLite. The sync
// columns (id, owner_id, server_id, synced, revision, updated_at) are common to
// every table; Columns lists only the payload columns.
type Table[P any] struct {
	// Name of the SQL table.
	Name string

	// Columns are the payload columns in the order used by Values and Scan.
	Columns []string

	// Values returns the column values of p, in Columns order.
	Values func(p P) []any

	// Scan returns scan destinations into p, in Columns order.
	Scan func(p *P) []any

	// Equal compares two payloads. Nil means reflect.DeepEqual.
	Equal func(a, b P) bool
}

func (t Table[P]) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t Table[P]) equal(a, b P) bool {
	if t.Equal != nil {
		return t.Equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// selectColumns is the full column list read by every SELECT, matching
// scanRecord.
func (t Table[P]) selectColumns() []string {
	cols := make([]string, 0, len(t.Columns)+6)
	cols = append(cols, "id", "server_id", "owner_id")
	cols = append(cols, t.Columns...)
	return append(cols, "synced", "revision", "updated_at")
}

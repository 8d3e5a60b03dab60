// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ApplyOutcome describes what a pull did with one remote record.
type ApplyOutcome int

const (
	// ApplyRejected means the local row was kept because it is dirty or newer.
	ApplyRejected ApplyOutcome = iota
	// ApplyInserted means a new clean row was bound to the server identity.
	ApplyInserted
	// ApplyUpdated means the local payload and timestamp were overwritten.
	ApplyUpdated
	// ApplyUnchanged means remote data was accepted but already matched.
	ApplyUnchanged
)

func (o ApplyOutcome) String() string {
	switch o {
	case ApplyInserted:
		return "inserted"
	case ApplyUpdated:
		return "updated"
	case ApplyUnchanged:
		return "unchanged"
	default:
		return "rejected"
	}
}

// PushReport summarizes one push phase for one collection.
type PushReport struct {
	Attempted int `json:"attempted"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Failed    int `json:"failed"`
	// StillDirty counts rows accepted remotely that were edited again while
	// the request was in flight.
	StillDirty int `json:"still_dirty"`
	// Discarded counts rows deleted locally while their create was in flight.
	// Their new remote copy is deleted again.
	Discarded int `json:"discarded"`
	// Missing counts updates the server answered with not found. The rows
	// keep their local edits and stay dirty.
	Missing int `json:"missing"`
}

// PullReport summarizes one pull phase for one collection.
type PullReport struct {
	Fetched   int `json:"fetched"`
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Rejected  int `json:"rejected"`
	Skipped   int `json:"skipped"`
}

// Count records one outcome.
func (r *PullReport) Count(o ApplyOutcome) {
	switch o {
	case ApplyInserted:
		r.Inserted++
	case ApplyUpdated:
		r.Updated++
	case ApplyUnchanged:
		r.Unchanged++
	default:
		r.Rejected++
	}
}

// CollectionReport holds both phases of one collection.
type CollectionReport struct {
	Collection string     `json:"collection"`
	Push       PushReport `json:"push"`
	Pull       PullReport `json:"pull"`
	PushErr    error      `json:"-"`
	PullErr    error      `json:"-"`
}

// SyncReport is the result of one sync cycle. Errors are informational: the
// cycle itself never fails the caller.
type SyncReport struct {
	OwnerID      int64              `json:"owner_id"`
	StartedAt    time.Time          `json:"started_at"`
	Duration     time.Duration      `json:"duration"`
	Collections  []CollectionReport `json:"collections"`
	Unauthorized bool               `json:"unauthorized"`
	Err          error              `json:"-"`
}

// OK reports whether every phase of every collection finished without error.
func (r SyncReport) OK() bool {
	if r.Err != nil || r.Unauthorized {
		return false
	}
	for _, c := range r.Collections {
		if c.PushErr != nil || c.PullErr != nil {
			return false
		}
	}
	return true
}

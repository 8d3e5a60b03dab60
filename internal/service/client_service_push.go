package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// errDeletedDuringPush marks a row deleted locally while its create request
// was in flight.
var errDeletedDuringPush = errors.New("record deleted during push")

// Push uploads every dirty row of the session owner.
//
// Rows are independent: a failed row stays dirty and the next one is tried.
// Only [adapter.ErrUnauthorized] stops the loop, since every remaining call
// would fail the same way; it is returned together with the partial report.
// The revision is captured before the remote call, so an edit made while the
// request is in flight keeps the row dirty.
func (s *collectionSyncer[P]) Push(ctx context.Context, session models.Session) (models.PushReport, error) {
	log := logger.FromContext(ctx)

	var report models.PushReport

	dirty, err := s.repo.ListDirtyByOwner(ctx, session.OwnerID)
	if err != nil {
		return report, storageError("list dirty records", err)
	}

	for _, record := range dirty {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		report.Attempted++
		created, cleared, err := s.pushOne(ctx, session, record)
		switch {
		case errors.Is(err, errDeletedDuringPush):
			report.Discarded++
			continue
		case !created && errors.Is(err, adapter.ErrNotFound):
			report.Missing++
			log.Info().Err(err).
				Str("func", "collectionSyncer.Push").
				Str("collection", s.Name()).
				Int64("local_id", record.LocalID).
				Str("server_id", record.ServerIDOrEmpty()).
				Msg("remote record is gone, local edits kept dirty")
			continue
		}
		if err != nil {
			report.Failed++
			log.Warn().Err(err).
				Str("func", "collectionSyncer.Push").
				Str("collection", s.Name()).
				Int64("local_id", record.LocalID).
				Str("server_id", record.ServerIDOrEmpty()).
				Msg("record push failed, keeping it dirty")

			if errors.Is(err, adapter.ErrUnauthorized) {
				return report, err
			}
			continue
		}

		if created {
			report.Created++
		} else {
			report.Updated++
		}
		if !cleared {
			report.StillDirty++
			log.Debug().
				Str("func", "collectionSyncer.Push").
				Str("collection", s.Name()).
				Int64("local_id", record.LocalID).
				Msg("record changed during push, left dirty")
		}
	}

	return report, nil
}

// pushOne creates or updates one record remotely and then records the
// result locally.
func (s *collectionSyncer[P]) pushOne(ctx context.Context, session models.Session, record models.LocalRecord[P]) (created, cleared bool, err error) {
	revision := record.Revision

	if !record.HasServerID() {
		serverID, err := s.remote.Create(ctx, session, record.Payload)
		if err != nil {
			return true, false, fmt.Errorf("create remote record: %w", err)
		}

		cleared, err = s.repo.BindServerID(ctx, record.LocalID, serverID, revision)
		if errors.Is(err, store.ErrRecordNotFound) {
			s.discardOrphan(ctx, session, record.LocalID, serverID)
			return true, false, errDeletedDuringPush
		}
		if err != nil {
			return true, false, fmt.Errorf("bind server id %q: %w", serverID, err)
		}
		return true, cleared, nil
	}

	if err = s.remote.Update(ctx, session, *record.ServerID, record.Payload); err != nil {
		return false, false, fmt.Errorf("update remote record: %w", err)
	}

	cleared, err = s.repo.MarkClean(ctx, record.LocalID, revision)
	if err != nil {
		return false, false, fmt.Errorf("mark record clean: %w", err)
	}
	return false, cleared, nil
}

// discardOrphan removes a remote record whose local row no longer exists, so
// the following pull does not bring it back. Failures are only logged.
func (s *collectionSyncer[P]) discardOrphan(ctx context.Context, session models.Session, localID int64, serverID string) {
	log := logger.FromContext(ctx)

	if err := s.remote.Delete(ctx, session, serverID); err != nil {
		log.Warn().Err(err).
			Str("func", "collectionSyncer.discardOrphan").
			Str("collection", s.Name()).
			Int64("local_id", localID).
			Str("server_id", serverID).
			Msg("failed to delete remote copy of a record deleted during push")
		return
	}

	log.Info().
		Str("func", "collectionSyncer.discardOrphan").
		Str("collection", s.Name()).
		Int64("local_id", localID).
		Str("server_id", serverID).
		Msg("record deleted during push, remote copy removed")
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// Pull fetches every remote record of the session owner and merges it into
// the local replica through [ShouldAcceptRemote]. Records without a server
// identity or owned by someone else are skipped. A storage error aborts the
// pull.
func (s *collectionSyncer[P]) Pull(ctx context.Context, session models.Session) (models.PullReport, error) {
	log := logger.FromContext(ctx)

	var report models.PullReport

	remotes, err := s.remote.List(ctx, session)
	if err != nil {
		return report, fmt.Errorf("list remote records: %w", err)
	}
	report.Fetched = len(remotes)

	for _, remote := range remotes {
		if remote.ServerID == "" || remote.OwnerID != session.OwnerID {
			report.Skipped++
			log.Warn().
				Str("func", "collectionSyncer.Pull").
				Str("collection", s.Name()).
				Str("server_id", remote.ServerID).
				Int64("owner_id", remote.OwnerID).
				Msg("skipping remote record without identity or of another owner")
			continue
		}

		outcome, err := s.repo.ApplyRemote(ctx, session.OwnerID, remote, ShouldAcceptRemote[P])
		if err != nil {
			return report, storageError(fmt.Sprintf("apply remote record %q", remote.ServerID), err)
		}
		report.Count(outcome)
	}

	return report, nil
}

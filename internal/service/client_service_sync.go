package service

import (
	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
)

// collectionSyncer pushes and pulls one collection. Push lives in
// client_service_push.go, pull in client_service_pull.go.
type collectionSyncer[P any] struct {
	repo   store.SyncRepository[P]
	remote adapter.RemoteCollection[P]
}

// NewCollectionSyncer binds a local repository to its remote collection.
func NewCollectionSyncer[P any](repo store.SyncRepository[P], remote adapter.RemoteCollection[P]) CollectionSyncer {
	return &collectionSyncer[P]{repo: repo, remote: remote}
}

func (s *collectionSyncer[P]) Name() string {
	return s.remote.Name()
}

package service

import "github.com/MKhiriev/go-goal-keeper/models"

// ShouldAcceptRemote decides whether remote may overwrite local.
//
// A missing local row always accepts. A dirty local row never does: pending
// user intent wins until it has been pushed. Otherwise the newer updatedAt
// wins and ties favor the server.
func ShouldAcceptRemote[P any](local *models.LocalRecord[P], remote models.RemoteRecord[P]) bool {
	if local == nil {
		return true
	}
	if local.Dirty {
		return false
	}
	return !remote.UpdatedAt.Before(local.UpdatedAt)
}

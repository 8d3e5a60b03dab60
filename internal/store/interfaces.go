package store

import (
	"context"

	"github.com/MKhiriev/go-goal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator classifies driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// AcceptFunc decides whether a remote record may overwrite local. local is
// nil when no row is bound to the remote server identity.
type AcceptFunc[P any] func(local *models.LocalRecord[P], remote models.RemoteRecord[P]) bool

// SyncRepository is the local replica of one entity collection together with
// the identity mapping between local and server ids.
//
// Local mutations (Insert, Update, Mutate) mark the row dirty, bump its
// revision and strictly advance updated_at. Sync-side writes (ApplyRemote,
// BindServerID, MarkClean) never bump the revision.
type SyncRepository[P any] interface {
	Insert(ctx context.Context, ownerID int64, payload P) (int64, error)
	Update(ctx context.Context, localID int64, fields map[string]any) error
	Mutate(ctx context.Context, localID int64, fn func(*P) error) (models.LocalRecord[P], error)
	Delete(ctx context.Context, localID int64) error
	Get(ctx context.Context, localID int64) (models.LocalRecord[P], error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.LocalRecord[P], error)
	ListDirtyByOwner(ctx context.Context, ownerID int64) ([]models.LocalRecord[P], error)
	GetServerID(ctx context.Context, localID int64) (*string, error)

	FindByServerID(ctx context.Context, ownerID int64, serverID string) (models.LocalRecord[P], bool, error)
	ApplyRemote(ctx context.Context, ownerID int64, remote models.RemoteRecord[P], accept AcceptFunc[P]) (models.ApplyOutcome, error)
	BindServerID(ctx context.Context, localID int64, serverID string, revision int64) (bool, error)
	MarkClean(ctx context.Context, localID int64, revision int64) (bool, error)
}

// SessionRepository persists the single local session.
type SessionRepository interface {
	Current(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Invalidate(ctx context.Context) error
	InvalidateToken(ctx context.Context, token string) error
}

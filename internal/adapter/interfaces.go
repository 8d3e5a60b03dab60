// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the local replica and
// the remote goals API.
//
// [RemoteCollection] is the typed client of one REST collection. The package
// ships an HTTP/JSON implementation ([NewHTTPCollection]) on top of resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures so callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrNetwork] when the server was unreachable).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-goal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteCollection is the client of one REST collection. Every call carries
// the session explicitly.
type RemoteCollection[P any] interface {
	// Name is the collection path segment (e.g. "goals").
	Name() string

	// List returns every remote record of the session owner.
	List(ctx context.Context, session models.Session) ([]models.RemoteRecord[P], error)

	// Create stores payload remotely and returns the issued server id.
	Create(ctx context.Context, session models.Session, payload P) (string, error)

	// Update sends payload as the new state of serverID.
	Update(ctx context.Context, session models.Session, serverID string, payload P) error

	// Delete removes serverID remotely.
	Delete(ctx context.Context, session models.Session, serverID string) error
}

// SessionInvalidator is told when the remote service rejects the session
// credential. Only a stored session still holding token is forgotten.
type SessionInvalidator interface {
	InvalidateToken(ctx context.Context, token string) error
}

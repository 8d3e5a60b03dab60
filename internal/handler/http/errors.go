// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the handlers before the service layer is
// reached. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrOwnerMismatch is returned when a request addresses records of an
	// owner other than the authenticated one.
	ErrOwnerMismatch = errors.New("owner does not match the authenticated user")

	// ErrInvalidOwnerID is returned when the ownerId query parameter is not a
	// positive integer.
	ErrInvalidOwnerID = errors.New("invalid ownerId parameter")

	// ErrMissingServerID is returned when the path has no server id.
	ErrMissingServerID = errors.New("missing server id")
)

package client

import "errors"

var (
	// ErrEmptyToken is returned by Login when no token was given.
	ErrEmptyToken = errors.New("empty token")

	// ErrInvalidOwner is returned by Login when the token subject is not a
	// positive owner id.
	ErrInvalidOwner = errors.New("token does not name a valid owner")
)

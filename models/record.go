// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// LocalRecord is one row of the local replica. P is the domain payload.
type LocalRecord[P any] struct {
	// LocalID is the primary key assigned by the local store. It is never
	// reused.
	LocalID int64

	// ServerID is the identity issued by the remote service. Nil until the
	// record has been created remotely.
	ServerID *string

	// OwnerID scopes the record to one user.
	OwnerID int64

	// Payload holds the domain fields.
	Payload P

	// Dirty is true while the row has local mutations the server has not
	// accepted yet.
	Dirty bool

	// Revision counts local mutations. Pulls never change it.
	Revision int64

	// UpdatedAt advances on every local mutation and is replaced by the
	// server value whenever a pull accepts remote data.
	UpdatedAt time.Time
}

// HasServerID reports whether the record has been created remotely.
func (r LocalRecord[P]) HasServerID() bool {
	return r.ServerID != nil && *r.ServerID != ""
}

// ServerIDOrEmpty returns the server identity or an empty string.
func (r LocalRecord[P]) ServerIDOrEmpty() string {
	if r.ServerID == nil {
		return ""
	}
	return *r.ServerID
}

// RemoteRecord is one element of the remote collection as seen on the wire:
//
//	{ "serverId": "...", "ownerId": 1, ...payload fields..., "updatedAt": "..." }
type RemoteRecord[P any] struct {
	ServerID  string
	OwnerID   int64
	Payload   P
	UpdatedAt time.Time
}

// remoteEnvelope holds the identity fields that surround the flattened payload.
type remoteEnvelope struct {
	ServerID  string    `json:"serverId"`
	OwnerID   int64     `json:"ownerId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r RemoteRecord[P]) MarshalJSON() ([]byte, error) {
	return flatten(r.Payload, map[string]any{
		"serverId":  r.ServerID,
		"ownerId":   r.OwnerID,
		"updatedAt": r.UpdatedAt,
	})
}

func (r *RemoteRecord[P]) UnmarshalJSON(b []byte) error {
	var env remoteEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("decode remote record identity: %w", err)
	}

	var payload P
	if err := json.Unmarshal(b, &payload); err != nil {
		return fmt.Errorf("decode remote record payload: %w", err)
	}

	r.ServerID = env.ServerID
	r.OwnerID = env.OwnerID
	r.UpdatedAt = env.UpdatedAt
	r.Payload = payload
	return nil
}

// CreateRequest is the body of POST /{collection}: { "ownerId": 1, ...payload }.
type CreateRequest[P any] struct {
	OwnerID int64
	Payload P
}

func (c CreateRequest[P]) MarshalJSON() ([]byte, error) {
	return flatten(c.Payload, map[string]any{"ownerId": c.OwnerID})
}

func (c *CreateRequest[P]) UnmarshalJSON(b []byte) error {
	var env struct {
		OwnerID int64 `json:"ownerId"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("decode create request owner: %w", err)
	}

	var payload P
	if err := json.Unmarshal(b, &payload); err != nil {
		return fmt.Errorf("decode create request payload: %w", err)
	}

	c.OwnerID = env.OwnerID
	c.Payload = payload
	return nil
}

// CreateResponse is the body returned by POST /{collection}.
type CreateResponse struct {
	ServerID string `json:"serverId"`
}

// ToRemote maps a local row to its wire shape. An absent server identity maps
// to an empty ServerID.
func ToRemote[P any](local LocalRecord[P]) RemoteRecord[P] {
	return RemoteRecord[P]{
		ServerID:  local.ServerIDOrEmpty(),
		OwnerID:   local.OwnerID,
		Payload:   local.Payload,
		UpdatedAt: local.UpdatedAt,
	}
}

// FromRemote maps a remote record to a clean local row. LocalID and Revision
// are left zero; the local store assigns them.
func FromRemote[P any](remote RemoteRecord[P]) LocalRecord[P] {
	var serverID *string
	if remote.ServerID != "" {
		id := remote.ServerID
		serverID = &id
	}

	return LocalRecord[P]{
		ServerID:  serverID,
		OwnerID:   remote.OwnerID,
		Payload:   remote.Payload,
		Dirty:     false,
		UpdatedAt: remote.UpdatedAt,
	}
}

// flatten encodes payload as a JSON object and adds extra top-level fields.
func flatten(payload any, extra map[string]any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("payload must encode as a JSON object: %w", err)
	}

	for k, v := range extra {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode field %s: %w", k, err)
		}
		fields[k] = encoded
	}

	return json.Marshal(fields)
}

package models

import "time"

// Session is the credential context supplied by the authentication
// collaborator. It is passed explicitly to every remote call and sync cycle.
type Session struct {
	// OwnerID identifies whose data is synchronized.
	OwnerID int64 `json:"owner_id"`

	// Token is the bearer credential attached to remote calls.
	Token string `json:"-"`

	// SavedAt is when the session was stored locally.
	SavedAt time.Time `json:"saved_at"`
}

// Valid reports whether the session carries both an owner and a token.
func (s Session) Valid() bool {
	return s.OwnerID > 0 && s.Token != ""
}

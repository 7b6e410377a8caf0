package model

import "time"

// Session represents an issued session credential. ExpiresAt is authoritative:
// the session store, not the token's embedded claims, decides expiry, so
// sub-second TTLs behave exactly.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

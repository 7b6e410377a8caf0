package model

import "time"

// SessionCredential is the opaque token handed out by the target's session
// endpoint. It is owned by the scenario that acquired it and never shared.
type SessionCredential struct {
	Token      string    `json:"token"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Age reports how long ago the credential was acquired.
func (c *SessionCredential) Age(now time.Time) time.Duration {
	return now.Sub(c.AcquiredAt)
}

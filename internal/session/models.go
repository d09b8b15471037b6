// Package session models authenticated sessions. The deletion workflow
// invalidates them wholesale; it never deletes session records so the audit
// picture of "who was logged in when" survives erasure.
package session

import (
	"time"

	id "markethub/pkg/domain"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusActive      Status = "active"
	StatusExpired     Status = "expired"
	StatusInvalidated Status = "invalidated"
)

// Session is one authenticated device session.
type Session struct {
	ID            id.SessionID `json:"id"`
	UserID        id.UserID    `json:"user_id"`
	Device        string       `json:"device"`
	IPAddress     string       `json:"ip_address,omitempty"`
	Status        Status       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	LastActivity  time.Time    `json:"last_activity"`
	InvalidatedAt *time.Time   `json:"invalidated_at,omitempty"`
}

// ApplyInvalidation marks the session unusable. Already-terminal sessions are
// left untouched.
func (s *Session) ApplyInvalidation(now time.Time) {
	if s.Status != StatusActive {
		return
	}
	s.Status = StatusInvalidated
	s.InvalidatedAt = &now
}

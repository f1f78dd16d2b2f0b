package model

import (
	"context"
	"net/http"
	"time"
)

// Session is the authenticated identity of the caller of a request.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// SessionOracle authenticates a request from its headers.
// It returns nil and no error when the request carries no valid session.
type SessionOracle interface {
	GetSession(ctx context.Context, headers http.Header) (*Session, error)
}

// SessionIssuer creates session tokens for a user id.
type SessionIssuer interface {
	Issue(userID string, ttl time.Duration) (string, error)
}

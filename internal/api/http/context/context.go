package context

import (
	"context"

	"github.com/dtroode/adminpanel-server/internal/model"
)

type sessionKey struct{}

// Manager keeps the caller session on a request context.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a copy of ctx carrying session.
func (m *Manager) SetSessionToContext(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session stored by SetSessionToContext.
// A nil session is reported as absent.
func (m *Manager) GetSessionFromContext(ctx context.Context) (*model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*model.Session)
	if !ok || session == nil {
		return nil, false
	}

	return session, true
}

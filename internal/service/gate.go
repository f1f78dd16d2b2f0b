package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// Gate decides whether the caller of a request may use admin operations.
// Every check reads the user store, so a demotion or ban applies to the next request.
type Gate struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewGate(userStore model.UserStore, logger *logger.Logger) *Gate {
	return &Gate{
		userStore: userStore,
		logger:    logger,
	}
}

// IsAdmin reports whether session belongs to an active admin.
// A missing session or an unknown user is not an error. Store failures are.
func (g *Gate) IsAdmin(ctx context.Context, session *model.Session) (bool, error) {
	if session == nil || session.UserID == "" {
		return false, nil
	}

	user, err := g.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			g.logger.Debug("Gate: session user not found",
				"caller_id", session.UserID)
			return false, nil
		}
		g.logger.Error("Gate: failed to look up caller",
			"caller_id", session.UserID,
			"error", err.Error())
		return false, fmt.Errorf("failed to look up caller: %w", err)
	}

	return user.IsActiveAdmin(), nil
}

// RequireAdmin fails with model.ErrUnauthorized unless session belongs to an active admin.
func (g *Gate) RequireAdmin(ctx context.Context, session *model.Session) error {
	ok, err := g.IsAdmin(ctx, session)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUnauthorized
	}
	return nil
}

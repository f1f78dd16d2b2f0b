package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// Stats assembles usage snapshots. Every snapshot is computed from scratch.
type Stats struct {
	gate       Authorizer
	statsStore model.StatsStore
	now        func() time.Time
	logger     *logger.Logger
}

func NewStats(gate Authorizer, statsStore model.StatsStore, logger *logger.Logger) *Stats {
	return &Stats{
		gate:       gate,
		statsStore: statsStore,
		now:        time.Now,
		logger:     logger,
	}
}

// Snapshot runs every counting query in turn. The first failure fails the whole snapshot.
func (s *Stats) Snapshot(ctx context.Context, session *model.Session) (model.StatsSnapshot, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.StatsSnapshot{}, err
	}

	now := s.now().UTC()
	var snap model.StatsSnapshot
	var err error

	counters := []struct {
		name string
		dst  *int64
		run  func() (int64, error)
	}{
		{"users", &snap.Stats.TotalUsers, func() (int64, error) { return s.statsStore.CountUsers(ctx) }},
		{"chats", &snap.Stats.TotalChats, func() (int64, error) { return s.statsStore.CountChats(ctx) }},
		{"messages", &snap.Stats.TotalMessages, func() (int64, error) { return s.statsStore.CountMessages(ctx) }},
		{"banned users", &snap.Stats.BannedUsers, func() (int64, error) { return s.statsStore.CountBannedUsers(ctx) }},
		{"admin users", &snap.Stats.AdminUsers, func() (int64, error) { return s.statsStore.CountUsersByRole(ctx, model.RoleAdmin) }},
		{"active subscriptions", &snap.Stats.ActiveSubscriptions, func() (int64, error) { return s.statsStore.CountActiveSubscriptions(ctx) }},
		{"recent users", &snap.Stats.RecentUsers, func() (int64, error) {
			return s.statsStore.CountUsersCreatedSince(ctx, now.Add(-model.RecentSignupWindow))
		}},
	}

	for _, c := range counters {
		if *c.dst, err = c.run(); err != nil {
			return model.StatsSnapshot{}, s.fail(session, c.name, err)
		}
	}

	if snap.MessagesByProvider, err = s.statsStore.MessagesByProvider(ctx); err != nil {
		return model.StatsSnapshot{}, s.fail(session, "messages by provider", err)
	}
	if snap.TopUsers, err = s.statsStore.TopUsersByChats(ctx, model.TopUsersLimit); err != nil {
		return model.StatsSnapshot{}, s.fail(session, "top users", err)
	}

	snap.GeneratedAt = now

	s.logger.Debug("Stats service: snapshot computed",
		"caller_id", session.UserID,
		"total_users", snap.Stats.TotalUsers)

	return snap, nil
}

func (s *Stats) fail(session *model.Session, what string, err error) error {
	s.logger.Error("Stats service: failed to compute snapshot",
		"caller_id", session.UserID,
		"query", what,
		"error", err.Error())
	return fmt.Errorf("failed to compute %s: %w", what, err)
}

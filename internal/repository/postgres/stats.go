package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/adminpanel-server/internal/model"
)

var _ model.StatsStore = (*StatsRepository)(nil)

type StatsRepository struct {
	db *Connection
}

func NewStatsRepository(db *Connection) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

func (r *StatsRepository) count(ctx context.Context, what, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users", `SELECT COUNT(*) FROM users`)
}

func (r *StatsRepository) CountChats(ctx context.Context) (int64, error) {
	return r.count(ctx, "chats", `SELECT COUNT(*) FROM chats`)
}

func (r *StatsRepository) CountMessages(ctx context.Context) (int64, error) {
	return r.count(ctx, "messages", `SELECT COUNT(*) FROM messages`)
}

func (r *StatsRepository) CountBannedUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "banned users", `SELECT COUNT(*) FROM users WHERE banned = TRUE`)
}

func (r *StatsRepository) CountUsersByRole(ctx context.Context, role model.Role) (int64, error) {
	return r.count(ctx, "users by role", `SELECT COUNT(*) FROM users WHERE role = $1`, string(role))
}

func (r *StatsRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	return r.count(ctx, "active subscriptions", `SELECT COUNT(*) FROM subscriptions WHERE status = 'active'`)
}

func (r *StatsRepository) CountUsersCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, "recent users", `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since)
}

func (r *StatsRepository) MessagesByProvider(ctx context.Context) ([]model.ProviderUsage, error) {
	query := `SELECT provider, COUNT(*) FROM message_usage
			  GROUP BY provider ORDER BY COUNT(*) DESC, provider ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to group messages by provider: %w", err)
	}
	defer rows.Close()

	usage := make([]model.ProviderUsage, 0)
	for rows.Next() {
		var u model.ProviderUsage
		if err := rows.Scan(&u.Provider, &u.Count); err != nil {
			return nil, fmt.Errorf("failed to scan provider usage: %w", err)
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate provider usage: %w", err)
	}

	return usage, nil
}

func (r *StatsRepository) TopUsersByChats(ctx context.Context, limit int) ([]model.TopUser, error) {
	query := `SELECT u.id, u.name, u.email, COUNT(c.id) AS chat_count
			  FROM chats c JOIN users u ON u.id = c.user_id
			  GROUP BY u.id, u.name, u.email
			  ORDER BY chat_count DESC, u.id ASC
			  LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank users by chats: %w", err)
	}
	defer rows.Close()

	top := make([]model.TopUser, 0, limit)
	for rows.Next() {
		var u model.TopUser
		if err := rows.Scan(&u.UserID, &u.UserName, &u.UserEmail, &u.ChatCount); err != nil {
			return nil, fmt.Errorf("failed to scan top user: %w", err)
		}
		top = append(top, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top users: %w", err)
	}

	return top, nil
}

package model

import (
	"context"
	"time"
)

// RecentSignupWindow is how far back a signup counts as recent in a stats snapshot.
const RecentSignupWindow = 7 * 24 * time.Hour

// TopUsersLimit is the number of users ranked by chat count in a stats snapshot.
const TopUsersLimit = 10

// ProviderUsage is the number of messages sent through one model provider.
type ProviderUsage struct {
	Provider string `json:"provider"`
	Count    int64  `json:"count"`
}

// TopUser is a user ranked by the number of chats they own.
type TopUser struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	ChatCount int64  `json:"chatCount"`
}

// StatsTotals holds the scalar counters of a snapshot.
type StatsTotals struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalChats          int64 `json:"totalChats"`
	TotalMessages       int64 `json:"totalMessages"`
	BannedUsers         int64 `json:"bannedUsers"`
	AdminUsers          int64 `json:"adminUsers"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
	RecentUsers         int64 `json:"recentUsers"`
}

// StatsSnapshot is a freshly computed aggregate view of system-wide counts.
type StatsSnapshot struct {
	Stats              StatsTotals     `json:"stats"`
	MessagesByProvider []ProviderUsage `json:"messagesByProvider"`
	TopUsers           []TopUser       `json:"topUsers"`
	GeneratedAt        time.Time       `json:"generatedAt"`
}

// StatsStore defines the counting and grouping queries behind a snapshot.
type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountChats(ctx context.Context) (int64, error)
	CountMessages(ctx context.Context) (int64, error)
	CountBannedUsers(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context, role Role) (int64, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	CountUsersCreatedSince(ctx context.Context, since time.Time) (int64, error)
	MessagesByProvider(ctx context.Context) ([]ProviderUsage, error)
	TopUsersByChats(ctx context.Context, limit int) ([]TopUser, error)
}

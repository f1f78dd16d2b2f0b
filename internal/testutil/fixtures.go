package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/adminpanel-server/internal/model"
)

// MakeUser returns a regular, unbanned user with a random id.
func MakeUser(name string) model.User {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     name + "@example.com",
		Role:      model.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MakeAdmin returns an active admin with a random id.
func MakeAdmin(name string) model.User {
	u := MakeUser(name)
	u.Role = model.RoleAdmin
	return u
}

// SessionFor returns a session for u that expires in an hour.
func SessionFor(u model.User) *model.Session {
	return &model.Session{UserID: u.ID, ExpiresAt: time.Now().Add(time.Hour)}
}

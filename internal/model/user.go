package model

import (
	"context"
	"time"
)

// Role is the access level of a user account.
type Role string

const (
	// RoleUser is the default role assigned at sign-up.
	RoleUser Role = "user"
	// RoleAdmin grants access to the admin dashboard.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a stored user account.
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Image           *string    `json:"image"`
	EmailVerified   bool       `json:"emailVerified"`
	Role            Role       `json:"role"`
	Banned          bool       `json:"banned"`
	BanReason       *string    `json:"banReason"`
	AdminGrantedPro bool       `json:"adminGrantedPro"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	ChatCount       int64      `json:"chatCount"`
	LastLogin       *time.Time `json:"lastLogin"`
}

// IsActiveAdmin reports whether the account may use the admin dashboard.
// A banned admin loses access immediately.
func (u User) IsActiveAdmin() bool {
	return u.Role == RoleAdmin && !u.Banned
}

// UserPatch describes a partial update of a user row. Nil fields are left unchanged.
type UserPatch struct {
	Name            *string
	Email           *string
	Role            *Role
	Banned          *bool
	BanReason       *string
	AdminGrantedPro *bool
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil &&
		p.Banned == nil && p.BanReason == nil && p.AdminGrantedPro == nil
}

// TouchesProtectedFields reports whether the patch changes fields an admin may not change on
// their own account.
func (p UserPatch) TouchesProtectedFields() bool {
	return p.Role != nil || p.Banned != nil || p.BanReason != nil
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, query UserQuery) ([]UserListItem, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, id string, patch UserPatch) (User, error)
	Delete(ctx context.Context, id string) (User, error)
}

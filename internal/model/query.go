package model

import (
	"math"
	"strings"
	"time"
)

const (
	// DefaultListLimit is the page size used when a request does not specify one.
	DefaultListLimit = 10
	// MaxListLimit caps the page size of a single list request.
	MaxListLimit = 100
)

// SortField is a closed set of user columns a list may be ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByEmail     SortField = "email"
	SortByRole      SortField = "role"
	SortByBanned    SortField = "banned"
	SortByCreatedAt SortField = "createdAt"
)

// ParseSortField maps a request value to a SortField.
// Unknown values fall back to SortByCreatedAt.
func ParseSortField(s string) SortField {
	switch f := SortField(strings.TrimSpace(s)); f {
	case SortByName, SortByEmail, SortByRole, SortByBanned, SortByCreatedAt:
		return f
	default:
		return SortByCreatedAt
	}
}

// SortDirection is the ordering direction of a list.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection maps a request value to a SortDirection, defaulting to descending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// UserQuery describes one list request.
// When Page is set it takes precedence over Offset.
type UserQuery struct {
	Search        string
	SortBy        SortField
	SortDirection SortDirection
	Limit         int
	Offset        int
	Page          int
}

// Normalize validates q and fills in defaults. maxLimit caps Limit when positive.
func (q UserQuery) Normalize(defaultLimit, maxLimit int) (UserQuery, error) {
	if q.Limit < 0 {
		return UserQuery{}, NewInvalidQueryError("limit must not be negative")
	}
	if q.Offset < 0 {
		return UserQuery{}, NewInvalidQueryError("offset must not be negative")
	}
	if q.Page < 0 {
		return UserQuery{}, NewInvalidQueryError("page must be at least 1")
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultListLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxListLimit
	}

	out := q
	out.Search = strings.TrimSpace(q.Search)
	out.SortBy = ParseSortField(string(q.SortBy))
	out.SortDirection = ParseSortDirection(string(q.SortDirection))
	if out.Limit == 0 {
		out.Limit = defaultLimit
	}
	if out.Limit > maxLimit {
		out.Limit = maxLimit
	}
	if out.Page > 0 {
		if out.Page-1 > math.MaxInt/out.Limit {
			return UserQuery{}, NewInvalidQueryError("page is too large")
		}
		out.Offset = (out.Page - 1) * out.Limit
		out.Page = 0
	}

	return out, nil
}

// UserListItem is the read-only projection of a user in a list page.
type UserListItem struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          Role       `json:"role"`
	Banned        bool       `json:"banned"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	EmailVerified bool       `json:"emailVerified"`
	Image         *string    `json:"image"`
	ChatCount     int64      `json:"chatCount"`
	LastLogin     *time.Time `json:"lastLogin"`
}

// UserPage is one page of a user list together with the size of the full result.
type UserPage struct {
	Users  []UserListItem `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// Page returns the 1-based number of this page.
func (p UserPage) Page() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// Pages returns the number of pages of size Limit needed to hold Total rows.
func (p UserPage) Pages() int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
}

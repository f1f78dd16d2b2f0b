package session

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/adminpanel-server/internal/testutil"
)

func newOracle() *JWT {
	return NewJWT("secret", "session_token", testutil.MakeNoopLogger())
}

func TestJWT_BearerRoundtrip(t *testing.T) {
	j := newOracle()

	token, err := j.Issue("user-1", time.Hour)
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)

	s, err := j.GetSession(context.Background(), h)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "user-1", s.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestJWT_CookieRoundtrip(t *testing.T) {
	j := newOracle()

	token, err := j.Issue("user-2", time.Hour)
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Cookie", "theme=dark; session_token="+token)

	s, err := j.GetSession(context.Background(), h)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "user-2", s.UserID)
}

func TestJWT_NoSession(t *testing.T) {
	j := newOracle()
	other := NewJWT("other-secret", "session_token", testutil.MakeNoopLogger())
	foreign, err := other.Issue("user-1", time.Hour)
	require.NoError(t, err)

	expired := newOracle()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.Issue("user-1", time.Hour)
	require.NoError(t, err)

	wrongType := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TokenType: "refresh",
	})
	refresh, err := wrongType.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		headers http.Header
	}{
		{"no headers", http.Header{}},
		{"basic auth", http.Header{"Authorization": []string{"Basic dXNlcjpwYXNz"}}},
		{"garbage token", http.Header{"Authorization": []string{"Bearer not-a-jwt"}}},
		{"foreign signature", http.Header{"Authorization": []string{"Bearer " + foreign}}},
		{"expired", http.Header{"Authorization": []string{"Bearer " + stale}}},
		{"wrong token type", http.Header{"Authorization": []string{"Bearer " + refresh}}},
		{"other cookie", http.Header{"Cookie": []string{"theme=dark"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := j.GetSession(context.Background(), tt.headers)
			require.NoError(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestJWT_IssueRequiresUser(t *testing.T) {
	_, err := newOracle().Issue("", time.Hour)
	require.Error(t, err)
}

package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/adminpanel-server/internal/session"
	"github.com/dtroode/adminpanel-server/internal/testutil"
)

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), nil, &out)
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"drop-everything"}, &out)
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"grant-admin"}, &out)
	assert.ErrorIs(t, err, errUsage)

	require.NoError(t, run(context.Background(), []string{"help"}, &out))
	assert.Contains(t, out.String(), "grant-admin <email>")
}

func TestRun_IssueSession(t *testing.T) {
	t.Setenv("SESSION_SECRET", "cli-secret")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"issue-session", "user-7", "1h"}, &out))

	token := strings.TrimSpace(out.String())
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)

	got, err := session.NewJWT("cli-secret", "session_token", testutil.MakeNoopLogger()).GetSession(context.Background(), headers)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-7", got.UserID)
}

func TestRun_IssueSessionInvalidTTL(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"issue-session", "user-7", "soon"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ttl")
}

func TestRun_EmailDiagnostics(t *testing.T) {
	t.Setenv("EMAIL_RESEND_API_KEY", "re_abcdefghij")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"email-diagnostics"}, &out))

	assert.Contains(t, out.String(), "re_abc... (13 chars)")
	assert.Contains(t, out.String(), "security@ajstudioz.co.in")
}

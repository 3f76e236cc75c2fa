package router

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct{ has bool }

func (f *fakeSessions) HasSession(ctx context.Context) bool { return f.has }

func TestNavigate_RedirectsWithoutSession(t *testing.T) {
	s := &fakeSessions{}
	n := New(s)
	ctx := context.Background()

	for _, p := range Protected {
		got, err := n.Navigate(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, Login, got, p)
		assert.Equal(t, p, n.Intended())
	}

	for _, p := range []string{Root, Login, About} {
		got, err := n.Navigate(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestCompleteLogin_ReturnsRequestedPage(t *testing.T) {
	s := &fakeSessions{}
	n := New(s)
	ctx := context.Background()

	got, err := n.Navigate(ctx, "orders/")
	require.NoError(t, err)
	assert.Equal(t, Login, got)

	s.has = true
	assert.Equal(t, Orders, n.CompleteLogin())
	assert.Equal(t, Orders, n.Current())
	assert.Empty(t, n.Intended())

	assert.Equal(t, Dashboard, n.CompleteLogin(), "default target")
}

func TestNavigate_WithSession(t *testing.T) {
	n := New(&fakeSessions{has: true})
	got, err := n.Navigate(context.Background(), "/audit-logs")
	require.NoError(t, err)
	assert.Equal(t, AuditLogs, got)
	assert.Equal(t, AuditLogs, n.Current())
}

func TestNavigate_Unknown(t *testing.T) {
	n := New(&fakeSessions{has: true})
	_, err := n.Navigate(context.Background(), "/admin")
	require.ErrorIs(t, err, common.ErrUnknownRoute)
	assert.Equal(t, Root, n.Current())
}

func TestClean(t *testing.T) {
	tests := map[string]string{
		"":             "/",
		"/":            "/",
		"//":           "/",
		"inventory":    "/inventory",
		" /users/ ":    "/users",
		"/audit-logs/": "/audit-logs",
	}
	for in, want := range tests {
		assert.Equal(t, want, Clean(in), in)
	}
	assert.True(t, IsProtected("payments"))
	assert.False(t, IsProtected("about"))
}

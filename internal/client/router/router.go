// Package router decides which page a path resolves to, sending anonymous
// users to the login page for every protected route.
package router

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/ipms/internal/common"
)

const (
	Root          = "/"
	Login         = "/login"
	About         = "/about"
	Dashboard     = "/dashboard"
	Inventory     = "/inventory"
	Orders        = "/orders"
	Suppliers     = "/suppliers"
	Reports       = "/reports"
	Notifications = "/notifications"
	AuditLogs     = "/audit-logs"
	Users         = "/users"
	Payments      = "/payments"
)

var routes = map[string]bool{
	Root:          false,
	Login:         false,
	About:         false,
	Dashboard:     true,
	Inventory:     true,
	Orders:        true,
	Suppliers:     true,
	Reports:       true,
	Notifications: true,
	AuditLogs:     true,
	Users:         true,
	Payments:      true,
}

// Protected lists the routes that need a session, in menu order.
var Protected = []string{Dashboard, Inventory, Orders, Suppliers, Reports, Notifications, AuditLogs, Users, Payments}

// SessionChecker reports whether a token is stored. Validity is the
// backend's business.
type SessionChecker interface {
	HasSession(ctx context.Context) bool
}

type Navigator struct {
	sessions SessionChecker

	mu      sync.Mutex
	current string
	from    string
}

func New(sessions SessionChecker) *Navigator {
	return &Navigator{sessions: sessions, current: Root}
}

// Clean normalises user input: "inventory", "/inventory/" and "/inventory"
// are the same route.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = Root
		}
	}
	return path
}

func IsProtected(path string) bool { return routes[Clean(path)] }

// Navigate resolves path and returns the page that is shown. A protected
// path without a stored token shows the login page and remembers path for
// CompleteLogin.
func (n *Navigator) Navigate(ctx context.Context, path string) (string, error) {
	p := Clean(path)
	protected, ok := routes[p]
	if !ok {
		return "", fmt.Errorf("%w: %s", common.ErrUnknownRoute, path)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if protected && !n.sessions.HasSession(ctx) {
		n.from = p
		n.current = Login
		return Login, nil
	}
	n.current = p
	return p, nil
}

// CompleteLogin returns the page a redirected user asked for, or the
// dashboard, and forgets it.
func (n *Navigator) CompleteLogin() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	target := n.from
	if target == "" {
		target = Dashboard
	}
	n.from = ""
	n.current = target
	return target
}

// Intended is the path remembered by the last redirect.
func (n *Navigator) Intended() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.from
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

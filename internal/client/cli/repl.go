package cli

import (
	"bufio"
	"context"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/client/router"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	// Open shows the page for route and returns when the user leaves it.
	// exit reports that the user asked to quit from inside the page.
	Open(ctx context.Context, route string) (exit bool, err error)
	// say prints one line. It shares the lock background exports write
	// under.
	say(format string, args ...any)
}

// shortcuts map top-level commands to routes.
var shortcuts = map[string]string{
	"dashboard":     router.Dashboard,
	"inventory":     router.Inventory,
	"orders":        router.Orders,
	"suppliers":     router.Suppliers,
	"reports":       router.Reports,
	"notifications": router.Notifications,
	"audit":         router.AuditLogs,
	"audit-logs":    router.AuditLogs,
	"users":         router.Users,
	"payments":      router.Payments,
	"about":         router.About,
	"home":          router.Root,
}

// runREPL starts the top-level read-eval-print loop of the IPMS CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit", at
// the top level or inside a page.
//
// Prompt & Commands
//
//	Anyone:
//	  - help                   show available commands
//	  - login                  authenticate
//	  - go <route>             open a page, e.g. "go /inventory"
//	  - about | home           public pages
//	  - exit | quit            leave the program
//
//	Logged in:
//	  - dashboard, inventory, orders, suppliers, reports,
//	    notifications, audit, users, payments (page shortcuts)
//	  - whoami                 show the stored session
//	  - logout                 forget the tokens
//
// Errors returned by command handlers are ignored here; handlers print
// their own banners. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.say("ipms %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		route := ""
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				a.say("Available commands: dashboard, inventory, orders, suppliers, reports, notifications, audit, users, payments, go <route>, whoami, logout, about, exit")
			} else {
				a.say("Available commands: login, go <route>, about, exit")
			}
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "logout":
			_ = a.Logout(ctx)
			continue

		case "whoami":
			_ = a.WhoAmI(ctx)
			continue

		case "go":
			if len(args) == 0 {
				a.say("Usage: go <route>")
				continue
			}
			route = args[0]

		case "exit", "quit":
			a.say("Bye!")
			return

		default:
			r, ok := shortcuts[cmd]
			if !ok {
				a.say("Unknown command: %s", cmd)
				continue
			}
			route = r
		}

		exit, _ := a.Open(ctx, route)
		if exit {
			a.say("Bye!")
			return
		}
	}
}

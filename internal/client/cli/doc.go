// Package cli provides the interactive IPMS command-line client.
//
// It wires configuration, local session storage, the HTTP client and the
// page descriptors into a REPL. The top level handles login and navigation;
// every page (inventory, orders, suppliers, audit logs, users,
// notifications, payments) is a nested REPL over one searchable table.
//
// Key features:
//   - Login / Logout / WhoAmI backed by the local session store
//   - Route guard: protected pages redirect to login and come back after it
//   - Debounced filters, add/edit/delete dialogs and exports on every table
//   - Background notification polling while the notifications page is open
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and page.run for details.
package cli

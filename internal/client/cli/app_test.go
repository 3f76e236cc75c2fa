package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/config"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/router"
	"github.com/dmitrijs2005/ipms/internal/client/services"
	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/dmitrijs2005/ipms/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local)

// backend is a fake IPMS API routed with gorilla/mux.
type backend struct {
	srv    *httptest.Server
	router *mux.Router

	mu     sync.Mutex
	seen   []string
	bodies map[string]string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{router: mux.NewRouter(), bodies: map[string]string{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.seen = append(b.seen, key)
		b.bodies[key] = string(body)
		b.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		b.router.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) json(method, path string, status int, body any) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}).Methods(method)
}

func (b *backend) raw(method, path, contentType string, data []byte) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}).Methods(method)
}

func (b *backend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, s := range b.seen {
		if s == key {
			n++
		}
	}
	return n
}

func (b *backend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func newTestApp(t *testing.T, b *backend, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		APIBaseURL:               b.srv.URL,
		DatabasePath:             ":memory:",
		DownloadDir:              t.TempDir(),
		SearchDebounce:           10 * time.Millisecond,
		NotificationPollInterval: time.Hour,
		DiscardStaleResponses:    true,
	}
	a, err := NewApp(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	out := &bytes.Buffer{}
	a.out = out
	a.reader = input(lines...)
	a.now = func() time.Time { return fixedNow }
	return a, out
}

func loginAs(t *testing.T, a *App, username string) {
	t.Helper()
	require.NoError(t, a.sessions.Save(context.Background(), models.Tokens{Access: "tok", Refresh: "ref"}, username))
}

var helmet = map[string]any{"id": 1, "name": "Welding Helmet", "sku": "HLT-3003", "quantity": 2, "reorder_level": 5}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, newBackend(t))
	ctx := context.Background()

	assert.Equal(t, "(guest)", a.getStatus())

	loginAs(t, a, "alice")
	assert.Equal(t, "(alice)", a.getStatus())

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     fixedNow.Add(-time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, a.sessions.Save(ctx, models.Tokens{Access: expired}, "alice"))
	assert.Equal(t, "(alice expired)", a.getStatus())
}

func TestInventoryPage_StockAndExport(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/inventory/items/", http.StatusOK, []any{helmet})
	b.json(http.MethodPost, "/api/inventory/items/{id}/stock-in/", http.StatusOK,
		map[string]any{"status": "ok", "item_id": 1, "new_quantity": 5})
	b.raw(http.MethodGet, "/api/inventory/items/export/csv/", "text/csv", []byte("name,sku\nWelding Helmet,HLT-3003\n"))

	a, out := newTestApp(t, b, "help", "stockin 1 3", "stockout 9", "stockin 1 zero", "export csv", "bogus", "back")
	loginAs(t, a, "alice")

	exit := a.inventoryPage().run(context.Background())
	a.bg.Wait()

	assert.False(t, exit)
	s := out.String()
	assert.Contains(t, s, "Welding Helmet")
	assert.Contains(t, s, "ipms (alice) inventory> ")
	assert.Contains(t, s, "Page commands: import <file.csv> | metrics | scan | search <text> | stockin <id> [n] | stockout <id> [n]")
	assert.Contains(t, s, "Stock increased successfully.")
	assert.Contains(t, s, "No item with ID 9 in the current list.")
	assert.Contains(t, s, "Amount must be a positive whole number.")
	assert.Contains(t, s, "Unknown command: bogus")
	assert.Contains(t, s, "CSV exported successfully. Saved to ")

	assert.JSONEq(t, `{"amount":3}`, b.body("POST /api/inventory/items/1/stock-in/"))
	assert.Equal(t, 2, b.count("GET /api/inventory/items/"), "initial load and refetch after stock-in")

	matches, err := filepath.Glob(filepath.Join(a.config.DownloadDir, "inventory_export_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "HLT-3003")
}

func TestInventoryPage_AddDialog(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/inventory/items/", http.StatusOK, []any{})
	b.json(http.MethodPost, "/api/inventory/items/", http.StatusCreated, map[string]any{"id": 2, "name": "Gloves"})

	a, out := newTestApp(t, b,
		// blank required fields, then give up
		"add", "", "", "", "", "n",
		// bad number is asked again
		"add", "Gloves", "GLV-1", "10", "abc", "3",
		"back",
	)
	loginAs(t, a, "alice")

	a.inventoryPage().run(context.Background())

	s := out.String()
	assert.Contains(t, s, "No items found")
	assert.Contains(t, s, "! Name and SKU are required.")
	assert.Contains(t, s, "Edit and retry? (y/N): ")
	assert.Contains(t, s, "! Reorder Level must be a non-negative whole number.")
	assert.Contains(t, s, "Item added successfully.")
	assert.Equal(t, 1, b.count("POST /api/inventory/items/"))
	assert.JSONEq(t, `{"name":"Gloves","sku":"GLV-1","quantity":10,"reorder_level":3}`, b.body("POST /api/inventory/items/"))
}

func TestInventoryPage_DeleteAsksFirst(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/inventory/items/", http.StatusOK, []any{helmet})
	b.json(http.MethodDelete, "/api/inventory/items/{id}/", http.StatusNoContent, nil)

	a, out := newTestApp(t, b, "delete 1", "no", "delete 1", "y", "back")
	loginAs(t, a, "alice")

	a.inventoryPage().run(context.Background())

	assert.Contains(t, out.String(), "Delete item 1? (y/N): ")
	assert.Contains(t, out.String(), "Item deleted successfully.")
	assert.Equal(t, 1, b.count("DELETE /api/inventory/items/1/"))
}

func TestOpen_RedirectsThroughLogin(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodPost, "/api/token/", http.StatusOK, map[string]any{"access": "tok", "refresh": "ref"})
	b.json(http.MethodGet, "/api/users/me/", http.StatusOK, map[string]any{"id": 1, "username": "alice", "role": "ADMIN"})
	b.json(http.MethodGet, "/api/orders/", http.StatusOK, []any{
		map[string]any{"id": 5, "supplier": "Acme", "item": "Gloves", "quantity": 4, "status": "APPROVED"},
	})
	stubInputs(t, "alice", []byte("pw"))

	a, out := newTestApp(t, b, "approve 5", "back")

	exit, err := a.Open(context.Background(), "orders")
	require.NoError(t, err)
	assert.False(t, exit)

	s := out.String()
	assert.Contains(t, s, "Please log in to continue.")
	assert.Contains(t, s, "Logged in as alice (ADMIN).")
	assert.Contains(t, s, "Acme")
	assert.Contains(t, s, "Only pending orders can be approved.")
	assert.Equal(t, router.Orders, a.nav.Current())
	assert.Equal(t, 0, b.count("POST /api/orders/5/action/"))
}

func TestOpen_PublicAndUnknown(t *testing.T) {
	a, out := newTestApp(t, newBackend(t))
	ctx := context.Background()

	exit, err := a.Open(ctx, "/about")
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Contains(t, out.String(), "About IPMS")

	_, err = a.Open(ctx, "/nope")
	require.ErrorIs(t, err, common.ErrUnknownRoute)
	assert.Contains(t, out.String(), "Unknown page: /nope")
}

func TestOrdersPage_Approve(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/orders/", http.StatusOK, []any{
		map[string]any{"id": 5, "supplier": "Acme", "item": "Gloves", "quantity": 4, "status": "PENDING"},
	})
	b.json(http.MethodPost, "/api/orders/{id}/action/", http.StatusOK, map[string]any{"id": 5, "status": "APPROVED"})

	a, out := newTestApp(t, b, "approve 5", "exit")
	loginAs(t, a, "alice")

	exit := a.ordersPage().run(context.Background())

	assert.True(t, exit)
	assert.Contains(t, out.String(), "Order approved successfully.")
	assert.JSONEq(t, `{"action":"approve"}`, b.body("POST /api/orders/5/action/"))
}

func TestAuditPage_StatsAndLocalExport(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/audit-logs/", http.StatusOK, []any{
		map[string]any{"id": 1, "user": "alice", "action": "CREATE", "object_type": "InventoryItem", "object_id": 3,
			"message": "created", "created_at": fixedNow.Add(-time.Hour).Format(time.RFC3339)},
		map[string]any{"id": 2, "user": nil, "action": "LOW_STOCK", "object_type": "InventoryItem", "object_id": 3,
			"message": "low", "created_at": fixedNow.Add(-72 * time.Hour).Format(time.RFC3339)},
	})

	a, out := newTestApp(t, b, "stats", "export xlsx", "export pdf", "add", "back")
	loginAs(t, a, "alice")

	a.auditPage().run(context.Background())
	a.bg.Wait()

	s := out.String()
	assert.Contains(t, s, "Total:     2")
	assert.Contains(t, s, "Today:     1")
	assert.Contains(t, s, "By system: 1")
	assert.Contains(t, s, "Audit logs XLSX exported successfully.")
	assert.Contains(t, s, "Usage: export <csv|xlsx>")
	assert.Contains(t, s, "Adding is not available here.")
	assert.FileExists(t, filepath.Join(a.config.DownloadDir, "audit-logs-2026-10-16.xlsx"))
}

func TestNotificationsPage(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/notifications/", http.StatusOK, []any{
		map[string]any{"id": 1, "message": "Low stock", "type": "WARNING", "is_read": false},
		map[string]any{"id": 2, "message": "Approved", "type": "INFO", "is_read": true},
	})
	b.json(http.MethodPost, "/api/notifications/{id}/read/", http.StatusOK, nil)
	b.json(http.MethodPost, "/api/notifications/mark-all-read/", http.StatusOK, nil)

	a, out := newTestApp(t, b, "unread", "read 2", "read 1", "readall", "back")
	loginAs(t, a, "alice")

	a.notificationsPage().run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Unread: 1")
	assert.Contains(t, s, "Already read.")
	assert.Equal(t, 1, b.count("POST /api/notifications/1/read/"))
	assert.Equal(t, 0, b.count("POST /api/notifications/2/read/"))
	assert.Equal(t, 1, b.count("POST /api/notifications/mark-all-read/"))
}

func TestPaymentsPage_New(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/payments/requests/", http.StatusOK, []any{})
	b.json(http.MethodPost, "/api/payments/generate-link/", http.StatusCreated, map[string]any{
		"payment_request": map[string]any{"id": "c0ffee"},
		"payment_url":     "https://pay.example/c0ffee",
	})

	// type and currency keep their defaults; notes stay empty
	a, out := newTestApp(t, b, "new", "", "25.50", "", "0241234567", "Restock", "", "edit 1", "back")
	loginAs(t, a, "alice")

	a.paymentsPage().run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Payment link: https://pay.example/c0ffee")
	assert.Contains(t, s, "Payment request created successfully!")
	assert.Contains(t, s, "Editing is not available here.")

	var sent models.PaymentRequest
	require.NoError(t, json.Unmarshal([]byte(b.body("POST /api/payments/generate-link/")), &sent))
	assert.Equal(t, models.PaymentOrder, sent.PaymentType)
	assert.Equal(t, "25.50", sent.Amount)
	assert.Equal(t, models.DefaultCurrency, sent.Currency)
	assert.Equal(t, "0241234567", sent.MomoPhone)
}

func TestReportsPage(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/orders/export/pdf/", http.StatusInternalServerError, map[string]any{"detail": "boom"})
	b.raw(http.MethodGet, "/api/suppliers/export/csv/", "text/csv", []byte("name\nAcme\n"))

	a, out := newTestApp(t, b, "export widgets csv", "export orders xlsx", "export orders pdf", "export suppliers csv", "back")
	loginAs(t, a, "alice")

	exit := a.reportsPage(context.Background())
	a.bg.Wait()

	assert.False(t, exit)
	s := out.String()
	assert.Contains(t, s, "Usage: export <inventory|orders|suppliers> <csv|pdf>")
	assert.Contains(t, s, "! Failed to download PDF report.")
	assert.NotContains(t, s, "boom")
	assert.Contains(t, s, "Suppliers CSV report exported successfully.")
}

func TestPrintDashboard(t *testing.T) {
	a, out := newTestApp(t, newBackend(t))

	a.printDashboard(services.Dashboard{
		Metrics: models.InventoryMetrics{TotalItems: 3, LowStock: 1},
		Stock: []models.InventoryItem{
			{Name: "Helmet", Quantity: 2, ReorderLevel: 5},
			{Name: "Gloves", Quantity: 40, ReorderLevel: 5},
			{Name: "Empty", Quantity: 0, ReorderLevel: 1},
		},
		OrderStatus: []models.StatusCount{{Status: models.OrderPending, Count: 4}},
		Suppliers:   2,
	})

	s := out.String()
	assert.Contains(t, s, "Total items: 3")
	assert.Contains(t, s, "Low stock:   1")
	assert.Contains(t, s, "Suppliers:   2")
	assert.Contains(t, s, "PENDING    4")
	lines := strings.Split(s, "\n")
	var bars []string
	for _, l := range lines {
		if strings.Contains(l, "#") || strings.HasPrefix(l, "  Empty") {
			bars = append(bars, l)
		}
	}
	require.Len(t, bars, 3)
	assert.True(t, strings.HasPrefix(bars[0], "  Gloves "), "largest first")
	assert.Equal(t, 30, strings.Count(bars[0], "#"))
	assert.Equal(t, "  Empty   0", bars[2])
}

func TestExport_StaysBusyAfterLeavingPage(t *testing.T) {
	b := newBackend(t)
	b.json(http.MethodGet, "/api/inventory/items/", http.StatusOK, []any{helmet})
	release := make(chan struct{})
	var once sync.Once
	unblock := func() { once.Do(func() { close(release) }) }
	b.router.HandleFunc("/api/inventory/items/export/csv/", func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("name,sku\nWelding Helmet,HLT-3003\n"))
	}).Methods(http.MethodGet)

	a, out := newTestApp(t, b,
		"export csv", "back",
		"export csv", "back",
		"export inventory csv", "back",
	)
	t.Cleanup(unblock)
	loginAs(t, a, "alice")
	ctx := context.Background()
	const exportKey = "GET /api/inventory/items/export/csv/"

	require.False(t, a.inventoryPage().run(ctx))
	require.Eventually(t, func() bool { return b.count(exportKey) == 1 }, time.Second, 5*time.Millisecond)

	require.False(t, a.inventoryPage().run(ctx))
	require.False(t, a.reportsPage(ctx))
	assert.Equal(t, 2, strings.Count(out.String(), "Export already in progress."), "second visit and the report of the same file")

	unblock()
	a.bg.Wait()
	assert.Equal(t, 1, b.count(exportKey))
	assert.Contains(t, out.String(), "CSV exported successfully. Saved to ")
}

func TestRun_PromptsOnAppOutput(t *testing.T) {
	a, out := newTestApp(t, newBackend(t), "help", "exit")

	a.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Welcome to IPMS CLI (type 'help' for commands)")
	assert.Contains(t, s, "ipms (guest)> ")
	assert.Contains(t, s, "Available commands: login, go <route>, about, exit")
	assert.True(t, strings.HasSuffix(s, "Bye!\n"))
}

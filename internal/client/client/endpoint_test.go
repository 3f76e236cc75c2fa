package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		f    Filters
		want string
	}{
		{name: "nothing set", keys: []string{"name", "sku"}, f: Filters{}, want: ""},
		{name: "nil filters", keys: []string{"name"}, f: nil, want: ""},
		{name: "key order not map order", keys: []string{"name", "sku"}, f: Filters{"sku": "Weld", "name": "Weld"}, want: "?name=Weld&sku=Weld"},
		{name: "empty values skipped", keys: []string{"supplier", "item", "status"}, f: Filters{"supplier": "", "status": "PENDING"}, want: "?status=PENDING"},
		{name: "unknown keys dropped", keys: []string{"name"}, f: Filters{"name": "a", "evil": "b"}, want: "?name=a"},
		{name: "reserved characters escaped", keys: []string{"name"}, f: Filters{"name": "Safety & Gloves/XL"}, want: "?name=Safety%20%26%20Gloves%2FXL"},
		{name: "dates", keys: []string{"start_date", "end_date"}, f: Filters{"start_date": "2024-05-01", "end_date": "2024-05-31"}, want: "?start_date=2024-05-01&end_date=2024-05-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Query(tt.keys, tt.f))
		})
	}
}

func TestFilters_ActiveAndClone(t *testing.T) {
	assert.False(t, Filters{}.Active())
	assert.False(t, Filters{"name": "  "}.Active())
	assert.True(t, Filters{"name": "x"}.Active())

	f := Filters{"name": "x"}
	c := f.Clone()
	c["name"] = "y"
	assert.Equal(t, "x", f["name"])
}

func TestEndpoint_Message(t *testing.T) {
	tests := []struct {
		ep   Endpoint
		op   Op
		arg  string
		want string
	}{
		{InventoryEndpoint, OpFetch, "", "Failed to fetch inventory."},
		{InventoryEndpoint, OpCreate, "", "Failed to add item."},
		{InventoryEndpoint, OpUpdate, "", "Failed to update item."},
		{InventoryEndpoint, OpDelete, "", "Failed to delete item."},
		{InventoryEndpoint, OpExport, "csv", "Failed to export CSV."},
		{InventoryEndpoint, OpImport, "csv", "Failed to import CSV."},
		{InventoryEndpoint, OpStock, "", "Failed to update stock."},
		{OrdersEndpoint, OpFetch, "", "Failed to fetch orders."},
		{OrdersEndpoint, OpAction, "", "Failed to update order status."},
		{SuppliersEndpoint, OpCreate, "", "Failed to add supplier."},
		{AuditLogsEndpoint, OpFetch, "", "Failed to fetch audit logs."},
		{UsersEndpoint, OpCreate, "", "Failed to save user."},
		{UsersEndpoint, OpDelete, "", "Failed to delete user."},
		{NotificationsEndpoint, OpMarkRead, "", "Failed to mark as read."},
		{NotificationsEndpoint, OpDelete, "", "Failed to delete notification."},
		{OrdersEndpoint, OpAnalytics, "", "Failed to fetch analytics."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ep.Message(tt.op, tt.arg))
		})
	}
}

func TestEndpoint_Paths(t *testing.T) {
	assert.Equal(t, "/api/inventory/items/7/", InventoryEndpoint.ItemPath("7"))
	assert.Equal(t, "/api/payments/requests/a%2Fb/", PaymentsEndpoint.ItemPath("a/b"))
	assert.True(t, AuditLogsEndpoint.HasFilter("start_date"))
	assert.False(t, InventoryEndpoint.HasFilter("status"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("docx")
	require.Error(t, err)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "inventory_export_2024-05-01.csv", ExportFilename("inventory", FormatCSV, now))
	assert.Equal(t, "orders_report_2024-05-01.pdf", ExportFilename("orders", FormatPDF, now))
}

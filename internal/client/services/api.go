package services

import (
	"context"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/models"
)

// ClientAPI adapts the HTTP client to the service interfaces.
type ClientAPI struct {
	C *client.Client
}

func (a ClientAPI) InventoryMetrics(ctx context.Context) (models.InventoryMetrics, error) {
	return a.C.Inventory().Metrics(ctx)
}

func (a ClientAPI) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	return a.C.Inventory().List(ctx, nil)
}

func (a ClientAPI) OrderAnalytics(ctx context.Context) (models.OrderAnalytics, error) {
	return a.C.Orders().Analytics(ctx)
}

func (a ClientAPI) SupplierAnalytics(ctx context.Context) (models.SupplierAnalytics, error) {
	return a.C.Suppliers().Analytics(ctx)
}

func (a ClientAPI) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return a.C.Suppliers().List(ctx, nil)
}

func (a ClientAPI) ObtainToken(ctx context.Context, username, password string) (models.Tokens, error) {
	return a.C.ObtainToken(ctx, username, password)
}

func (a ClientAPI) Me(ctx context.Context) (models.Me, error) { return a.C.Me(ctx) }

func (a ClientAPI) StockIn(ctx context.Context, id string, amount int) (models.StockResult, error) {
	return a.C.Inventory().StockIn(ctx, id, amount)
}

func (a ClientAPI) StockOut(ctx context.Context, id string, amount int) (models.StockResult, error) {
	return a.C.Inventory().StockOut(ctx, id, amount)
}

var (
	_ AuthAPI      = ClientAPI{}
	_ StockAPI     = ClientAPI{}
	_ DashboardAPI = ClientAPI{}
)

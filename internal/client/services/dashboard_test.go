package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardAPI struct {
	metricsErr, itemsErr, ordersErr, suppliersErr, supplierListErr error
}

func (f *fakeDashboardAPI) InventoryMetrics(ctx context.Context) (models.InventoryMetrics, error) {
	return models.InventoryMetrics{TotalItems: 12, LowStock: 2}, f.metricsErr
}

func (f *fakeDashboardAPI) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return []models.InventoryItem{{ID: 1, Name: "Gloves"}, {ID: 7, Name: "Welding Helmet"}}, nil
}

func (f *fakeDashboardAPI) OrderAnalytics(ctx context.Context) (models.OrderAnalytics, error) {
	return models.OrderAnalytics{StatusDistribution: []models.StatusCount{{Status: "PENDING", Count: 4}}}, f.ordersErr
}

func (f *fakeDashboardAPI) SupplierAnalytics(ctx context.Context) (models.SupplierAnalytics, error) {
	return models.SupplierAnalytics{TotalSuppliers: 5}, f.suppliersErr
}

func (f *fakeDashboardAPI) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	if f.supplierListErr != nil {
		return nil, f.supplierListErr
	}
	return []models.Supplier{{Name: "Acme"}}, nil
}

func TestDashboard_LoadsAllSections(t *testing.T) {
	d, err := NewDashboardService(&fakeDashboardAPI{}, nil).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, d.Metrics.TotalItems)
	assert.Len(t, d.Stock, 2)
	assert.Equal(t, []models.StatusCount{{Status: "PENDING", Count: 4}}, d.OrderStatus)
	assert.Equal(t, 5, d.Suppliers)
}

func TestDashboard_RefusedSectionIsSkipped(t *testing.T) {
	api := &fakeDashboardAPI{
		ordersErr: &client.RequestError{Op: client.OpAnalytics, Status: http.StatusForbidden},
	}
	d, err := NewDashboardService(api, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, d.OrderStatus)
	assert.Equal(t, 5, d.Suppliers)
}

func TestDashboard_NetworkErrorFailsLoad(t *testing.T) {
	api := &fakeDashboardAPI{
		metricsErr: &client.NetworkError{Op: client.OpMetrics, Err: errors.New("refused")},
	}
	d, err := NewDashboardService(api, nil).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, client.NetworkMessage, client.UserMessage(err))
	assert.Equal(t, 5, d.Suppliers, "other sections still load")
}

func TestOrderOptions(t *testing.T) {
	opts := NewDashboardService(&fakeDashboardAPI{}, nil).OrderOptions(context.Background())
	assert.Equal(t, []string{"Acme"}, opts.Suppliers)
	assert.Equal(t, []string{"Gloves", "Welding Helmet"}, opts.Items)

	opts = NewDashboardService(&fakeDashboardAPI{supplierListErr: errors.New("x")}, nil).OrderOptions(context.Background())
	assert.Empty(t, opts.Suppliers)
	assert.Len(t, opts.Items, 2)
}

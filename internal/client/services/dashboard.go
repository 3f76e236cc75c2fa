package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DashboardAPI is everything the dashboard reads.
type DashboardAPI interface {
	InventoryMetrics(ctx context.Context) (models.InventoryMetrics, error)
	InventoryItems(ctx context.Context) ([]models.InventoryItem, error)
	OrderAnalytics(ctx context.Context) (models.OrderAnalytics, error)
	SupplierAnalytics(ctx context.Context) (models.SupplierAnalytics, error)
	Suppliers(ctx context.Context) ([]models.Supplier, error)
}

// Dashboard is one load of the landing page. A section whose request was
// refused stays zero.
type Dashboard struct {
	Metrics     models.InventoryMetrics
	Stock       []models.InventoryItem
	OrderStatus []models.StatusCount
	Suppliers   int
}

type DashboardService struct {
	api DashboardAPI
	log logging.Logger
}

func NewDashboardService(api DashboardAPI, log logging.Logger) *DashboardService {
	if log == nil {
		log = logging.Nop()
	}
	return &DashboardService{api: api, log: log}
}

// tolerate drops non-2xx failures of one section and keeps transport
// failures, which fail the whole load.
func tolerate(ctx context.Context, log logging.Logger, section string, err error) error {
	if err == nil {
		return nil
	}
	var re *client.RequestError
	if errors.As(err, &re) && !client.IsUnauthorized(err) {
		log.Warn(ctx, "dashboard section skipped", "section", section, "status", re.Status)
		return nil
	}
	return err
}

// Load fetches all sections in parallel. The sections that succeeded are
// returned even when the error is non-nil.
func (s *DashboardService) Load(ctx context.Context) (Dashboard, error) {
	var (
		mu  sync.Mutex
		out Dashboard
		g   errgroup.Group
	)

	g.Go(func() error {
		m, err := s.api.InventoryMetrics(ctx)
		if err == nil {
			mu.Lock()
			out.Metrics = m
			mu.Unlock()
		}
		return tolerate(ctx, s.log, "metrics", err)
	})
	g.Go(func() error {
		items, err := s.api.InventoryItems(ctx)
		if err == nil {
			mu.Lock()
			out.Stock = items
			mu.Unlock()
		}
		return tolerate(ctx, s.log, "inventory", err)
	})
	g.Go(func() error {
		a, err := s.api.OrderAnalytics(ctx)
		if err == nil {
			mu.Lock()
			out.OrderStatus = a.StatusDistribution
			mu.Unlock()
		}
		return tolerate(ctx, s.log, "orders", err)
	})
	g.Go(func() error {
		a, err := s.api.SupplierAnalytics(ctx)
		if err == nil {
			mu.Lock()
			out.Suppliers = a.TotalSuppliers
			mu.Unlock()
		}
		return tolerate(ctx, s.log, "suppliers", err)
	})

	err := g.Wait()
	return out, err
}

// OrderOptions are the choices offered by the order dialog.
type OrderOptions struct {
	Suppliers []string
	Items     []string
}

// OrderOptions loads supplier and item names in parallel. A list that fails
// to load is left empty; the dialog still accepts free text.
func (s *DashboardService) OrderOptions(ctx context.Context) OrderOptions {
	var (
		out OrderOptions
		g   errgroup.Group
	)

	g.Go(func() error {
		sup, err := s.api.Suppliers(ctx)
		if err != nil {
			s.log.Warn(ctx, "supplier options unavailable", "error", err)
			return nil
		}
		for _, x := range sup {
			out.Suppliers = append(out.Suppliers, x.Name)
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.api.InventoryItems(ctx)
		if err != nil {
			s.log.Warn(ctx, "item options unavailable", "error", err)
			return nil
		}
		for _, x := range items {
			out.Items = append(out.Items, x.Name)
		}
		return nil
	})

	_ = g.Wait()
	return out
}

package cli

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/services"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

// stockBars is how many items the dashboard charts.
const stockBars = 10

const barWidth = 30

func (a *App) showDashboard(ctx context.Context) {
	d, err := a.dashboard.Load(ctx)
	if err != nil {
		a.sayErr(err)
		return
	}
	a.printDashboard(d)
}

func (a *App) printDashboard(d services.Dashboard) {
	a.say("Dashboard")
	a.say("  Total items: %d", d.Metrics.TotalItems)
	a.say("  Low stock:   %s", table.Paint(strconv.Itoa(d.Metrics.LowStock), lowStockTone(d.Metrics.LowStock), a.config.Color))
	a.say("  Suppliers:   %d", d.Suppliers)

	if len(d.OrderStatus) > 0 {
		a.printOrderStatus(models.OrderAnalytics{StatusDistribution: d.OrderStatus})
	}

	if len(d.Stock) == 0 {
		return
	}
	items := append([]models.InventoryItem(nil), d.Stock...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Quantity > items[j].Quantity })
	if len(items) > stockBars {
		items = items[:stockBars]
	}
	peak := items[0].Quantity
	name := 0
	for _, it := range items {
		if len(it.Name) > name {
			name = len(it.Name)
		}
	}

	a.say("Stock levels:")
	for _, it := range items {
		n := 0
		if peak > 0 && it.Quantity > 0 {
			n = it.Quantity*barWidth/peak + 1
			if n > barWidth {
				n = barWidth
			}
		}
		bar := table.Paint(strings.Repeat("#", n), resources.StockTone(it), a.config.Color)
		a.say("  %s %s %d", padRight(it.Name, name), bar, it.Quantity)
	}
}

package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

func (a *App) ordersPage() *page[models.Order] {
	oc := a.api.Orders()
	p := &page[models.Order]{
		app:           a,
		name:          "orders",
		singular:      "Order",
		ctrl:          table.NewController[models.Order](client.OrdersEndpoint, oc.List, a.tableConfig()),
		view:          resources.OrdersView(a.config.Color),
		res:           oc.Resource,
		dialog:        form.NewDialog(resources.OrderForm),
		confirmDelete: true,
		formats:       []string{string(client.FormatCSV), string(client.FormatPDF)},
		exportLabel:   "Orders ",
		exporter: func(ctx context.Context, format string) (client.Blob, error) {
			return oc.Export(ctx, client.Format(format))
		},
	}

	// The dialog accepts free text; known names are listed as a hint.
	p.prepare = func(ctx context.Context) {
		opts := a.dashboard.OrderOptions(ctx)
		if len(opts.Suppliers) > 0 {
			a.say("Suppliers: %s", strings.Join(opts.Suppliers, ", "))
		}
		if len(opts.Items) > 0 {
			a.say("Items:     %s", strings.Join(opts.Items, ", "))
		}
	}

	act := func(verb string, call func(ctx context.Context, id string) (models.Order, error)) command {
		return command{
			usage: verb + " <id>",
			run: func(ctx context.Context, args []string) {
				o, ok := p.find(args, verb+" <id>")
				if !ok {
					return
				}
				if !o.Actionable() {
					a.say("Only pending orders can be %sd.", verb)
					return
				}
				_ = p.mutate(ctx, "Order "+verb+"d successfully.", func(ctx context.Context) error {
					_, err := call(ctx, o.RowKey())
					return err
				})
			},
		}
	}

	p.extras = map[string]command{
		"approve": act("approve", oc.Approve),
		"reject":  act("reject", oc.Reject),
		"analytics": {
			usage: "analytics",
			run: func(ctx context.Context, _ []string) {
				an, err := oc.Analytics(ctx)
				if err != nil {
					a.sayErr(err)
					return
				}
				a.printOrderStatus(an)
			},
		},
	}
	return p
}

func (a *App) printOrderStatus(an models.OrderAnalytics) {
	if len(an.StatusDistribution) == 0 {
		a.say("No orders yet.")
		return
	}
	a.say("Order status:")
	for _, sc := range an.StatusDistribution {
		a.say("  %s %d", table.Paint(padRight(sc.Status, 10), resources.OrderStatusTone(sc.Status), a.config.Color), sc.Count)
	}
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

package cli

import (
	"context"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

func (a *App) suppliersPage() *page[models.Supplier] {
	sc := a.api.Suppliers()
	p := &page[models.Supplier]{
		app:           a,
		name:          "suppliers",
		singular:      "Supplier",
		ctrl:          table.NewController[models.Supplier](client.SuppliersEndpoint, sc.List, a.tableConfig()),
		view:          resources.SuppliersView(a.config.Color),
		res:           sc.Resource,
		dialog:        form.NewDialog(resources.SupplierForm),
		confirmDelete: true,
		formats:       []string{string(client.FormatCSV), string(client.FormatPDF)},
		exportLabel:   "Suppliers ",
		exporter: func(ctx context.Context, format string) (client.Blob, error) {
			return sc.Export(ctx, client.Format(format))
		},
	}
	p.extras = map[string]command{
		"analytics": {
			usage: "analytics",
			run: func(ctx context.Context, _ []string) {
				an, err := sc.Analytics(ctx)
				if err != nil {
					a.sayErr(err)
					return
				}
				a.printSupplierAnalytics(an)
			},
		},
	}
	return p
}

func (a *App) printSupplierAnalytics(an models.SupplierAnalytics) {
	if an.TotalSuppliers > 0 {
		a.say("Total suppliers: %d", an.TotalSuppliers)
	}
	if len(an.TopSuppliers) == 0 {
		a.say("No supplier orders yet.")
		return
	}
	a.say("Top suppliers:")
	for i, s := range an.TopSuppliers {
		a.say("  %d. %s (%d orders)", i+1, s.Supplier, s.OrderCount)
	}
}

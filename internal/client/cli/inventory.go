package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/services"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

func (a *App) inventoryPage() *page[models.InventoryItem] {
	inv := a.api.Inventory()
	p := &page[models.InventoryItem]{
		app:           a,
		name:          "inventory",
		singular:      "Item",
		ctrl:          table.NewController[models.InventoryItem](client.InventoryEndpoint, inv.List, a.tableConfig()),
		view:          resources.InventoryView(a.config.Color),
		res:           inv.Resource,
		dialog:        form.NewDialog(resources.InventoryForm),
		confirmDelete: true,
		formats:       []string{string(client.FormatCSV), string(client.FormatPDF)},
		exporter: func(ctx context.Context, format string) (client.Blob, error) {
			return inv.Export(ctx, client.Format(format))
		},
	}

	p.extras = map[string]command{
		"search": {
			usage: "search <text>",
			run: func(ctx context.Context, args []string) {
				q := strings.Join(args, " ")
				if err := p.ctrl.SetFilters(ctx, map[string]string{"name": q, "sku": q}); err != nil {
					a.sayErr(err)
				}
			},
		},
		"stockin": {
			usage: "stockin <id> [n]",
			run:   func(ctx context.Context, args []string) { a.adjustStock(ctx, p, args, 1) },
		},
		"stockout": {
			usage: "stockout <id> [n]",
			run:   func(ctx context.Context, args []string) { a.adjustStock(ctx, p, args, -1) },
		},
		"import": {
			usage: "import <file.csv>",
			run:   func(ctx context.Context, args []string) { a.importInventory(ctx, p, inv, args) },
		},
		"scan": {
			usage: "scan",
			run:   func(ctx context.Context, _ []string) { a.scanItem(ctx, p) },
		},
		"metrics": {
			usage: "metrics",
			run: func(ctx context.Context, _ []string) {
				m, err := inv.Metrics(ctx)
				if err != nil {
					a.sayErr(err)
					return
				}
				a.say("Total items: %d", m.TotalItems)
				a.say("Low stock:   %s", table.Paint(strconv.Itoa(m.LowStock), lowStockTone(m.LowStock), a.config.Color))
			},
		},
	}
	return p
}

func lowStockTone(n int) table.Tone {
	if n > 0 {
		return table.ToneWarning
	}
	return table.ToneSuccess
}

// adjustStock handles stockin and stockout. sign is +1 or -1.
func (a *App) adjustStock(ctx context.Context, p *page[models.InventoryItem], args []string, sign int) {
	usage := "stockin <id> [n]"
	if sign < 0 {
		usage = "stockout <id> [n]"
	}
	amount := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			a.say("Amount must be a positive whole number.")
			return
		}
		amount = n
		args = args[:1]
	}
	item, ok := p.find(args, usage)
	if !ok {
		return
	}
	delta := sign * amount
	_ = p.mutate(ctx, services.StockMessage(delta), func(ctx context.Context) error {
		_, err := a.stock.Adjust(ctx, item, delta)
		return err
	})
}

func (a *App) importInventory(ctx context.Context, p *page[models.InventoryItem], inv *client.InventoryClient, args []string) {
	if len(args) != 1 {
		a.say("Usage: import <file.csv>")
		return
	}
	path := args[0]
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		a.say("Only .csv files can be imported.")
		return
	}
	f, err := os.Open(path)
	if err != nil {
		a.log.Warn(ctx, "open import file", "path", path, "error", err)
		a.say("%s", table.Paint("! Cannot open "+path, table.ToneError, a.config.Color))
		return
	}
	defer f.Close()

	_ = p.mutate(ctx, "", func(ctx context.Context) error {
		res, err := inv.ImportCSV(ctx, filepath.Base(path), f)
		if err != nil {
			return err
		}
		a.sayOK(fmt.Sprintf("CSV imported successfully. Created: %d, Updated: %d", res.Created, res.Updated))
		return nil
	})
}

// scanItem reads a code from the scanner, finds the item on screen and
// offers a one-unit stock change.
func (a *App) scanItem(ctx context.Context, p *page[models.InventoryItem]) {
	a.say("Scanning...")
	item, err := a.stock.Scan(ctx, p.ctrl.Snapshot().Rows)
	if err != nil {
		a.sayErr(err)
		return
	}
	a.say("Scanned: %s (SKU %s), quantity %d", item.Name, item.SKU, item.Quantity)

	answer, err := getSimpleText(a.reader, "Stock (i)n, (o)ut or (c)ancel?", a.console())
	if err != nil {
		return
	}
	var delta int
	switch strings.ToLower(answer) {
	case "i", "in":
		delta = 1
	case "o", "out":
		delta = -1
	default:
		return
	}
	_ = p.mutate(ctx, services.StockMessage(delta), func(ctx context.Context) error {
		_, err := a.stock.Adjust(ctx, item, delta)
		return err
	})
}

package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"golang.org/x/sync/errgroup"
)

type reportSource func(ctx context.Context, f client.Format) (client.Blob, error)

// reportsPage offers the server-rendered CSV and PDF reports and the order
// and supplier analytics. It reports whether the user asked to quit.
func (a *App) reportsPage(ctx context.Context) bool {
	sources := map[string]reportSource{
		"inventory": a.api.Inventory().Export,
		"orders":    a.api.Orders().Export,
		"suppliers": a.api.Suppliers().Export,
	}
	kinds := make([]string, 0, len(sources))
	for k := range sources {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	usage := fmt.Sprintf("export <%s> <csv|pdf>", strings.Join(kinds, "|"))

	a.say("Reports: %s | analytics | back", usage)
	for {
		if ctx.Err() != nil {
			return true
		}
		a.say("ipms %s reports> ", a.getStatus())
		line, err := readLine(a.reader)
		if err != nil {
			return true
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "back":
			return false
		case "exit", "quit":
			return true
		case "help":
			a.say("Commands: %s | analytics | back | exit", usage)
		case "analytics":
			a.reportAnalytics(ctx)
		case "export":
			if len(parts) != 3 {
				a.say("Usage: %s", usage)
				continue
			}
			kind := strings.ToLower(parts[1])
			src, ok := sources[kind]
			format, ferr := client.ParseFormat(parts[2])
			if !ok || ferr != nil || format == client.FormatXLSX {
				a.say("Usage: %s", usage)
				continue
			}
			failMsg := "Failed to download report."
			if format == client.FormatPDF {
				failMsg = "Failed to download PDF report."
			}
			label := strings.ToUpper(kind[:1]) + kind[1:] + " " + strings.ToUpper(string(format)) + " report"
			a.startExport(ctx, kind+"/"+string(format), label, failMsg, func(ctx context.Context) (client.Blob, error) {
				return src(ctx, format)
			})
		default:
			a.say("Unknown command: %s (type 'help')", parts[0])
		}
	}
}

// reportAnalytics needs both order and supplier analytics; either failing
// fails the section.
func (a *App) reportAnalytics(ctx context.Context) {
	var (
		orders    models.OrderAnalytics
		suppliers models.SupplierAnalytics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = a.api.Orders().Analytics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = a.api.Suppliers().Analytics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Warn(ctx, "report analytics", "error", err)
		a.sayErr(err)
		return
	}
	a.printOrderStatus(orders)
	a.printSupplierAnalytics(suppliers)
}

package cli

import (
	"context"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/export"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

// auditPage is read-only. Exports are written from the rows on screen, so
// they follow the active filters.
func (a *App) auditPage() *page[models.AuditLog] {
	res := a.api.AuditLogs()
	p := &page[models.AuditLog]{
		app:         a,
		name:        "audit",
		singular:    "Entry",
		ctrl:        table.NewController[models.AuditLog](client.AuditLogsEndpoint, res.List, a.tableConfig()),
		view:        resources.AuditView(a.config.Color),
		formats:     []string{string(client.FormatCSV), string(client.FormatXLSX)},
		exportLabel: "Audit logs ",
	}
	p.exporter = func(ctx context.Context, format string) (client.Blob, error) {
		rows := export.AuditRows(p.ctrl.Snapshot().Rows)
		if client.Format(format) == client.FormatXLSX {
			return export.RowsXLSX(res.Endpoint().Name, rows, a.now())
		}
		return export.RowsCSV(res.Endpoint().Name, rows, a.now())
	}
	p.extras = map[string]command{
		"stats": {
			usage: "stats",
			run: func(ctx context.Context, _ []string) {
				st := resources.SummarizeAudit(p.ctrl.Snapshot().Rows, a.now())
				a.say("Total:     %d", st.Total)
				a.say("Today:     %d", st.Today)
				a.say("This week: %d", st.ThisWeek)
				a.say("By users:  %d", st.User)
				a.say("By system: %d", st.System)
			},
		},
	}
	return p
}

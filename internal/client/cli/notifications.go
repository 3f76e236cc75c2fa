package cli

import (
	"context"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/notify"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

// notificationsPage refreshes itself on the poll interval while open.
func (a *App) notificationsPage() *page[models.Notification] {
	nc := a.api.Notifications()
	p := &page[models.Notification]{
		app:      a,
		name:     "notifications",
		singular: "Notification",
		ctrl:     table.NewController[models.Notification](client.NotificationsEndpoint, nc.List, a.tableConfig()),
		view:     resources.NotificationsView(a.config.Color),
		res:      nc.Resource,
	}
	p.enter = func(ctx context.Context) func() {
		return notify.NewPoller(p.ctrl, a.config.NotificationPollInterval, a.log).Start(ctx)
	}
	p.extras = map[string]command{
		"read": {
			usage: "read <id>",
			run: func(ctx context.Context, args []string) {
				n, ok := p.find(args, "read <id>")
				if !ok {
					return
				}
				if n.IsRead {
					a.say("Already read.")
					return
				}
				_ = p.mutate(ctx, "", func(ctx context.Context) error {
					return nc.MarkRead(ctx, n.RowKey())
				})
			},
		},
		"readall": {
			usage: "readall",
			run: func(ctx context.Context, _ []string) {
				_ = p.mutate(ctx, "", nc.MarkAllRead)
			},
		},
		"unread": {
			usage: "unread",
			run: func(ctx context.Context, _ []string) {
				a.say("Unread: %d", unreadCount(p.ctrl.Snapshot().Rows))
			},
		},
	}
	return p
}

func unreadCount(ns []models.Notification) int {
	n := 0
	for _, x := range ns {
		if !x.IsRead {
			n++
		}
	}
	return n
}

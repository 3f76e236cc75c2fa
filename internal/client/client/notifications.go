package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

type NotificationsClient struct {
	*Resource[models.Notification]
}

func (c *Client) Notifications() *NotificationsClient {
	return &NotificationsClient{NewResource[models.Notification](c, NotificationsEndpoint)}
}

func (nc *NotificationsClient) MarkRead(ctx context.Context, id string) error {
	return nc.Action(ctx, OpMarkRead, id, "read", nil, nil)
}

func (nc *NotificationsClient) MarkAllRead(ctx context.Context) error {
	return nc.c.do(ctx, call{op: OpMarkAll, endpoint: nc.ep, method: http.MethodPost, path: nc.ep.Path + "mark-all-read/"}, nil)
}

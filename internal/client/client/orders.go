package client

import (
	"context"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

type OrdersClient struct {
	*Resource[models.Order]
}

func (c *Client) Orders() *OrdersClient {
	return &OrdersClient{NewResource[models.Order](c, OrdersEndpoint)}
}

func (oc *OrdersClient) Approve(ctx context.Context, id string) (models.Order, error) {
	return oc.act(ctx, id, models.ActionApprove)
}

func (oc *OrdersClient) Reject(ctx context.Context, id string) (models.Order, error) {
	return oc.act(ctx, id, models.ActionReject)
}

func (oc *OrdersClient) act(ctx context.Context, id string, action models.OrderAction) (models.Order, error) {
	var out models.Order
	err := oc.Action(ctx, OpAction, id, "action", models.OrderActionRequest{Action: action}, &out)
	return out, err
}

func (oc *OrdersClient) Analytics(ctx context.Context) (models.OrderAnalytics, error) {
	var out models.OrderAnalytics
	err := oc.get(ctx, OpAnalytics, oc.ep.Path+"analytics/", &out)
	return out, err
}

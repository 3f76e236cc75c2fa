package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

type PaymentsClient struct {
	*Resource[models.PaymentRequest]
}

func (c *Client) Payments() *PaymentsClient {
	return &PaymentsClient{NewResource[models.PaymentRequest](c, PaymentsEndpoint)}
}

// Requests lists the caller's payment requests.
func (pc *PaymentsClient) Requests(ctx context.Context) ([]models.PaymentRequest, error) {
	return pc.List(ctx, nil)
}

func (pc *PaymentsClient) Analytics(ctx context.Context) (models.PaymentAnalytics, error) {
	var out models.PaymentAnalytics
	err := pc.get(ctx, OpAnalytics, "/api/payments/analytics/", &out)
	return out, err
}

// GenerateLink creates a payment request and returns its mobile-money link.
func (pc *PaymentsClient) GenerateLink(ctx context.Context, draft models.PaymentRequest) (models.PaymentLink, error) {
	var out models.PaymentLink
	err := pc.c.do(ctx, call{op: OpGenerate, endpoint: pc.ep, method: http.MethodPost, path: "/api/payments/generate-link/", body: draft}, &out)
	return out, err
}

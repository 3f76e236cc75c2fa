package client

import (
	"context"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

type SuppliersClient struct {
	*Resource[models.Supplier]
}

func (c *Client) Suppliers() *SuppliersClient {
	return &SuppliersClient{NewResource[models.Supplier](c, SuppliersEndpoint)}
}

// Analytics returns the suppliers with the most orders. Older backends omit
// total_suppliers, leaving it zero.
func (sc *SuppliersClient) Analytics(ctx context.Context) (models.SupplierAnalytics, error) {
	var out models.SupplierAnalytics
	err := sc.get(ctx, OpAnalytics, sc.ep.Path+"analytics/", &out)
	return out, err
}

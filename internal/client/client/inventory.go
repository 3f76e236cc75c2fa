package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

type InventoryClient struct {
	*Resource[models.InventoryItem]
}

func (c *Client) Inventory() *InventoryClient {
	return &InventoryClient{NewResource[models.InventoryItem](c, InventoryEndpoint)}
}

func (ic *InventoryClient) StockIn(ctx context.Context, id string, amount int) (models.StockResult, error) {
	var out models.StockResult
	err := ic.Action(ctx, OpStock, id, "stock-in", models.StockChange{Amount: amount}, &out)
	return out, err
}

// StockOut fails with the server's "Not enough stock." detail when amount
// exceeds the quantity on hand.
func (ic *InventoryClient) StockOut(ctx context.Context, id string, amount int) (models.StockResult, error) {
	var out models.StockResult
	err := ic.Action(ctx, OpStock, id, "stock-out", models.StockChange{Amount: amount}, &out)
	return out, err
}

// ImportCSV uploads a CSV of name,sku,quantity,reorder_level rows as the
// multipart field "file". Rows are matched on sku.
func (ic *InventoryClient) ImportCSV(ctx context.Context, filename string, r io.Reader) (models.ImportResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return models.ImportResult{}, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return models.ImportResult{}, fmt.Errorf("build upload: %w", err)
	}

	var out models.ImportResult
	err = ic.c.do(ctx, call{
		op: OpImport, endpoint: ic.ep, method: http.MethodPost,
		path: ic.ep.Path + "import/csv/", raw: &buf, contentType: mw.FormDataContentType(),
		arg: string(FormatCSV),
	}, &out)
	return out, err
}

// Metrics returns the item count and how many are at or below reorder level.
func (ic *InventoryClient) Metrics(ctx context.Context) (models.InventoryMetrics, error) {
	var out models.InventoryMetrics
	err := ic.get(ctx, OpMetrics, "/api/inventory/metrics/", &out)
	return out, err
}

package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/scan"
	"github.com/dmitrijs2005/ipms/internal/common"
)

// StockAPI adjusts quantities on hand.
type StockAPI interface {
	StockIn(ctx context.Context, id string, amount int) (models.StockResult, error)
	StockOut(ctx context.Context, id string, amount int) (models.StockResult, error)
}

// StockService backs the scan-then-adjust flow of the inventory page.
type StockService struct {
	api     StockAPI
	scanner scan.Scanner
}

func NewStockService(api StockAPI, scanner scan.Scanner) *StockService {
	return &StockService{api: api, scanner: scanner}
}

// ScanError is a scanned code that matches none of the listed items.
type ScanError struct {
	SKU string
}

func (e *ScanError) Error() string       { return "no item found with sku " + e.SKU }
func (e *ScanError) Unwrap() error       { return common.ErrNotFound }
func (e *ScanError) UserMessage() string { return "No item found with SKU: " + e.SKU }

// Scan reads one code and looks it up among rows, the items currently
// listed. The lookup is local and exact.
func (s *StockService) Scan(ctx context.Context, rows []models.InventoryItem) (models.InventoryItem, error) {
	sku, err := s.scanner.Scan(ctx)
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("scan: %w", err)
	}
	for _, it := range rows {
		if it.SKU == sku {
			return it, nil
		}
	}
	return models.InventoryItem{}, &ScanError{SKU: sku}
}

// Adjust moves stock by delta: positive calls stock-in, negative stock-out.
func (s *StockService) Adjust(ctx context.Context, item models.InventoryItem, delta int) (models.StockResult, error) {
	switch {
	case delta > 0:
		return s.api.StockIn(ctx, item.RowKey(), delta)
	case delta < 0:
		return s.api.StockOut(ctx, item.RowKey(), -delta)
	default:
		return models.StockResult{}, fmt.Errorf("stock change must not be zero")
	}
}

// StockMessage is the banner after a successful adjustment.
func StockMessage(delta int) string {
	if delta > 0 {
		return "Stock increased successfully."
	}
	return "Stock decreased successfully."
}

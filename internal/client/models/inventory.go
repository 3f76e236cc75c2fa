package models

import (
	"strconv"
	"time"
)

type InventoryItem struct {
	ID           int64     `json:"id,omitempty"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}

func (i InventoryItem) RowKey() string { return strconv.FormatInt(i.ID, 10) }

// LowStock reports whether the item is at or below its reorder level.
func (i InventoryItem) LowStock() bool { return i.Quantity <= i.ReorderLevel }

// StockChange is the body of stock-in and stock-out calls.
type StockChange struct {
	Amount int `json:"amount"`
}

// StockResult is what stock-in and stock-out return on success.
type StockResult struct {
	Status      string `json:"status"`
	ItemID      int64  `json:"item_id"`
	NewQuantity int    `json:"new_quantity"`
}

type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type InventoryMetrics struct {
	TotalItems int `json:"total_items"`
	LowStock   int `json:"low_stock"`
}

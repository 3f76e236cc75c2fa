package models

import (
	"strconv"
	"time"
)

type Supplier struct {
	ID           int64     `json:"id,omitempty"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}

func (s Supplier) RowKey() string { return strconv.FormatInt(s.ID, 10) }

type SupplierOrderCount struct {
	Supplier   string `json:"supplier"`
	OrderCount int    `json:"order_count"`
}

type SupplierAnalytics struct {
	TotalSuppliers int                  `json:"total_suppliers"`
	TopSuppliers   []SupplierOrderCount `json:"top_suppliers"`
}

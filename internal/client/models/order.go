package models

import (
	"strconv"
	"time"
)

const (
	OrderPending  = "PENDING"
	OrderApproved = "APPROVED"
	OrderRejected = "REJECTED"
)

// OrderStatuses lists the statuses accepted by the status filter.
var OrderStatuses = []string{OrderPending, OrderApproved, OrderRejected}

type Order struct {
	ID        int64     `json:"id,omitempty"`
	Supplier  string    `json:"supplier"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func (o Order) RowKey() string { return strconv.FormatInt(o.ID, 10) }

// Actionable reports whether approve/reject may be offered for the order.
func (o Order) Actionable() bool { return o.Status == OrderPending }

type OrderAction string

const (
	ActionApprove OrderAction = "approve"
	ActionReject  OrderAction = "reject"
)

type OrderActionRequest struct {
	Action OrderAction `json:"action"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type OrderAnalytics struct {
	StatusDistribution []StatusCount `json:"status_distribution"`
}

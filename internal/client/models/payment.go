package models

import "time"

const (
	PaymentOrder      = "ORDER_PAYMENT"
	PaymentSupplier   = "SUPPLIER_PAYMENT"
	PaymentSubscribe  = "SUBSCRIPTION"
	PaymentOther      = "OTHER"
	PaymentPending    = "PENDING"
	PaymentProcessing = "PROCESSING"
	PaymentCompleted  = "COMPLETED"
	PaymentFailed     = "FAILED"
	PaymentCancelled  = "CANCELLED"

	DefaultCurrency = "GHS"
)

var PaymentTypes = []string{PaymentOrder, PaymentSupplier, PaymentSubscribe, PaymentOther}

// PaymentRequest is a mobile-money payment request. Amount stays a decimal
// string exactly as the backend sends it.
type PaymentRequest struct {
	ID          string    `json:"id,omitempty"`
	PaymentType string    `json:"payment_type"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	MomoPhone   string    `json:"momo_phone"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	PaymentURL  string    `json:"payment_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

func (p PaymentRequest) RowKey() string { return p.ID }

type PaymentLink struct {
	PaymentRequest PaymentRequest `json:"payment_request"`
	PaymentURL     string         `json:"payment_url"`
	Message        string         `json:"message"`
}

type PaymentTypeCount struct {
	PaymentType string `json:"payment_type"`
	Count       int    `json:"count"`
}

type PaymentAnalytics struct {
	TotalPayments     int                `json:"total_payments"`
	CompletedPayments int                `json:"completed_payments"`
	PendingPayments   int                `json:"pending_payments"`
	FailedPayments    int                `json:"failed_payments"`
	TotalAmount       float64            `json:"total_amount"`
	PaymentTypes      []PaymentTypeCount `json:"payment_types"`
	RecentPayments    []PaymentRequest   `json:"recent_payments"`
}

package entities

import (
	"encoding/json"
	"time"
)

type LabInvoiceStatus string

const (
	LabInvoiceStatusPendiente LabInvoiceStatus = "Pendiente"
	LabInvoiceStatusPagada    LabInvoiceStatus = "Pagada"
	LabInvoiceStatusAnulada   LabInvoiceStatus = "Anulada"
)

// LabInvoiceItem bills one piece of lab work, optionally tied to an order.
type LabInvoiceItem struct {
	OrderID     string  `json:"order_id,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (i LabInvoiceItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// LabInvoice is an invoice issued by a laboratory to the clinic.
//
// Payment payload:
//   - PaymentPayloadRaw keeps the provider response for traceability.
//   - PaymentStartedAt is set while a charge is in flight and cleared when it settles.
type LabInvoice struct {
	ID                string           `json:"id"`
	Number            string           `json:"number"`
	Lab               Reference        `json:"lab"`
	IssuedAt          time.Time        `json:"issued_at"`
	DueAt             *time.Time       `json:"due_at,omitempty"`
	Items             []LabInvoiceItem `json:"items"`
	Total             float64          `json:"total"`
	Status            LabInvoiceStatus `json:"status"`
	PaymentID         string           `json:"payment_id,omitempty"`
	PaidAt            *time.Time       `json:"paid_at,omitempty"`
	PaymentPayloadRaw json.RawMessage  `json:"payment_payload_raw,omitempty"`
	PaymentStartedAt  *time.Time       `json:"payment_started_at,omitempty"`
	CreatedBy         string           `json:"created_by"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Version           int64            `json:"version"`
}

// PaymentInProgress reports whether a charge started within lease of now.
func (inv LabInvoice) PaymentInProgress(now time.Time, lease time.Duration) bool {
	return inv.PaymentStartedAt != nil && now.Sub(*inv.PaymentStartedAt) < lease
}

// ComputeTotal recalculates Total from the items.
func (inv *LabInvoice) ComputeTotal() float64 {
	total := 0.0
	for _, it := range inv.Items {
		total += it.Subtotal()
	}
	inv.Total = total
	return total
}

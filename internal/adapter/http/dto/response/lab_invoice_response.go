package response

import (
	"time"

	"odonto_docs/internal/domain/entities"
)

type LabInvoiceResponse struct {
	ID        string                    `json:"id"`
	Number    string                    `json:"number"`
	Lab       entities.Reference        `json:"lab"`
	IssuedAt  time.Time                 `json:"issued_at"`
	DueAt     *time.Time                `json:"due_at,omitempty"`
	Items     []entities.LabInvoiceItem `json:"items"`
	Total     float64                   `json:"total"`
	Status    string                    `json:"status"`
	PaymentID string                    `json:"payment_id,omitempty"`
	PaidAt    *time.Time                `json:"paid_at,omitempty"`
	CreatedBy string                    `json:"created_by"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
	Version   int64                     `json:"version"`

	PaymentStartedAt *time.Time `json:"payment_started_at,omitempty"`

	PaymentPayloadRaw string `json:"payment_payload_raw,omitempty"`
}

func FromLabInvoice(inv entities.LabInvoice) LabInvoiceResponse {
	return LabInvoiceResponse{
		ID:                inv.ID,
		Number:            inv.Number,
		Lab:               inv.Lab,
		IssuedAt:          inv.IssuedAt,
		DueAt:             inv.DueAt,
		Items:             inv.Items,
		Total:             inv.Total,
		Status:            string(inv.Status),
		PaymentID:         inv.PaymentID,
		PaidAt:            inv.PaidAt,
		CreatedBy:         inv.CreatedBy,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
		Version:           inv.Version,
		PaymentStartedAt:  inv.PaymentStartedAt,
		PaymentPayloadRaw: string(inv.PaymentPayloadRaw),
	}
}

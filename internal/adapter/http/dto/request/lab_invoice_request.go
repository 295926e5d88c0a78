package request

import (
	"time"

	"odonto_docs/internal/domain/entities"
)

type LabInvoiceItemRequest struct {
	OrderID     string  `json:"order_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// LabInvoiceRequest never carries a total; it is derived from the items.
type LabInvoiceRequest struct {
	Number   string                  `json:"number" binding:"required"`
	Lab      ReferenceRequest        `json:"lab"`
	IssuedAt *time.Time              `json:"issued_at"`
	DueAt    *time.Time              `json:"due_at"`
	Items    []LabInvoiceItemRequest `json:"items"`
}

func (r LabInvoiceRequest) ItemsToEntity() []entities.LabInvoiceItem {
	out := make([]entities.LabInvoiceItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, entities.LabInvoiceItem{
			OrderID:     it.OrderID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

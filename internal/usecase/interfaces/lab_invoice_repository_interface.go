package interfaces

import (
	"context"

	"odonto_docs/internal/domain/entities"
)

// LabInvoiceFilter narrows invoice listings. Empty fields are ignored.
type LabInvoiceFilter struct {
	LabID  string
	Status entities.LabInvoiceStatus
	Page   int
	Limit  int
}

// ILabInvoiceRepository abstracts invoice persistence. Update is conditional on
// Version and fails with ErrVersionConflict when the stored copy is newer.
type ILabInvoiceRepository interface {
	Create(ctx context.Context, inv entities.LabInvoice) (entities.LabInvoice, error)
	GetByID(ctx context.Context, id string) (entities.LabInvoice, error)
	List(ctx context.Context, filter LabInvoiceFilter) ([]entities.LabInvoice, int, error)
	Update(ctx context.Context, inv entities.LabInvoice) (entities.LabInvoice, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"odonto_docs/internal/domain/entities"
)

// IConsentTemplateRepository abstracts persistence of consent templates.
// A zero-value template (empty ID) means not found.
type IConsentTemplateRepository interface {
	Create(ctx context.Context, t entities.ConsentTemplate) (entities.ConsentTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ConsentTemplate, error)
	List(ctx context.Context, activeOnly bool) ([]entities.ConsentTemplate, error)
}

// IConsentRepository abstracts persistence of generated consent documents.
// Update is conditional on Version and fails with ErrVersionConflict when the
// stored copy is newer.
type IConsentRepository interface {
	Create(ctx context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error)
	GetByID(ctx context.Context, id string) (entities.ConsentDocument, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.ConsentDocument, error)
	Update(ctx context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error)
}

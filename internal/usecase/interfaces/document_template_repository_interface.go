package interfaces

import (
	"context"

	"odonto_docs/internal/domain/entities"
)

type IDocumentTemplateRepository interface {
	Create(ctx context.Context, t entities.DocumentTemplate) (entities.DocumentTemplate, error)
	GetByID(ctx context.Context, id string) (entities.DocumentTemplate, error)
	List(ctx context.Context, category entities.DocumentCategory) ([]entities.DocumentTemplate, error)
	Update(ctx context.Context, t entities.DocumentTemplate) (entities.DocumentTemplate, error)
	Delete(ctx context.Context, id string) error
}

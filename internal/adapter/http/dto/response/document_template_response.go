package response

import (
	"time"

	"odonto_docs/internal/domain/entities"
)

type DocumentTemplateResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Content      string    `json:"content"`
	Placeholders []string  `json:"placeholders"`
	Active       bool      `json:"active"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromDocumentTemplate(t entities.DocumentTemplate) DocumentTemplateResponse {
	placeholders := t.Placeholders
	if placeholders == nil {
		placeholders = []string{}
	}
	return DocumentTemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Category:     string(t.Category),
		Content:      t.Content,
		Placeholders: placeholders,
		Active:       t.Active,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromDocumentTemplates(ts []entities.DocumentTemplate) []DocumentTemplateResponse {
	out := make([]DocumentTemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromDocumentTemplate(t))
	}
	return out
}

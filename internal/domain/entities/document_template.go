package entities

import "time"

type DocumentCategory string

const (
	DocumentCategoryConsentimiento DocumentCategory = "consentimiento"
	DocumentCategoryReceta         DocumentCategory = "receta"
	DocumentCategoryInforme        DocumentCategory = "informe"
	DocumentCategoryPresupuesto    DocumentCategory = "presupuesto"
	DocumentCategoryOtro           DocumentCategory = "otro"
)

func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentCategoryConsentimiento, DocumentCategoryReceta, DocumentCategoryInforme,
		DocumentCategoryPresupuesto, DocumentCategoryOtro:
		return true
	}
	return false
}

// DocumentTemplate is a generic clinical document template (prescriptions,
// reports, quotes).
type DocumentTemplate struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     DocumentCategory `json:"category"`
	Content      string           `json:"content"`
	Placeholders []string         `json:"placeholders"`
	Active       bool             `json:"active"`
	CreatedBy    string           `json:"created_by"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Placeholder describes one variable that templates may reference.
type Placeholder struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

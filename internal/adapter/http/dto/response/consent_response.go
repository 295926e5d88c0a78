package response

import (
	"time"

	"odonto_docs/internal/domain/entities"
)

type ConsentResponse struct {
	ID              string              `json:"id"`
	TemplateID      string              `json:"template_id"`
	TemplateVersion int                 `json:"template_version"`
	Patient         entities.Reference  `json:"patient"`
	Professional    entities.Reference  `json:"professional"`
	Title           string              `json:"title"`
	Content         string              `json:"content"`
	Status          string              `json:"status"`
	Signature       *entities.Signature `json:"signature,omitempty"`
	RevokedAt       *time.Time          `json:"revoked_at,omitempty"`
	CreatedBy       string              `json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Version         int64               `json:"version"`
}

func FromConsent(d entities.ConsentDocument) ConsentResponse {
	return ConsentResponse{
		ID:              d.ID,
		TemplateID:      d.TemplateID,
		TemplateVersion: d.TemplateVersion,
		Patient:         d.Patient,
		Professional:    d.Professional,
		Title:           d.Title,
		Content:         d.Content,
		Status:          string(d.Status),
		Signature:       d.Signature,
		RevokedAt:       d.RevokedAt,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Version:         d.Version,
	}
}

func FromConsents(docs []entities.ConsentDocument) []ConsentResponse {
	out := make([]ConsentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromConsent(d))
	}
	return out
}

type ConsentTemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Procedure string    `json:"procedure,omitempty"`
	Body      string    `json:"body"`
	Version   int       `json:"version"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromConsentTemplate(t entities.ConsentTemplate) ConsentTemplateResponse {
	return ConsentTemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Procedure: t.Procedure,
		Body:      t.Body,
		Version:   t.Version,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromConsentTemplates(ts []entities.ConsentTemplate) []ConsentTemplateResponse {
	out := make([]ConsentTemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromConsentTemplate(t))
	}
	return out
}

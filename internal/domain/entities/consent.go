package entities

import "time"

type ConsentStatus string

const (
	ConsentStatusPendiente ConsentStatus = "Pendiente"
	ConsentStatusFirmado   ConsentStatus = "Firmado"
	ConsentStatusRevocado  ConsentStatus = "Revocado"
)

// ConsentTemplate is a reusable informed-consent text. Body may contain
// placeholders such as {{paciente.nombre}}.
type ConsentTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Procedure string    `json:"procedure"`
	Body      string    `json:"body"`
	Version   int       `json:"version"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Signature holds the captured signature of a consent document.
type Signature struct {
	SignerID   string    `json:"signer_id"`
	SignerName string    `json:"signer_name"`
	ImageURL   string    `json:"image_url"`
	StorageKey string    `json:"storage_key"`
	SignedAt   time.Time `json:"signed_at"`
}

// ConsentDocument is a consent template instantiated for one patient.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (patient_id-index): patient_id
type ConsentDocument struct {
	ID              string        `json:"id"`
	TemplateID      string        `json:"template_id"`
	TemplateVersion int           `json:"template_version"`
	Patient         Reference     `json:"patient"`
	Professional    Reference     `json:"professional"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	Status          ConsentStatus `json:"status"`
	Signature       *Signature    `json:"signature,omitempty"`
	RevokedAt       *time.Time    `json:"revoked_at,omitempty"`
	CreatedBy       string        `json:"created_by"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Version         int64         `json:"version"`
}

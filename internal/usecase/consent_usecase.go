package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"odonto_docs/internal/domain/documents"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrConsentNotFound         = errors.New("consent not found")
	ErrConsentTemplateNotFound = errors.New("consent template not found")
	ErrInvalidConsentID        = errors.New("invalid consent id")
	ErrInvalidConsentPayload   = errors.New("invalid consent payload")
	ErrTemplateInactive        = errors.New("consent template inactive")
	ErrConsentAlreadySigned    = errors.New("consent already signed")
	ErrConsentRevoked          = errors.New("consent revoked")
	ErrInvalidSignature        = errors.New("invalid signature")
)

// MissingPlaceholdersError lists the template variables that had no value.
type MissingPlaceholdersError struct {
	Keys []string
}

func (e *MissingPlaceholdersError) Error() string {
	return "missing placeholder values: " + strings.Join(e.Keys, ", ")
}

func (e *MissingPlaceholdersError) Unwrap() error { return ErrInvalidConsentPayload }

const maxSignatureBytes = 2 << 20

type ConsentTemplateCommand struct {
	Name      string
	Procedure string
	Body      string
}

// GenerateConsentCommand instantiates a template for one patient. Values fill
// placeholders not derivable from the references.
type GenerateConsentCommand struct {
	TemplateID   string
	Patient      entities.Reference
	Professional entities.Reference
	Values       map[string]string
}

type SignConsentCommand struct {
	SignerName  string
	Image       []byte
	ContentType string
}

// IConsentUseCase exposes informed-consent operations:
//   - GET /consentimientos/plantillas => ListTemplates()
//   - POST /consentimientos/generar => Generate()
//   - PUT /consentimientos/:id/firmar => Sign()
type IConsentUseCase interface {
	ListTemplates(ctx context.Context, activeOnly bool) ([]entities.ConsentTemplate, error)
	CreateTemplate(ctx context.Context, actorID string, cmd ConsentTemplateCommand) (entities.ConsentTemplate, error)
	Generate(ctx context.Context, actorID string, cmd GenerateConsentCommand) (entities.ConsentDocument, error)
	GetByID(ctx context.Context, id string) (entities.ConsentDocument, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.ConsentDocument, error)
	Sign(ctx context.Context, id, actorID string, cmd SignConsentCommand) (entities.ConsentDocument, error)
	Revoke(ctx context.Context, id, actorID string) (entities.ConsentDocument, error)
}

type ConsentUseCase struct {
	templates interfaces.IConsentTemplateRepository
	consents  interfaces.IConsentRepository
	deps      Deps
}

var _ IConsentUseCase = (*ConsentUseCase)(nil)

func NewConsentUseCase(templates interfaces.IConsentTemplateRepository, consents interfaces.IConsentRepository, deps Deps) *ConsentUseCase {
	return &ConsentUseCase{templates: templates, consents: consents, deps: deps.withDefaults()}
}

func (u *ConsentUseCase) ListTemplates(ctx context.Context, activeOnly bool) ([]entities.ConsentTemplate, error) {
	return u.templates.List(ctx, activeOnly)
}

func (u *ConsentUseCase) CreateTemplate(ctx context.Context, actorID string, cmd ConsentTemplateCommand) (entities.ConsentTemplate, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.ConsentTemplate{}, ErrMissingActor
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" || strings.TrimSpace(cmd.Body) == "" {
		return entities.ConsentTemplate{}, ErrInvalidConsentPayload
	}
	if unknown := documents.Unknown(cmd.Body); len(unknown) > 0 {
		return entities.ConsentTemplate{}, &UnknownPlaceholdersError{Keys: unknown}
	}

	now := u.deps.Now()
	t := entities.ConsentTemplate{
		ID:        u.deps.NewID(),
		Name:      name,
		Procedure: strings.TrimSpace(cmd.Procedure),
		Body:      cmd.Body,
		Version:   1,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.templates.Create(ctx, t)
}

func (u *ConsentUseCase) Generate(ctx context.Context, actorID string, cmd GenerateConsentCommand) (entities.ConsentDocument, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.ConsentDocument{}, ErrMissingActor
	}
	if strings.TrimSpace(cmd.TemplateID) == "" || strings.TrimSpace(cmd.Patient.ID) == "" {
		return entities.ConsentDocument{}, ErrInvalidConsentPayload
	}

	tpl, err := u.templates.GetByID(ctx, strings.TrimSpace(cmd.TemplateID))
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	if tpl.ID == "" {
		return entities.ConsentDocument{}, ErrConsentTemplateNotFound
	}
	if !tpl.Active {
		return entities.ConsentDocument{}, ErrTemplateInactive
	}

	now := u.deps.Now()
	values := map[string]string{
		"paciente.nombre":    cmd.Patient.Name,
		"profesional.nombre": cmd.Professional.Name,
		"fecha.hoy":          now.Format("02/01/2006"),
	}
	for k, v := range cmd.Values {
		values[k] = v
	}
	content, missing := documents.Render(tpl.Body, values)
	if len(missing) > 0 {
		return entities.ConsentDocument{}, &MissingPlaceholdersError{Keys: missing}
	}

	doc := entities.ConsentDocument{
		ID:              u.deps.NewID(),
		TemplateID:      tpl.ID,
		TemplateVersion: tpl.Version,
		Patient:         cmd.Patient,
		Professional:    cmd.Professional,
		Title:           tpl.Name,
		Content:         content,
		Status:          entities.ConsentStatusPendiente,
		CreatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.consents.Create(ctx, doc)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	zap.S().Infof("[consentimiento][usecase] generated id=%s template_id=%s patient_id=%s", created.ID, tpl.ID, cmd.Patient.ID)
	return created, nil
}

func (u *ConsentUseCase) GetByID(ctx context.Context, id string) (entities.ConsentDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConsentDocument{}, ErrInvalidConsentID
	}
	d, err := u.consents.GetByID(ctx, id)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	if d.ID == "" {
		return entities.ConsentDocument{}, ErrConsentNotFound
	}
	return d, nil
}

func (u *ConsentUseCase) ListByPatient(ctx context.Context, patientID string) ([]entities.ConsentDocument, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidConsentPayload
	}
	return u.consents.ListByPatientID(ctx, patientID)
}

// Sign stores the signature image and freezes the document. A document can be
// signed once.
func (u *ConsentUseCase) Sign(ctx context.Context, id, actorID string, cmd SignConsentCommand) (entities.ConsentDocument, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.ConsentDocument{}, ErrMissingActor
	}
	if len(cmd.Image) == 0 || len(cmd.Image) > maxSignatureBytes || strings.TrimSpace(cmd.SignerName) == "" {
		return entities.ConsentDocument{}, ErrInvalidSignature
	}
	if u.deps.Storage == nil {
		return entities.ConsentDocument{}, ErrStorageNotReady
	}

	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	switch d.Status {
	case entities.ConsentStatusFirmado:
		return entities.ConsentDocument{}, ErrConsentAlreadySigned
	case entities.ConsentStatusRevocado:
		return entities.ConsentDocument{}, ErrConsentRevoked
	}

	contentType := cmd.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	key := path.Join("consentimientos", d.ID, fmt.Sprintf("firma-%d", u.deps.Now().UnixNano()))
	url, err := u.deps.Storage.Upload(ctx, key, contentType, int64(len(cmd.Image)), bytes.NewReader(cmd.Image))
	if err != nil {
		return entities.ConsentDocument{}, err
	}

	now := u.deps.Now()
	d.Signature = &entities.Signature{
		SignerID:   actorID,
		SignerName: strings.TrimSpace(cmd.SignerName),
		ImageURL:   url,
		StorageKey: key,
		SignedAt:   now,
	}
	d.Status = entities.ConsentStatusFirmado
	d.UpdatedAt = now

	updated, err := u.consents.Update(ctx, d)
	if err != nil {
		u.discardSignature(ctx, d.ID, key)
		return entities.ConsentDocument{}, err
	}
	if updated.ID == "" {
		u.discardSignature(ctx, d.ID, key)
		return entities.ConsentDocument{}, ErrConsentNotFound
	}
	zap.S().Infof("[consentimiento][usecase] signed id=%s signer=%s", d.ID, actorID)
	return updated, nil
}

// discardSignature removes an uploaded image the document never referenced.
func (u *ConsentUseCase) discardSignature(ctx context.Context, id, key string) {
	if err := u.deps.Storage.Delete(ctx, key); err != nil {
		zap.S().Warnf("[consentimiento][usecase] signature delete failed id=%s key=%s err=%v", id, key, err)
	}
}

func (u *ConsentUseCase) Revoke(ctx context.Context, id, actorID string) (entities.ConsentDocument, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.ConsentDocument{}, ErrMissingActor
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	if d.Status == entities.ConsentStatusRevocado {
		return entities.ConsentDocument{}, ErrConsentRevoked
	}

	now := u.deps.Now()
	d.Status = entities.ConsentStatusRevocado
	d.RevokedAt = &now
	d.UpdatedAt = now

	updated, err := u.consents.Update(ctx, d)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	if updated.ID == "" {
		return entities.ConsentDocument{}, ErrConsentNotFound
	}
	zap.S().Infof("[consentimiento][usecase] revoked id=%s actor=%s", d.ID, actorID)
	return updated, nil
}

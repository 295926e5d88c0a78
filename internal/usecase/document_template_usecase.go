package usecase

import (
	"context"
	"errors"
	"strings"

	"odonto_docs/internal/domain/documents"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"
)

var (
	ErrDocumentTemplateNotFound = errors.New("document template not found")
	ErrInvalidTemplateID        = errors.New("invalid template id")
	ErrInvalidTemplatePayload   = errors.New("invalid template payload")
)

// UnknownPlaceholdersError lists template variables outside the catalogue.
type UnknownPlaceholdersError struct {
	Keys []string
}

func (e *UnknownPlaceholdersError) Error() string {
	return "unknown placeholders: " + strings.Join(e.Keys, ", ")
}

func (e *UnknownPlaceholdersError) Unwrap() error { return ErrInvalidTemplatePayload }

type DocumentTemplateCommand struct {
	Name     string
	Category entities.DocumentCategory
	Content  string
	Active   *bool
}

type IDocumentTemplateUseCase interface {
	Create(ctx context.Context, actorID string, cmd DocumentTemplateCommand) (entities.DocumentTemplate, error)
	GetByID(ctx context.Context, id string) (entities.DocumentTemplate, error)
	List(ctx context.Context, category string) ([]entities.DocumentTemplate, error)
	Update(ctx context.Context, id, actorID string, cmd DocumentTemplateCommand) (entities.DocumentTemplate, error)
	Delete(ctx context.Context, id, actorID string) error
	Placeholders() []entities.Placeholder
}

type DocumentTemplateUseCase struct {
	repo interfaces.IDocumentTemplateRepository
	deps Deps
}

var _ IDocumentTemplateUseCase = (*DocumentTemplateUseCase)(nil)

func NewDocumentTemplateUseCase(repo interfaces.IDocumentTemplateRepository, deps Deps) *DocumentTemplateUseCase {
	return &DocumentTemplateUseCase{repo: repo, deps: deps.withDefaults()}
}

func validateTemplate(cmd DocumentTemplateCommand) error {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Content) == "" || !cmd.Category.Valid() {
		return ErrInvalidTemplatePayload
	}
	if unknown := documents.Unknown(cmd.Content); len(unknown) > 0 {
		return &UnknownPlaceholdersError{Keys: unknown}
	}
	return nil
}

func (u *DocumentTemplateUseCase) Create(ctx context.Context, actorID string, cmd DocumentTemplateCommand) (entities.DocumentTemplate, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.DocumentTemplate{}, ErrMissingActor
	}
	if err := validateTemplate(cmd); err != nil {
		return entities.DocumentTemplate{}, err
	}

	now := u.deps.Now()
	t := entities.DocumentTemplate{
		ID:           u.deps.NewID(),
		Name:         strings.TrimSpace(cmd.Name),
		Category:     cmd.Category,
		Content:      cmd.Content,
		Placeholders: documents.Extract(cmd.Content),
		Active:       cmd.Active == nil || *cmd.Active,
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, t)
}

func (u *DocumentTemplateUseCase) GetByID(ctx context.Context, id string) (entities.DocumentTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DocumentTemplate{}, ErrInvalidTemplateID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DocumentTemplate{}, err
	}
	if t.ID == "" {
		return entities.DocumentTemplate{}, ErrDocumentTemplateNotFound
	}
	return t, nil
}

func (u *DocumentTemplateUseCase) List(ctx context.Context, category string) ([]entities.DocumentTemplate, error) {
	c := entities.DocumentCategory(strings.ToLower(strings.TrimSpace(category)))
	if c != "" && !c.Valid() {
		return nil, ErrInvalidTemplatePayload
	}
	return u.repo.List(ctx, c)
}

func (u *DocumentTemplateUseCase) Update(ctx context.Context, id, actorID string, cmd DocumentTemplateCommand) (entities.DocumentTemplate, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.DocumentTemplate{}, ErrMissingActor
	}
	if err := validateTemplate(cmd); err != nil {
		return entities.DocumentTemplate{}, err
	}
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.DocumentTemplate{}, err
	}

	t.Name = strings.TrimSpace(cmd.Name)
	t.Category = cmd.Category
	t.Content = cmd.Content
	t.Placeholders = documents.Extract(cmd.Content)
	if cmd.Active != nil {
		t.Active = *cmd.Active
	}
	t.UpdatedAt = u.deps.Now()

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.DocumentTemplate{}, err
	}
	if updated.ID == "" {
		return entities.DocumentTemplate{}, ErrDocumentTemplateNotFound
	}
	return updated, nil
}

func (u *DocumentTemplateUseCase) Delete(ctx context.Context, id, actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, t.ID)
}

func (u *DocumentTemplateUseCase) Placeholders() []entities.Placeholder {
	return documents.Catalogue()
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/domain/workflow"
	"odonto_docs/internal/infrastructure/metrics"
	"odonto_docs/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const EventMessagePosted = "protesis.message_posted"

type ProsthesisCommand struct {
	Subject              entities.SubjectRefs
	ProsthesisType       string
	Material             string
	Teeth                []string
	Observations         string
	ExpectedCompletionAt *time.Time
	Note                 string
}

// IProsthesisUseCase exposes prosthesis tracking operations.
//
// Status changes follow the successor table:
//   - Prescrita => Enviada a Laboratorio | Cancelada
//   - Enviada a Laboratorio => Recibida de Laboratorio | Cancelada
//   - Recibida de Laboratorio => Prueba en Paciente | Cancelada
//   - Prueba en Paciente => Instalada | Ajustes en Laboratorio | Cancelada
//   - Ajustes en Laboratorio => Recibida de Laboratorio | Cancelada
//   - Instalada, Cancelada => (terminal)
type IProsthesisUseCase interface {
	Create(ctx context.Context, actorID string, cmd ProsthesisCommand) (*entities.Prosthesis, error)
	GetByID(ctx context.Context, id string) (*entities.Prosthesis, error)
	List(ctx context.Context, filter entities.WorkOrderFilter) ([]*entities.Prosthesis, int, error)
	Update(ctx context.Context, id, actorID string, cmd ProsthesisCommand) (*entities.Prosthesis, error)
	ChangeStatus(ctx context.Context, id, status, actorID, note string) (*entities.Prosthesis, error)
	AddAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (*entities.Prosthesis, []workflow.AttachmentRejection, error)
	RemoveAttachment(ctx context.Context, id, attachmentID, actorID string) (*entities.Prosthesis, error)
	PostMessage(ctx context.Context, id, actorID, content string, senderKind entities.SenderKind) (entities.CommunicationMessage, error)
	ListMessages(ctx context.Context, id string) ([]entities.CommunicationMessage, error)
}

type ProsthesisUseCase struct {
	core workOrderCore[entities.ProsthesisStatus, entities.Prosthesis, *entities.Prosthesis]
}

var _ IProsthesisUseCase = (*ProsthesisUseCase)(nil)

func NewProsthesisUseCase(repo interfaces.IProsthesisRepository, deps Deps) *ProsthesisUseCase {
	return &ProsthesisUseCase{core: newWorkOrderCore[entities.ProsthesisStatus, entities.Prosthesis](repo, workflow.Prostheses(), deps)}
}

func validateProsthesis(cmd ProsthesisCommand) error {
	if strings.TrimSpace(cmd.ProsthesisType) == "" {
		return fmt.Errorf("%w: prosthesis_type is required", ErrInvalidOrderPayload)
	}
	return nil
}

func applyProsthesis(p *entities.Prosthesis, cmd ProsthesisCommand) {
	p.ProsthesisType = strings.TrimSpace(cmd.ProsthesisType)
	p.Material = strings.TrimSpace(cmd.Material)
	p.Teeth = cmd.Teeth
	p.Observations = strings.TrimSpace(cmd.Observations)
	p.ExpectedCompletionAt = cmd.ExpectedCompletionAt
}

func (u *ProsthesisUseCase) Create(ctx context.Context, actorID string, cmd ProsthesisCommand) (*entities.Prosthesis, error) {
	if err := validateProsthesis(cmd); err != nil {
		return nil, err
	}
	p := &entities.Prosthesis{NotasComunicacion: []entities.CommunicationMessage{}}
	p.Subject = cmd.Subject
	applyProsthesis(p, cmd)
	return u.core.create(ctx, p, entities.ProsthesisStatusPrescrita, actorID, cmd.Note)
}

func (u *ProsthesisUseCase) GetByID(ctx context.Context, id string) (*entities.Prosthesis, error) {
	return u.core.get(ctx, id)
}

func (u *ProsthesisUseCase) List(ctx context.Context, filter entities.WorkOrderFilter) ([]*entities.Prosthesis, int, error) {
	return u.core.list(ctx, filter)
}

func (u *ProsthesisUseCase) Update(ctx context.Context, id, actorID string, cmd ProsthesisCommand) (*entities.Prosthesis, error) {
	if err := validateProsthesis(cmd); err != nil {
		return nil, err
	}
	return u.core.update(ctx, id, actorID, func(p *entities.Prosthesis) error {
		applyProsthesis(p, cmd)
		return nil
	})
}

func (u *ProsthesisUseCase) ChangeStatus(ctx context.Context, id, status, actorID, note string) (*entities.Prosthesis, error) {
	return u.core.changeStatus(ctx, id, status, actorID, note)
}

func (u *ProsthesisUseCase) AddAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (*entities.Prosthesis, []workflow.AttachmentRejection, error) {
	return u.core.addAttachments(ctx, id, actorID, files)
}

func (u *ProsthesisUseCase) RemoveAttachment(ctx context.Context, id, attachmentID, actorID string) (*entities.Prosthesis, error) {
	return u.core.removeAttachment(ctx, id, attachmentID, actorID)
}

func (u *ProsthesisUseCase) PostMessage(ctx context.Context, id, actorID, content string, senderKind entities.SenderKind) (entities.CommunicationMessage, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.CommunicationMessage{}, ErrMissingActor
	}
	p, err := u.core.get(ctx, id)
	if err != nil {
		return entities.CommunicationMessage{}, err
	}

	kind := entities.SenderKind(strings.ToLower(strings.TrimSpace(string(senderKind))))
	msg, err := workflow.PostMessage(p, u.core.deps.NewID(), content, kind, actorID, u.core.deps.Now())
	if err != nil {
		return entities.CommunicationMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	if _, err := u.core.repo.Update(ctx, p); err != nil {
		zap.S().Warnf("[protesis][usecase] post message failed id=%s err=%v", p.ID, err)
		return entities.CommunicationMessage{}, err
	}
	metrics.RecordMessage(string(kind))
	zap.S().Infof("[protesis][usecase] message posted id=%s sender_kind=%s author=%s", p.ID, kind, msg.AuthorID)
	u.core.publish(ctx, EventMessagePosted, &p.WorkOrder, msg.AuthorID, map[string]any{
		"message_id":  msg.ID,
		"sender_kind": string(kind),
	})
	return msg, nil
}

func (u *ProsthesisUseCase) ListMessages(ctx context.Context, id string) ([]entities.CommunicationMessage, error) {
	p, err := u.core.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.NotasComunicacion == nil {
		return []entities.CommunicationMessage{}, nil
	}
	return p.NotasComunicacion, nil
}

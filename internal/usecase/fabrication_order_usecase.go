package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/domain/workflow"
	"odonto_docs/internal/usecase/interfaces"
)

type FabricationOrderCommand struct {
	Subject              entities.SubjectRefs
	PieceType            string
	Specification        entities.FabricationSpec
	Notes                string
	ExpectedCompletionAt *time.Time
	Note                 string
}

// IFabricationOrderUseCase exposes fabrication order operations.
// Status changes are unconstrained.
type IFabricationOrderUseCase interface {
	Create(ctx context.Context, actorID string, cmd FabricationOrderCommand) (*entities.FabricationOrder, error)
	GetByID(ctx context.Context, id string) (*entities.FabricationOrder, error)
	List(ctx context.Context, filter entities.WorkOrderFilter) ([]*entities.FabricationOrder, int, error)
	Update(ctx context.Context, id, actorID string, cmd FabricationOrderCommand) (*entities.FabricationOrder, error)
	ChangeStatus(ctx context.Context, id, status, actorID, note string) (*entities.FabricationOrder, error)
	AddAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (*entities.FabricationOrder, []workflow.AttachmentRejection, error)
	RemoveAttachment(ctx context.Context, id, attachmentID, actorID string) (*entities.FabricationOrder, error)
}

type FabricationOrderUseCase struct {
	core workOrderCore[entities.FabricationStatus, entities.FabricationOrder, *entities.FabricationOrder]
}

var _ IFabricationOrderUseCase = (*FabricationOrderUseCase)(nil)

func NewFabricationOrderUseCase(repo interfaces.IFabricationOrderRepository, deps Deps) *FabricationOrderUseCase {
	return &FabricationOrderUseCase{core: newWorkOrderCore[entities.FabricationStatus, entities.FabricationOrder](repo, workflow.FabricationOrders(), deps)}
}

func validateFabrication(cmd FabricationOrderCommand) error {
	if strings.TrimSpace(cmd.PieceType) == "" {
		return fmt.Errorf("%w: piece_type is required", ErrInvalidOrderPayload)
	}
	if strings.TrimSpace(cmd.Specification.Material) == "" {
		return fmt.Errorf("%w: specification.material is required", ErrInvalidOrderPayload)
	}
	if cmd.Specification.CADStage != "" && !cmd.Specification.CADStage.Valid() {
		return fmt.Errorf("%w: unknown cad_stage %q", ErrInvalidOrderPayload, cmd.Specification.CADStage)
	}
	for k := range cmd.Specification.Extensions {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: empty extension key", ErrInvalidOrderPayload)
		}
	}
	return nil
}

func applyFabrication(o *entities.FabricationOrder, cmd FabricationOrderCommand) {
	o.PieceType = strings.TrimSpace(cmd.PieceType)
	o.Specification = cmd.Specification
	o.Specification.Material = strings.TrimSpace(o.Specification.Material)
	if o.Specification.CADStage == "" {
		o.Specification.CADStage = entities.CADStageNinguno
	}
	o.Notes = strings.TrimSpace(cmd.Notes)
	o.ExpectedCompletionAt = cmd.ExpectedCompletionAt
}

func (u *FabricationOrderUseCase) Create(ctx context.Context, actorID string, cmd FabricationOrderCommand) (*entities.FabricationOrder, error) {
	if err := validateFabrication(cmd); err != nil {
		return nil, err
	}
	o := &entities.FabricationOrder{}
	o.Subject = cmd.Subject
	applyFabrication(o, cmd)
	return u.core.create(ctx, o, entities.FabricationStatusPendiente, actorID, cmd.Note)
}

func (u *FabricationOrderUseCase) GetByID(ctx context.Context, id string) (*entities.FabricationOrder, error) {
	return u.core.get(ctx, id)
}

func (u *FabricationOrderUseCase) List(ctx context.Context, filter entities.WorkOrderFilter) ([]*entities.FabricationOrder, int, error) {
	return u.core.list(ctx, filter)
}

func (u *FabricationOrderUseCase) Update(ctx context.Context, id, actorID string, cmd FabricationOrderCommand) (*entities.FabricationOrder, error) {
	if err := validateFabrication(cmd); err != nil {
		return nil, err
	}
	return u.core.update(ctx, id, actorID, func(o *entities.FabricationOrder) error {
		applyFabrication(o, cmd)
		return nil
	})
}

func (u *FabricationOrderUseCase) ChangeStatus(ctx context.Context, id, status, actorID, note string) (*entities.FabricationOrder, error) {
	return u.core.changeStatus(ctx, id, status, actorID, note)
}

func (u *FabricationOrderUseCase) AddAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (*entities.FabricationOrder, []workflow.AttachmentRejection, error) {
	return u.core.addAttachments(ctx, id, actorID, files)
}

func (u *FabricationOrderUseCase) RemoveAttachment(ctx context.Context, id, attachmentID, actorID string) (*entities.FabricationOrder, error) {
	return u.core.removeAttachment(ctx, id, attachmentID, actorID)
}

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

// LabOrderCommand carries the editable fields of a lab order.
type LabOrderCommand struct {
	Subject              entities.SubjectRefs
	WorkType             string
	Teeth                []string
	Shade                string
	Instructions         string
	Priority             entities.LabOrderPriority
	ExpectedCompletionAt *time.Time
	InitialStatus        string
	Note                 string
}

// ILabOrderUseCase exposes lab order operations.
//
// Status changes are unconstrained: any status may follow any other.
type ILabOrderUseCase interface {
	Create(ctx context.Context, actorID string, cmd LabOrderCommand) (*entities.LabOrder, error)
	GetByID(ctx context.Context, id string) (*entities.LabOrder, error)
	List(ctx context.Context, filter entities.WorkOrderFilter) ([]*entities.LabOrder, int, error)
	Update(ctx context.Context, id, actorID string, cmd LabOrderCommand) (*entities.LabOrder, error)
	ChangeStatus(ctx context.Context, id, status, actorID, note string) (*entities.LabOrder, error)
	AddAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (*entities.LabOrder, []workflow.AttachmentRejection, error)
	RemoveAttachment(ctx context.Context, id, attachmentID, actorID string) (*entities.LabOrder, error)
	Delete(ctx context.Context, id, actorID string) error
}

type LabOrderUseCase struct {
	core workOrderCore[entities.LabOrderStatus, entities.LabOrder, *entities.LabOrder]
}

var _ ILabOrderUseCase = (*LabOrderUseCase)(nil)

func NewLabOrderUseCase(repo interfaces.ILabOrderRepository, deps Deps) *LabOrderUseCase {
	return &LabOrderUseCase{core: newWorkOrderCore[entities.LabOrderStatus, entities.LabOrder](repo, workflow.LabOrders(), deps)}
}

func validateLabOrder(cmd LabOrderCommand) error {
	if strings.TrimSpace(cmd.WorkType) == "" {
		return fmt.Errorf("%w: work_type is required", ErrInvalidOrderPayload)
	}
	switch cmd.Priority {
	case "", entities.LabOrderPriorityNormal, entities.LabOrderPriorityUrgente:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidOrderPayload, cmd.Priority)
	}
	return nil
}

func applyLabOrder(o *entities.LabOrder, cmd LabOrderCommand) {
	o.Subject = cmd.Subject
	o.WorkType = strings.TrimSpace(cmd.WorkType)
	o.Teeth = cmd.Teeth
	o.Shade = strings.TrimSpace(cmd.Shade)
	o.Instructions = strings.TrimSpace(cmd.Instructions)
	o.Priority = cmd.Priority
	if o.Priority == "" {
		o.Priority = entities.LabOrderPriorityNormal
	}
	o.ExpectedCompletionAt = cmd.ExpectedCompletionAt
}

func (u *LabOrderUseCase) Create(ctx context.Context, actorID string, cmd LabOrderCommand) (*entities.LabOrder, error) {
	if err := validateLabOrder(cmd); err != nil {
		return nil, err
	}
	initial := entities.LabOrderStatusBorrador
	if strings.TrimSpace(cmd.InitialStatus) != "" {
		s, err := u.core.machine.Parse(cmd.InitialStatus)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		initial = s
	}

	o := &entities.LabOrder{}
	applyLabOrder(o, cmd)
	return u.core.create(ctx, o, initial, actorID, cmd.Note)
}

func (u *LabOrderUseCase) GetByID(ctx context.Context, id string) (*entities.LabOrder, error) {
	return u.core.get(ctx, id)
}

func (u *LabOrderUseCase) List(ctx context.Context, filter entities.WorkOrderFilter) ([]*entities.LabOrder, int, error) {
	return u.core.list(ctx, filter)
}

func (u *LabOrderUseCase) Update(ctx context.Context, id, actorID string, cmd LabOrderCommand) (*entities.LabOrder, error) {
	if err := validateLabOrder(cmd); err != nil {
		return nil, err
	}
	return u.core.update(ctx, id, actorID, func(o *entities.LabOrder) error {
		subject := o.Subject
		applyLabOrder(o, cmd)
		// Ownership links are fixed at creation.
		o.Subject = subject
		return nil
	})
}

func (u *LabOrderUseCase) ChangeStatus(ctx context.Context, id, status, actorID, note string) (*entities.LabOrder, error) {
	return u.core.changeStatus(ctx, id, status, actorID, note)
}

func (u *LabOrderUseCase) AddAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (*entities.LabOrder, []workflow.AttachmentRejection, error) {
	return u.core.addAttachments(ctx, id, actorID, files)
}

func (u *LabOrderUseCase) RemoveAttachment(ctx context.Context, id, attachmentID, actorID string) (*entities.LabOrder, error) {
	return u.core.removeAttachment(ctx, id, attachmentID, actorID)
}

func (u *LabOrderUseCase) Delete(ctx context.Context, id, actorID string) error {
	return u.core.remove(ctx, id, actorID)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/domain/workflow"
	"odonto_docs/internal/infrastructure/metrics"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventWorkOrderCreated       = "work_order.created"
	EventWorkOrderStatusChanged = "work_order.status_changed"
	EventAttachmentsAdded       = "work_order.attachments_added"
	EventAttachmentRemoved      = "work_order.attachment_removed"
)

type orderPtr[S ~string, E any] interface {
	*E
	Base() *entities.WorkOrder[S]
}

// Deps groups collaborators shared by the work order use cases.
type Deps struct {
	Storage            interfaces.IFileStorage
	Events             interfaces.IEventPublisher
	MaxAttachmentBytes int64
	Now                func() time.Time
	NewID              func() string
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.MaxAttachmentBytes <= 0 {
		d.MaxAttachmentBytes = workflow.DefaultMaxAttachmentBytes
	}
	return d
}

// workOrderCore implements the operations every work order kind shares: loading,
// status changes, attachments and deletion. Kinds differ only in their state machine.
type workOrderCore[S ~string, E any, P orderPtr[S, E]] struct {
	repo    interfaces.IWorkOrderRepository[P]
	machine *workflow.StateMachine[S]
	deps    Deps
}

func newWorkOrderCore[S ~string, E any, P orderPtr[S, E]](repo interfaces.IWorkOrderRepository[P], machine *workflow.StateMachine[S], deps Deps) workOrderCore[S, E, P] {
	return workOrderCore[S, E, P]{repo: repo, machine: machine, deps: deps.withDefaults()}
}

func (c workOrderCore[S, E, P]) kind() string { return c.machine.Kind() }

func (c workOrderCore[S, E, P]) get(ctx context.Context, id string) (P, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	order, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrWorkOrderNotFound
	}
	return order, nil
}

func (c workOrderCore[S, E, P]) list(ctx context.Context, f entities.WorkOrderFilter) ([]P, int, error) {
	f.PatientID = strings.TrimSpace(f.PatientID)
	f.LabID = strings.TrimSpace(f.LabID)
	if strings.TrimSpace(f.Status) != "" {
		s, err := c.machine.Parse(f.Status)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		f.Status = string(s)
	}
	return c.repo.List(ctx, f)
}

// create seeds the history with the initial status and persists the order.
func (c workOrderCore[S, E, P]) create(ctx context.Context, order P, initial S, actorID, note string) (P, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrMissingActor
	}
	base := order.Base()
	if strings.TrimSpace(base.Subject.Patient.ID) == "" {
		return nil, fmt.Errorf("%w: patient is required", ErrInvalidOrderPayload)
	}

	now := c.deps.Now()
	base.ID = c.deps.NewID()
	base.CreatedAt = now
	base.History = nil
	if err := c.machine.Seed(base, initial, actorID, note, now); err != nil {
		if errors.Is(err, workflow.ErrUnknownState) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		return nil, err
	}

	created, err := c.repo.Create(ctx, order)
	if err != nil {
		zap.S().Errorf("[%s][usecase] create failed err=%v", c.kind(), err)
		return nil, err
	}
	zap.S().Infof("[%s][usecase] created id=%s status=%s actor=%s", c.kind(), base.ID, base.CurrentState, actorID)
	c.publish(ctx, EventWorkOrderCreated, base, actorID, map[string]any{"status": string(base.CurrentState)})
	return created, nil
}

// update applies mutate to a fresh copy and stores it. Status, history and
// attachments are not reachable through this path.
func (c workOrderCore[S, E, P]) update(ctx context.Context, id, actorID string, mutate func(P) error) (P, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, ErrMissingActor
	}
	order, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}

	base := order.Base()
	state, history, attachments := base.CurrentState, base.History, base.Attachments
	if err := mutate(order); err != nil {
		return nil, err
	}
	base.CurrentState, base.History, base.Attachments = state, history, attachments
	base.UpdatedAt = c.deps.Now()

	return c.repo.Update(ctx, order)
}

// changeStatus validates and records a transition. Rejected transitions are
// never persisted.
func (c workOrderCore[S, E, P]) changeStatus(ctx context.Context, id, target, actorID, note string) (P, error) {
	to, err := c.machine.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	order, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}

	base := order.Base()
	from := base.CurrentState
	if err := c.machine.Apply(base, to, actorID, note, c.deps.Now()); err != nil {
		metrics.RecordTransition(c.kind(), metrics.OutcomeRejected)
		zap.S().Infof("[%s][usecase] transition rejected id=%s from=%s to=%s err=%v", c.kind(), base.ID, from, to, err)
		return nil, err
	}

	updated, err := c.repo.Update(ctx, order)
	if err != nil {
		metrics.RecordTransition(c.kind(), metrics.OutcomeFailed)
		zap.S().Warnf("[%s][usecase] transition persist failed id=%s from=%s to=%s err=%v", c.kind(), base.ID, from, to, err)
		return nil, err
	}
	metrics.RecordTransition(c.kind(), metrics.OutcomeAccepted)
	zap.S().Infof("[%s][usecase] transition id=%s from=%s to=%s actor=%s", c.kind(), base.ID, from, to, actorID)

	c.publish(ctx, EventWorkOrderStatusChanged, base, actorID, map[string]any{
		"from": string(from),
		"to":   string(to),
		"note": strings.TrimSpace(note),
	})
	return updated, nil
}

// addAttachments stores every file that passes the size check. Files that fail
// validation or upload are reported individually; the rest are kept.
func (c workOrderCore[S, E, P]) addAttachments(ctx context.Context, id, actorID string, files []workflow.FileUpload) (P, []workflow.AttachmentRejection, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, nil, ErrMissingActor
	}
	if len(files) == 0 {
		return nil, nil, ErrNoFiles
	}
	if c.deps.Storage == nil {
		return nil, nil, ErrStorageNotReady
	}
	order, err := c.get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	base := order.Base()

	accepted, rejected := workflow.Partition(files, c.deps.MaxAttachmentBytes)
	var stored []entities.Attachment
	for _, f := range accepted {
		att, err := c.upload(ctx, base.ID, actorID, f)
		if err != nil {
			zap.S().Warnf("[%s][usecase] attachment upload failed id=%s name=%s err=%v", c.kind(), base.ID, f.Name, err)
			rejected = append(rejected, workflow.AttachmentRejection{Name: f.Name, Reason: "storage error"})
			continue
		}
		stored = append(stored, att)
	}
	metrics.RecordAttachments(c.kind(), metrics.OutcomeRejected, len(rejected))

	if len(stored) == 0 {
		return order, rejected, nil
	}

	workflow.Attach(base, stored...)
	base.UpdatedAt = c.deps.Now()
	updated, err := c.repo.Update(ctx, order)
	if err != nil {
		for _, a := range stored {
			c.deleteBlob(ctx, base.ID, a.StorageKey)
		}
		return nil, nil, err
	}
	metrics.RecordAttachments(c.kind(), metrics.OutcomeAccepted, len(stored))
	zap.S().Infof("[%s][usecase] attachments added id=%s stored=%d rejected=%d", c.kind(), base.ID, len(stored), len(rejected))

	names := make([]string, 0, len(stored))
	for _, a := range stored {
		names = append(names, a.Name)
	}
	c.publish(ctx, EventAttachmentsAdded, base, actorID, map[string]any{"files": names})
	return updated, rejected, nil
}

func (c workOrderCore[S, E, P]) upload(ctx context.Context, orderID, actorID string, f workflow.FileUpload) (entities.Attachment, error) {
	if f.Open == nil {
		return entities.Attachment{}, errors.New("file has no content")
	}
	body, err := f.Open()
	if err != nil {
		return entities.Attachment{}, err
	}
	defer body.Close()

	attID := c.deps.NewID()
	key := path.Join(c.kind(), orderID, attID, path.Base(f.Name))
	url, err := c.deps.Storage.Upload(ctx, key, f.ContentType, f.Size, body)
	if err != nil {
		return entities.Attachment{}, err
	}
	return entities.Attachment{
		ID:          attID,
		Name:        f.Name,
		URL:         url,
		StorageKey:  key,
		ContentType: f.ContentType,
		SizeBytes:   f.Size,
		UploadedAt:  c.deps.Now(),
		UploadedBy:  actorID,
	}, nil
}

// removeAttachment drops the attachment record and its blob. An unknown
// attachment id leaves the order untouched and is not an error.
func (c workOrderCore[S, E, P]) removeAttachment(ctx context.Context, id, attachmentID, actorID string) (P, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrMissingActor
	}
	order, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}
	base := order.Base()

	removed, ok := workflow.Remove(base, strings.TrimSpace(attachmentID))
	if !ok {
		zap.S().Debugf("[%s][usecase] attachment not found id=%s attachment_id=%s", c.kind(), base.ID, attachmentID)
		return order, nil
	}
	base.UpdatedAt = c.deps.Now()
	updated, err := c.repo.Update(ctx, order)
	if err != nil {
		return nil, err
	}
	c.deleteBlob(ctx, base.ID, removed.StorageKey)
	c.publish(ctx, EventAttachmentRemoved, base, actorID, map[string]any{"attachment_id": removed.ID})
	return updated, nil
}

func (c workOrderCore[S, E, P]) remove(ctx context.Context, id, actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	order, err := c.get(ctx, id)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, order.Base().ID); err != nil {
		return err
	}
	zap.S().Infof("[%s][usecase] deleted id=%s actor=%s", c.kind(), order.Base().ID, actorID)
	return nil
}

func (c workOrderCore[S, E, P]) deleteBlob(ctx context.Context, orderID, key string) {
	if key == "" || c.deps.Storage == nil {
		return
	}
	if err := c.deps.Storage.Delete(ctx, key); err != nil {
		zap.S().Warnf("[%s][usecase] blob delete failed id=%s key=%s err=%v", c.kind(), orderID, key, err)
	}
}

// publish never fails the caller; the write already happened.
func (c workOrderCore[S, E, P]) publish(ctx context.Context, eventType string, base *entities.WorkOrder[S], actorID string, data map[string]any) {
	if c.deps.Events == nil {
		return
	}
	err := c.deps.Events.Publish(ctx, interfaces.DomainEvent{
		Type:        eventType,
		AggregateID: base.ID,
		Kind:        c.kind(),
		ActorID:     actorID,
		OccurredAt:  c.deps.Now(),
		Data:        data,
	})
	if err != nil {
		zap.S().Warnf("[%s][usecase] publish %s failed id=%s err=%v", c.kind(), eventType, base.ID, err)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrLabInvoiceNotFound       = errors.New("lab invoice not found")
	ErrInvalidLabInvoiceID      = errors.New("invalid lab invoice id")
	ErrInvalidLabInvoicePayload = errors.New("invalid lab invoice payload")
	ErrInvalidPaymentPayload    = errors.New("invalid payment payload")
	ErrLabInvoiceNotPending     = errors.New("lab invoice is not pending")
	ErrLabInvoicePaid           = errors.New("lab invoice already paid")
	ErrPaymentGatewayNotReady   = errors.New("payment gateway not configured")
	ErrPaymentNotApproved       = errors.New("payment not approved")
	ErrPaymentInProgress        = errors.New("payment already in progress")
)

// paymentLease bounds how long a claimed invoice stays locked when the process
// dies between the claim and the settle write.
const paymentLease = 2 * time.Minute

type LabInvoiceCommand struct {
	Number   string
	Lab      entities.Reference
	IssuedAt *time.Time
	DueAt    *time.Time
	Items    []entities.LabInvoiceItem
}

// ILabInvoiceUseCase manages invoices issued by laboratories.
//
// Requested behavior:
//   - the total is always derived from the items
//   - only pending invoices can be edited, paid or cancelled
//   - paid invoices are never deleted
//   - an invoice with a charge in flight cannot be edited, paid again, cancelled or deleted
type ILabInvoiceUseCase interface {
	Create(ctx context.Context, actorID string, cmd LabInvoiceCommand) (entities.LabInvoice, error)
	GetByID(ctx context.Context, id string) (entities.LabInvoice, error)
	List(ctx context.Context, filter interfaces.LabInvoiceFilter) ([]entities.LabInvoice, int, error)
	Update(ctx context.Context, id, actorID string, cmd LabInvoiceCommand) (entities.LabInvoice, error)
	Delete(ctx context.Context, id, actorID string) error
	Pay(ctx context.Context, id, actorID string, payload json.RawMessage) (entities.LabInvoice, error)
	Cancel(ctx context.Context, id, actorID string) (entities.LabInvoice, error)
}

type LabInvoiceUseCase struct {
	repo    interfaces.ILabInvoiceRepository
	gateway interfaces.IPaymentGateway
	deps    Deps
}

var _ ILabInvoiceUseCase = (*LabInvoiceUseCase)(nil)

func NewLabInvoiceUseCase(repo interfaces.ILabInvoiceRepository, gateway interfaces.IPaymentGateway, deps Deps) *LabInvoiceUseCase {
	return &LabInvoiceUseCase{repo: repo, gateway: gateway, deps: deps.withDefaults()}
}

func validateInvoice(cmd LabInvoiceCommand) error {
	if strings.TrimSpace(cmd.Number) == "" || strings.TrimSpace(cmd.Lab.ID) == "" {
		return ErrInvalidLabInvoicePayload
	}
	if len(cmd.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidLabInvoicePayload)
	}
	for i, it := range cmd.Items {
		if strings.TrimSpace(it.Description) == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d", ErrInvalidLabInvoicePayload, i)
		}
	}
	return nil
}

func (u *LabInvoiceUseCase) Create(ctx context.Context, actorID string, cmd LabInvoiceCommand) (entities.LabInvoice, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.LabInvoice{}, ErrMissingActor
	}
	if err := validateInvoice(cmd); err != nil {
		return entities.LabInvoice{}, err
	}

	now := u.deps.Now()
	inv := entities.LabInvoice{
		ID:        u.deps.NewID(),
		Number:    strings.TrimSpace(cmd.Number),
		Lab:       cmd.Lab,
		IssuedAt:  now,
		DueAt:     cmd.DueAt,
		Items:     cmd.Items,
		Status:    entities.LabInvoiceStatusPendiente,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cmd.IssuedAt != nil {
		inv.IssuedAt = cmd.IssuedAt.UTC()
	}
	inv.ComputeTotal()

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		zap.S().Errorf("[lab-invoice][usecase] create failed number=%s err=%v", inv.Number, err)
		return entities.LabInvoice{}, err
	}
	zap.S().Infof("[lab-invoice][usecase] created id=%s lab_id=%s total=%.2f", created.ID, inv.Lab.ID, inv.Total)
	return created, nil
}

func (u *LabInvoiceUseCase) GetByID(ctx context.Context, id string) (entities.LabInvoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LabInvoice{}, ErrInvalidLabInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	if inv.ID == "" {
		return entities.LabInvoice{}, ErrLabInvoiceNotFound
	}
	return inv, nil
}

func (u *LabInvoiceUseCase) List(ctx context.Context, filter interfaces.LabInvoiceFilter) ([]entities.LabInvoice, int, error) {
	filter.LabID = strings.TrimSpace(filter.LabID)
	switch filter.Status {
	case "", entities.LabInvoiceStatusPendiente, entities.LabInvoiceStatusPagada, entities.LabInvoiceStatusAnulada:
	default:
		return nil, 0, ErrInvalidStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *LabInvoiceUseCase) Update(ctx context.Context, id, actorID string, cmd LabInvoiceCommand) (entities.LabInvoice, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.LabInvoice{}, ErrMissingActor
	}
	if err := validateInvoice(cmd); err != nil {
		return entities.LabInvoice{}, err
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	if inv.Status != entities.LabInvoiceStatusPendiente {
		return entities.LabInvoice{}, ErrLabInvoiceNotPending
	}
	if inv.PaymentInProgress(u.deps.Now(), paymentLease) {
		return entities.LabInvoice{}, ErrPaymentInProgress
	}

	inv.Number = strings.TrimSpace(cmd.Number)
	inv.Lab = cmd.Lab
	if cmd.IssuedAt != nil {
		inv.IssuedAt = cmd.IssuedAt.UTC()
	}
	inv.DueAt = cmd.DueAt
	inv.Items = cmd.Items
	inv.ComputeTotal()
	inv.UpdatedAt = u.deps.Now()

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	if updated.ID == "" {
		return entities.LabInvoice{}, ErrLabInvoiceNotFound
	}
	return updated, nil
}

func (u *LabInvoiceUseCase) Delete(ctx context.Context, id, actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.Status == entities.LabInvoiceStatusPagada {
		return ErrLabInvoicePaid
	}
	if inv.PaymentInProgress(u.deps.Now(), paymentLease) {
		return ErrPaymentInProgress
	}
	if err := u.repo.Delete(ctx, inv.ID); err != nil {
		return err
	}
	zap.S().Infof("[lab-invoice][usecase] deleted id=%s actor=%s", inv.ID, actorID)
	return nil
}

// Pay charges the invoice total through the gateway. The caller payload carries
// the payment method and payer; the amount always comes from the stored invoice.
//
// The invoice is claimed with a versioned write before the gateway is called,
// so of two concurrent payers only one reaches the provider.
func (u *LabInvoiceUseCase) Pay(ctx context.Context, id, actorID string, payload json.RawMessage) (entities.LabInvoice, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.LabInvoice{}, ErrMissingActor
	}
	if u.gateway == nil {
		return entities.LabInvoice{}, ErrPaymentGatewayNotReady
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		return entities.LabInvoice{}, ErrInvalidPaymentPayload
	}

	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	switch inv.Status {
	case entities.LabInvoiceStatusPagada:
		return entities.LabInvoice{}, ErrLabInvoicePaid
	case entities.LabInvoiceStatusAnulada:
		return entities.LabInvoice{}, ErrLabInvoiceNotPending
	}
	startedAt := u.deps.Now()
	if inv.PaymentInProgress(startedAt, paymentLease) {
		return entities.LabInvoice{}, ErrPaymentInProgress
	}

	inv.PaymentStartedAt = &startedAt
	inv.UpdatedAt = startedAt
	claimed, err := u.repo.Update(ctx, inv)
	if err != nil {
		zap.S().Warnf("[lab-invoice][usecase] payment claim failed id=%s err=%v", inv.ID, err)
		return entities.LabInvoice{}, err
	}
	if claimed.ID == "" {
		return entities.LabInvoice{}, ErrLabInvoiceNotFound
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = claimed.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Factura laboratorio %s", claimed.Number)
	}
	req["transaction_amount"] = claimed.Total
	body, err := json.Marshal(req)
	if err != nil {
		u.releasePayment(ctx, claimed)
		return entities.LabInvoice{}, err
	}

	zap.S().Infof("[lab-invoice][usecase] calling payment gateway id=%s amount=%.2f", claimed.ID, claimed.Total)
	paymentID, status, raw, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		zap.S().Warnf("[lab-invoice][usecase] payment gateway failed id=%s err=%v", claimed.ID, err)
		u.releasePayment(ctx, claimed)
		return entities.LabInvoice{}, err
	}
	if status != "approved" {
		zap.S().Infof("[lab-invoice][usecase] payment not approved id=%s provider_status=%s", claimed.ID, status)
		u.releasePayment(ctx, claimed)
		return entities.LabInvoice{}, fmt.Errorf("%w: %s", ErrPaymentNotApproved, status)
	}

	now := u.deps.Now()
	claimed.Status = entities.LabInvoiceStatusPagada
	claimed.PaymentID = paymentID
	claimed.PaidAt = &now
	claimed.PaymentPayloadRaw = raw
	claimed.PaymentStartedAt = nil
	claimed.UpdatedAt = now

	updated, err := u.repo.Update(ctx, claimed)
	if err != nil {
		zap.S().Errorf("[lab-invoice][usecase] persist payment failed id=%s payment_id=%s err=%v", claimed.ID, paymentID, err)
		return entities.LabInvoice{}, err
	}
	if updated.ID == "" {
		zap.S().Errorf("[lab-invoice][usecase] invoice vanished after charge id=%s payment_id=%s", claimed.ID, paymentID)
		return entities.LabInvoice{}, ErrLabInvoiceNotFound
	}
	zap.S().Infof("[lab-invoice][usecase] paid id=%s payment_id=%s actor=%s", updated.ID, paymentID, actorID)
	return updated, nil
}

// releasePayment clears the claim so the invoice can be paid again. A failure
// only delays the retry until the lease expires.
func (u *LabInvoiceUseCase) releasePayment(ctx context.Context, inv entities.LabInvoice) {
	inv.PaymentStartedAt = nil
	inv.UpdatedAt = u.deps.Now()
	if _, err := u.repo.Update(ctx, inv); err != nil {
		zap.S().Warnf("[lab-invoice][usecase] payment release failed id=%s err=%v", inv.ID, err)
	}
}

func (u *LabInvoiceUseCase) Cancel(ctx context.Context, id, actorID string) (entities.LabInvoice, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.LabInvoice{}, ErrMissingActor
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	switch inv.Status {
	case entities.LabInvoiceStatusPagada:
		return entities.LabInvoice{}, ErrLabInvoicePaid
	case entities.LabInvoiceStatusAnulada:
		return entities.LabInvoice{}, ErrLabInvoiceNotPending
	}
	now := u.deps.Now()
	if inv.PaymentInProgress(now, paymentLease) {
		return entities.LabInvoice{}, ErrPaymentInProgress
	}

	inv.Status = entities.LabInvoiceStatusAnulada
	inv.UpdatedAt = now
	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	if updated.ID == "" {
		return entities.LabInvoice{}, ErrLabInvoiceNotFound
	}
	zap.S().Infof("[lab-invoice][usecase] cancelled id=%s actor=%s", inv.ID, actorID)
	return updated, nil
}

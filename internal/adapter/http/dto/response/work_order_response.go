package response

import (
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/domain/workflow"
)

var (
	labOrderMachine    = workflow.LabOrders()
	prosthesisMachine  = workflow.Prostheses()
	fabricationMachine = workflow.FabricationOrders()
)

// WorkOrderView is the status-tracked part of every order response.
// AllowedTransitions and Terminal let clients render only valid actions.
type WorkOrderView[S ~string] struct {
	ID                   string                              `json:"id"`
	Subject              entities.SubjectRefs                `json:"subject"`
	Status               S                                   `json:"status"`
	History              []entities.StateTransitionRecord[S] `json:"history"`
	Attachments          []entities.Attachment               `json:"attachments"`
	AllowedTransitions   []S                                 `json:"allowed_transitions"`
	Terminal             bool                                `json:"terminal"`
	CreatedAt            time.Time                           `json:"created_at"`
	UpdatedAt            time.Time                           `json:"updated_at"`
	ExpectedCompletionAt *time.Time                          `json:"expected_completion_at,omitempty"`
	ActualCompletionAt   *time.Time                          `json:"actual_completion_at,omitempty"`
	Version              int64                               `json:"version"`
}

func fromWorkOrder[S ~string](w *entities.WorkOrder[S], m *workflow.StateMachine[S]) WorkOrderView[S] {
	history := w.History
	if history == nil {
		history = []entities.StateTransitionRecord[S]{}
	}
	attachments := w.Attachments
	if attachments == nil {
		attachments = []entities.Attachment{}
	}
	return WorkOrderView[S]{
		ID:                   w.ID,
		Subject:              w.Subject,
		Status:               w.CurrentState,
		History:              history,
		Attachments:          attachments,
		AllowedTransitions:   m.AllowedSuccessors(w.CurrentState),
		Terminal:             m.IsTerminal(w.CurrentState),
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
		ExpectedCompletionAt: w.ExpectedCompletionAt,
		ActualCompletionAt:   w.ActualCompletionAt,
		Version:              w.Version,
	}
}

type LabOrderResponse struct {
	WorkOrderView[entities.LabOrderStatus]

	WorkType     string                    `json:"work_type"`
	Teeth        []string                  `json:"teeth,omitempty"`
	Shade        string                    `json:"shade,omitempty"`
	Instructions string                    `json:"instructions,omitempty"`
	Priority     entities.LabOrderPriority `json:"priority"`
}

func FromLabOrder(o *entities.LabOrder) LabOrderResponse {
	return LabOrderResponse{
		WorkOrderView: fromWorkOrder(&o.WorkOrder, labOrderMachine),
		WorkType:      o.WorkType,
		Teeth:         o.Teeth,
		Shade:         o.Shade,
		Instructions:  o.Instructions,
		Priority:      o.Priority,
	}
}

type ProsthesisResponse struct {
	WorkOrderView[entities.ProsthesisStatus]

	ProsthesisType    string                          `json:"prosthesis_type"`
	Material          string                          `json:"material,omitempty"`
	Teeth             []string                        `json:"teeth,omitempty"`
	Observations      string                          `json:"observations,omitempty"`
	NotasComunicacion []entities.CommunicationMessage `json:"notas_comunicacion"`
}

func FromProsthesis(p *entities.Prosthesis) ProsthesisResponse {
	notes := p.NotasComunicacion
	if notes == nil {
		notes = []entities.CommunicationMessage{}
	}
	return ProsthesisResponse{
		WorkOrderView:     fromWorkOrder(&p.WorkOrder, prosthesisMachine),
		ProsthesisType:    p.ProsthesisType,
		Material:          p.Material,
		Teeth:             p.Teeth,
		Observations:      p.Observations,
		NotasComunicacion: notes,
	}
}

type FabricationOrderResponse struct {
	WorkOrderView[entities.FabricationStatus]

	PieceType     string                   `json:"piece_type"`
	Specification entities.FabricationSpec `json:"specification"`
	Notes         string                   `json:"notes,omitempty"`
}

func FromFabricationOrder(o *entities.FabricationOrder) FabricationOrderResponse {
	return FabricationOrderResponse{
		WorkOrderView: fromWorkOrder(&o.WorkOrder, fabricationMachine),
		PieceType:     o.PieceType,
		Specification: o.Specification,
		Notes:         o.Notes,
	}
}

// AttachmentsResponse reports the order after an upload batch plus the files
// that were not stored.
type AttachmentsResponse[T any] struct {
	Order    T                              `json:"order"`
	Rejected []workflow.AttachmentRejection `json:"rejected"`
}

func NewAttachmentsResponse[T any](order T, rejected []workflow.AttachmentRejection) AttachmentsResponse[T] {
	if rejected == nil {
		rejected = []workflow.AttachmentRejection{}
	}
	return AttachmentsResponse[T]{Order: order, Rejected: rejected}
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewListResponse maps items with fn.
func NewListResponse[E, T any](items []E, total, page, limit int, fn func(E) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return ListResponse[T]{Items: out, Total: total, Page: page, Limit: limit}
}

package request

import (
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"
)

type ReferenceRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r ReferenceRequest) ToEntity() entities.Reference {
	return entities.Reference{ID: strings.TrimSpace(r.ID), Name: strings.TrimSpace(r.Name)}
}

// SubjectRequest carries the ownership links of a new work order.
type SubjectRequest struct {
	Patient      ReferenceRequest  `json:"patient"`
	Professional ReferenceRequest  `json:"professional"`
	Lab          ReferenceRequest  `json:"lab"`
	Treatment    *ReferenceRequest `json:"treatment"`
}

func (r SubjectRequest) ToEntity() entities.SubjectRefs {
	out := entities.SubjectRefs{
		Patient:      r.Patient.ToEntity(),
		Professional: r.Professional.ToEntity(),
		Lab:          r.Lab.ToEntity(),
	}
	if r.Treatment != nil && strings.TrimSpace(r.Treatment.ID) != "" {
		t := r.Treatment.ToEntity()
		out.Treatment = &t
	}
	return out
}

// StatusChangeRequest is the body of the /estado routes. Both `status` and
// `estado` are accepted.
type StatusChangeRequest struct {
	Status string `json:"status"`
	Estado string `json:"estado"`
	Note   string `json:"note"`
	Nota   string `json:"nota"`
}

func (r StatusChangeRequest) ResolveStatus() string {
	if v := strings.TrimSpace(r.Status); v != "" {
		return v
	}
	return strings.TrimSpace(r.Estado)
}

func (r StatusChangeRequest) ResolveNote() string {
	if v := strings.TrimSpace(r.Note); v != "" {
		return v
	}
	return strings.TrimSpace(r.Nota)
}

// MessageRequest is the body of POST /protesis/:id/notas.
type MessageRequest struct {
	Content    string `json:"content" binding:"required"`
	SenderKind string `json:"sender_kind" binding:"required"`
}

type LabOrderRequest struct {
	Subject              SubjectRequest `json:"subject"`
	WorkType             string         `json:"work_type" binding:"required"`
	Teeth                []string       `json:"teeth"`
	Shade                string         `json:"shade"`
	Instructions         string         `json:"instructions"`
	Priority             string         `json:"priority"`
	ExpectedCompletionAt *time.Time     `json:"expected_completion_at"`
	Status               string         `json:"status"`
	Note                 string         `json:"note"`
}

type ProsthesisRequest struct {
	Subject              SubjectRequest `json:"subject"`
	ProsthesisType       string         `json:"prosthesis_type" binding:"required"`
	Material             string         `json:"material"`
	Teeth                []string       `json:"teeth"`
	Observations         string         `json:"observations"`
	ExpectedCompletionAt *time.Time     `json:"expected_completion_at"`
	Note                 string         `json:"note"`
}

type FabricationSpecRequest struct {
	Material   string            `json:"material"`
	Color      string            `json:"color"`
	CADStage   string            `json:"cad_stage"`
	Extensions map[string]string `json:"extensions"`
}

type FabricationOrderRequest struct {
	Subject              SubjectRequest         `json:"subject"`
	PieceType            string                 `json:"piece_type" binding:"required"`
	Specification        FabricationSpecRequest `json:"specification"`
	Notes                string                 `json:"notes"`
	ExpectedCompletionAt *time.Time             `json:"expected_completion_at"`
	Note                 string                 `json:"note"`
}

func (r FabricationSpecRequest) ToEntity() entities.FabricationSpec {
	return entities.FabricationSpec{
		Material:   r.Material,
		Color:      strings.TrimSpace(r.Color),
		CADStage:   entities.CADStage(strings.ToLower(strings.TrimSpace(r.CADStage))),
		Extensions: r.Extensions,
	}
}

package entities

import "time"

type ProsthesisStatus string

const (
	ProsthesisStatusPrescrita           ProsthesisStatus = "Prescrita"
	ProsthesisStatusEnviadaLaboratorio  ProsthesisStatus = "Enviada a Laboratorio"
	ProsthesisStatusRecibidaLaboratorio ProsthesisStatus = "Recibida de Laboratorio"
	ProsthesisStatusPruebaPaciente      ProsthesisStatus = "Prueba en Paciente"
	ProsthesisStatusAjustesLaboratorio  ProsthesisStatus = "Ajustes en Laboratorio"
	ProsthesisStatusInstalada           ProsthesisStatus = "Instalada"
	ProsthesisStatusCancelada           ProsthesisStatus = "Cancelada"
)

var ProsthesisStatuses = []ProsthesisStatus{
	ProsthesisStatusPrescrita,
	ProsthesisStatusEnviadaLaboratorio,
	ProsthesisStatusRecibidaLaboratorio,
	ProsthesisStatusPruebaPaciente,
	ProsthesisStatusAjustesLaboratorio,
	ProsthesisStatusInstalada,
	ProsthesisStatusCancelada,
}

// SenderKind tells which side of the clinic/lab relationship wrote a message.
type SenderKind string

const (
	SenderKindClinica     SenderKind = "clinica"
	SenderKindLaboratorio SenderKind = "laboratorio"
)

func (k SenderKind) Valid() bool {
	return k == SenderKindClinica || k == SenderKindLaboratorio
}

// CommunicationMessage is an entry of the clinic/lab thread of a prosthesis.
type CommunicationMessage struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	AuthorID   string     `json:"author_id"`
	SenderKind SenderKind `json:"sender_kind"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Prosthesis tracks a prosthetic piece from prescription to installation.
// Status changes follow the allowed-successor table in the workflow package.
type Prosthesis struct {
	WorkOrder[ProsthesisStatus]

	ProsthesisType    string                 `json:"prosthesis_type"`
	Material          string                 `json:"material,omitempty"`
	Teeth             []string               `json:"teeth,omitempty"`
	Observations      string                 `json:"observations,omitempty"`
	NotasComunicacion []CommunicationMessage `json:"notas_comunicacion"`
}

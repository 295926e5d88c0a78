package entities

type FabricationStatus string

const (
	FabricationStatusPendiente        FabricationStatus = "Pendiente"
	FabricationStatusDisenoCAD        FabricationStatus = "Diseño CAD"
	FabricationStatusAprobacionDiseno FabricationStatus = "Aprobación de Diseño"
	FabricationStatusFresado          FabricationStatus = "Fresado"
	FabricationStatusSinterizado      FabricationStatus = "Sinterizado"
	FabricationStatusMaquillaje       FabricationStatus = "Maquillaje"
	FabricationStatusGlaseado         FabricationStatus = "Glaseado"
	FabricationStatusControlCalidad   FabricationStatus = "Control Calidad"
	FabricationStatusListoEnvio       FabricationStatus = "Listo para Envío"
	FabricationStatusEnviadoClinica   FabricationStatus = "Enviado a Clínica"
	FabricationStatusRecibidoClinica  FabricationStatus = "Recibido en Clínica"
)

var FabricationStatuses = []FabricationStatus{
	FabricationStatusPendiente,
	FabricationStatusDisenoCAD,
	FabricationStatusAprobacionDiseno,
	FabricationStatusFresado,
	FabricationStatusSinterizado,
	FabricationStatusMaquillaje,
	FabricationStatusGlaseado,
	FabricationStatusControlCalidad,
	FabricationStatusListoEnvio,
	FabricationStatusEnviadoClinica,
	FabricationStatusRecibidoClinica,
}

// CADStage is the digital design phase the piece is in.
type CADStage string

const (
	CADStageEscaneo  CADStage = "escaneo"
	CADStageDiseno   CADStage = "diseno"
	CADStageAprobado CADStage = "aprobado"
	CADStageNinguno  CADStage = "no_aplica"
)

func (s CADStage) Valid() bool {
	switch s {
	case CADStageEscaneo, CADStageDiseno, CADStageAprobado, CADStageNinguno:
		return true
	}
	return false
}

// FabricationSpec is the closed schema of a fabrication order.
// Extensions carries lab-specific fields that have no dedicated column.
type FabricationSpec struct {
	Material   string            `json:"material"`
	Color      string            `json:"color,omitempty"`
	CADStage   CADStage          `json:"cad_stage"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

type FabricationOrder struct {
	WorkOrder[FabricationStatus]

	PieceType     string          `json:"piece_type"`
	Specification FabricationSpec `json:"specification"`
	Notes         string          `json:"notes,omitempty"`
}

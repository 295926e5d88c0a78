package entities

// LabOrderStatus is the lifecycle of an orden de laboratorio.
//
// Any status may follow any other; Completada is final for display purposes only.
type LabOrderStatus string

const (
	LabOrderStatusBorrador        LabOrderStatus = "Borrador"
	LabOrderStatusEnviada         LabOrderStatus = "Enviada"
	LabOrderStatusRecibida        LabOrderStatus = "Recibida"
	LabOrderStatusEnProceso       LabOrderStatus = "En Proceso"
	LabOrderStatusControlCalidad  LabOrderStatus = "Control Calidad"
	LabOrderStatusEnviadaClinica  LabOrderStatus = "Enviada a Clínica"
	LabOrderStatusRecibidaClinica LabOrderStatus = "Recibida en Clínica"
	LabOrderStatusCompletada      LabOrderStatus = "Completada"
)

// LabOrderStatuses lists every status in workflow order.
var LabOrderStatuses = []LabOrderStatus{
	LabOrderStatusBorrador,
	LabOrderStatusEnviada,
	LabOrderStatusRecibida,
	LabOrderStatusEnProceso,
	LabOrderStatusControlCalidad,
	LabOrderStatusEnviadaClinica,
	LabOrderStatusRecibidaClinica,
	LabOrderStatusCompletada,
}

type LabOrderPriority string

const (
	LabOrderPriorityNormal  LabOrderPriority = "normal"
	LabOrderPriorityUrgente LabOrderPriority = "urgente"
)

// LabOrder is a work order sent to an external dental laboratory.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (patient_id-index): patient_id
type LabOrder struct {
	WorkOrder[LabOrderStatus]

	WorkType     string           `json:"work_type"`
	Teeth        []string         `json:"teeth,omitempty"`
	Shade        string           `json:"shade,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Priority     LabOrderPriority `json:"priority"`
}

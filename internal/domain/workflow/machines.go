package workflow

import "odonto_docs/internal/domain/entities"

var prosthesisTransitions = map[entities.ProsthesisStatus][]entities.ProsthesisStatus{
	entities.ProsthesisStatusPrescrita: {
		entities.ProsthesisStatusEnviadaLaboratorio,
		entities.ProsthesisStatusCancelada,
	},
	entities.ProsthesisStatusEnviadaLaboratorio: {
		entities.ProsthesisStatusRecibidaLaboratorio,
		entities.ProsthesisStatusCancelada,
	},
	entities.ProsthesisStatusRecibidaLaboratorio: {
		entities.ProsthesisStatusPruebaPaciente,
		entities.ProsthesisStatusCancelada,
	},
	entities.ProsthesisStatusPruebaPaciente: {
		entities.ProsthesisStatusInstalada,
		entities.ProsthesisStatusAjustesLaboratorio,
		entities.ProsthesisStatusCancelada,
	},
	entities.ProsthesisStatusAjustesLaboratorio: {
		entities.ProsthesisStatusRecibidaLaboratorio,
		entities.ProsthesisStatusCancelada,
	},
	entities.ProsthesisStatusInstalada: {},
	entities.ProsthesisStatusCancelada: {},
}

// LabOrders accepts any status change.
func LabOrders() *StateMachine[entities.LabOrderStatus] {
	return New("orden_laboratorio", entities.LabOrderStatuses, nil).
		CompletesAt(entities.LabOrderStatusCompletada)
}

// Prostheses enforces the prosthesis successor table.
func Prostheses() *StateMachine[entities.ProsthesisStatus] {
	return New("protesis", entities.ProsthesisStatuses, prosthesisTransitions).
		CompletesAt(entities.ProsthesisStatusInstalada)
}

// FabricationOrders accepts any status change.
func FabricationOrders() *StateMachine[entities.FabricationStatus] {
	return New("orden_fabricacion", entities.FabricationStatuses, nil).
		CompletesAt(entities.FabricationStatusRecibidoClinica)
}

package response

import (
	"encoding/json"
	"testing"
	"time"

	"odonto_docs/internal/domain/entities"
)

func TestFromProsthesis(t *testing.T) {
	now := time.Now().UTC()
	p := &entities.Prosthesis{ProsthesisType: "corona"}
	p.ID = "p-1"
	p.CurrentState = entities.ProsthesisStatusPruebaPaciente
	p.History = []entities.StateTransitionRecord[entities.ProsthesisStatus]{{State: p.CurrentState, OccurredAt: now}}
	p.CreatedAt = now

	res := FromProsthesis(p)
	if res.ID != "p-1" || res.Status != entities.ProsthesisStatusPruebaPaciente {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.AllowedTransitions) != 3 || res.Terminal {
		t.Fatalf("unexpected transitions: %v terminal=%v", res.AllowedTransitions, res.Terminal)
	}
	if res.NotasComunicacion == nil || res.Attachments == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}

func TestFromProsthesis_Terminal(t *testing.T) {
	p := &entities.Prosthesis{}
	p.CurrentState = entities.ProsthesisStatusInstalada
	res := FromProsthesis(p)
	if !res.Terminal || len(res.AllowedTransitions) != 0 {
		t.Fatalf("expected terminal with no transitions, got %+v", res.WorkOrderView)
	}
}

func TestFromLabOrder_FlattensView(t *testing.T) {
	o := &entities.LabOrder{WorkType: "corona", Priority: entities.LabOrderPriorityUrgente}
	o.ID = "lo-1"
	o.CurrentState = entities.LabOrderStatusCompletada

	b, err := json.Marshal(FromLabOrder(o))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["id"] != "lo-1" || m["status"] != "Completada" || m["work_type"] != "corona" {
		t.Fatalf("unexpected json: %s", b)
	}
	if m["terminal"] != true {
		t.Fatalf("completion state should be reported terminal: %s", b)
	}
	if got := m["allowed_transitions"].([]any); len(got) != len(entities.LabOrderStatuses) {
		t.Fatalf("permissive machine should allow every status, got %v", got)
	}
}

func TestFromLabInvoice(t *testing.T) {
	inv := entities.LabInvoice{ID: "inv-1", Total: 10, Status: entities.LabInvoiceStatusPagada, PaymentPayloadRaw: json.RawMessage(`{"id":1}`)}
	res := FromLabInvoice(inv)
	if res.Status != "Pagada" || res.PaymentPayloadRaw != `{"id":1}` {
		t.Fatalf("unexpected response: %+v", res)
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"
)

func newInvoice(id, labID string, status entities.LabInvoiceStatus, issuedAt time.Time) entities.LabInvoice {
	inv := entities.LabInvoice{
		ID:       id,
		Number:   "F-" + id,
		Lab:      entities.Reference{ID: labID, Name: "Lab Dental"},
		IssuedAt: issuedAt,
		Items:    []entities.LabInvoiceItem{{Description: "corona", Quantity: 2, UnitPrice: 50}},
		Status:   status,
	}
	inv.Total = inv.ComputeTotal()
	return inv
}

func TestLabInvoiceDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLabInvoiceDynamoRepository(newFakeDynamoDB(), "lab_invoices")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, inv := range []entities.LabInvoice{
		newInvoice("inv-1", "lab-1", entities.LabInvoiceStatusPendiente, base),
		newInvoice("inv-2", "lab-1", entities.LabInvoiceStatusPagada, base.Add(24*time.Hour)),
		newInvoice("inv-3", "lab-2", entities.LabInvoiceStatusPendiente, base.Add(48*time.Hour)),
	} {
		if _, err := repo.Create(ctx, inv); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if _, err := repo.Create(ctx, newInvoice("inv-1", "lab-1", entities.LabInvoiceStatusPendiente, base)); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}

	got, err := repo.GetByID(ctx, "inv-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "inv-1" || got.Total != 100 || len(got.Items) != 1 {
		t.Fatalf("unexpected invoice: %+v", got)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing id, got %+v err=%v", missing, err)
	}

	items, total, err := repo.List(ctx, interfaces.LabInvoiceFilter{LabID: "lab-1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 2 || items[0].ID != "inv-2" {
		t.Fatalf("expected newest lab-1 invoice first, got total=%d items=%+v", total, items)
	}

	items, total, err = repo.List(ctx, interfaces.LabInvoiceFilter{Status: entities.LabInvoiceStatusPendiente, Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 1 || items[0].ID != "inv-1" {
		t.Fatalf("unexpected second page: total=%d items=%+v", total, items)
	}

	got.Status = entities.LabInvoiceStatusAnulada
	updated, err := repo.Update(ctx, got)
	if err != nil || updated.Status != entities.LabInvoiceStatusAnulada || updated.Version != 2 {
		t.Fatalf("update: %+v err=%v", updated, err)
	}

	ghost, err := repo.Update(ctx, newInvoice("ghost", "lab-1", entities.LabInvoiceStatusPendiente, base))
	if err != nil || ghost.ID != "" {
		t.Fatalf("expected zero value when updating unknown id, got %+v err=%v", ghost, err)
	}

	if err := repo.Delete(ctx, "inv-3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gone, _ := repo.GetByID(ctx, "inv-3"); gone.ID != "" {
		t.Fatalf("expected inv-3 to be deleted")
	}
}

func TestLabInvoiceDynamoRepository_StaleUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewLabInvoiceDynamoRepository(newFakeDynamoDB(), "lab_invoices")
	if _, err := repo.Create(ctx, newInvoice("inv-1", "lab-1", entities.LabInvoiceStatusPendiente, time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}

	payer, _ := repo.GetByID(ctx, "inv-1")
	canceller, _ := repo.GetByID(ctx, "inv-1")

	payer.Status = entities.LabInvoiceStatusPagada
	payer.PaymentID = "mp-1"
	if _, err := repo.Update(ctx, payer); err != nil {
		t.Fatalf("pay: %v", err)
	}

	canceller.Status = entities.LabInvoiceStatusPendiente
	if _, err := repo.Update(ctx, canceller); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, "inv-1")
	if stored.Status != entities.LabInvoiceStatusPagada || stored.PaymentID != "mp-1" {
		t.Fatalf("stale write overwrote payment: %+v", stored)
	}
}

func TestConsentDocumentDynamoRepository_StaleUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewConsentDocumentDynamoRepository(newFakeDynamoDB(), "consentimientos")
	created, err := repo.Create(ctx, entities.ConsentDocument{ID: "c-1", Patient: entities.Reference{ID: "pac-1"}, Status: entities.ConsentStatusPendiente})
	if err != nil || created.Version != 1 {
		t.Fatalf("create: %+v err=%v", created, err)
	}

	first, _ := repo.GetByID(ctx, "c-1")
	second, _ := repo.GetByID(ctx, "c-1")

	first.Status = entities.ConsentStatusFirmado
	first.Signature = &entities.Signature{SignerID: "u-1", StorageKey: "consentimientos/c-1/firma-1"}
	if _, err := repo.Update(ctx, first); err != nil {
		t.Fatalf("first sign: %v", err)
	}

	second.Status = entities.ConsentStatusFirmado
	second.Signature = &entities.Signature{SignerID: "u-2", StorageKey: "consentimientos/c-1/firma-2"}
	if _, err := repo.Update(ctx, second); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, "c-1")
	if stored.Signature == nil || stored.Signature.SignerID != "u-1" || stored.Version != 2 {
		t.Fatalf("unexpected stored document: %+v", stored)
	}

	ghost, err := repo.Update(ctx, entities.ConsentDocument{ID: "ghost"})
	if err != nil || ghost.ID != "" {
		t.Fatalf("expected zero value when updating unknown id, got %+v err=%v", ghost, err)
	}
}

func TestConsentDocumentDynamoRepository_ListByPatientID(t *testing.T) {
	ctx := context.Background()
	repo := NewConsentDocumentDynamoRepository(newFakeDynamoDB(), "consentimientos")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	docs := []entities.ConsentDocument{
		{ID: "c-1", Patient: entities.Reference{ID: "pac-1"}, Status: entities.ConsentStatusPendiente, CreatedAt: base},
		{ID: "c-2", Patient: entities.Reference{ID: "pac-2"}, Status: entities.ConsentStatusPendiente, CreatedAt: base},
		{ID: "c-3", Patient: entities.Reference{ID: "pac-1"}, Status: entities.ConsentStatusFirmado, CreatedAt: base.Add(time.Hour)},
	}
	for _, d := range docs {
		if _, err := repo.Create(ctx, d); err != nil {
			t.Fatalf("create %s: %v", d.ID, err)
		}
	}

	out, err := repo.ListByPatientID(ctx, "pac-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].ID != "c-3" || out[1].ID != "c-1" {
		t.Fatalf("unexpected documents: %+v", out)
	}
}

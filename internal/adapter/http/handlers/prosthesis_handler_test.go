package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"odonto_docs/internal/adapter/http/handlers/mocks"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/domain/workflow"
	"odonto_docs/internal/usecase"

	"go.uber.org/mock/gomock"
)

func prosthesisAt(status entities.ProsthesisStatus) *entities.Prosthesis {
	now := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	return &entities.Prosthesis{
		WorkOrder: entities.WorkOrder[entities.ProsthesisStatus]{
			ID:           "pr-1",
			CurrentState: status,
			History: []entities.StateTransitionRecord[entities.ProsthesisStatus]{
				{State: status, OccurredAt: now, ActorID: testActor},
			},
			CreatedAt: now,
			UpdatedAt: now,
			Version:   1,
		},
		ProsthesisType: "corona",
	}
}

func TestProsthesisHandler_ChangeStatus(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		w := doJSON(r, http.MethodPut, "/v1/protesis/pr-1/estado", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		w := doJSON(r, http.MethodPut, "/v1/protesis/pr-1/estado", `{"note":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "pr-1", "Instalada", testActor, "").
			Return(nil, &workflow.ForbiddenTransitionError{Kind: "protesis", From: "Prescrita", To: "Instalada"})

		w := doJSON(r, http.MethodPut, "/v1/protesis/pr-1/estado", `{"estado":"Instalada"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "FORBIDDEN_TRANSITION" {
			t.Fatalf("expected FORBIDDEN_TRANSITION, got %s", body.Code)
		}
		details, ok := body.Details.(map[string]any)
		if !ok || details["from"] != "Prescrita" || details["to"] != "Instalada" {
			t.Fatalf("unexpected details: %#v", body.Details)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "pr-1", "Perdida", testActor, "").Return(nil, usecase.ErrInvalidStatus)

		w := doJSON(r, http.MethodPut, "/v1/protesis/pr-1/estado", `{"status":"Perdida"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "missing", "Cancelada", testActor, "").Return(nil, usecase.ErrWorkOrderNotFound)

		w := doJSON(r, http.MethodPut, "/v1/protesis/missing/estado", `{"status":"Cancelada"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "pr-1", "Cancelada", testActor, "").Return(nil, usecase.ErrConcurrentUpdate)

		w := doJSON(r, http.MethodPut, "/v1/protesis/pr-1/estado", `{"status":"Cancelada"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.PUT("/v1/protesis/:id/estado", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "pr-1", "Enviada a Laboratorio", testActor, "sale hoy").
			Return(prosthesisAt(entities.ProsthesisStatusEnviadaLaboratorio), nil)

		w := doJSON(r, http.MethodPut, "/v1/protesis/pr-1/estado", `{"status":"Enviada a Laboratorio","nota":"sale hoy"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if out["status"] != "Enviada a Laboratorio" {
			t.Fatalf("unexpected status: %v", out["status"])
		}
		if out["terminal"] != false {
			t.Fatalf("expected non terminal, got %v", out["terminal"])
		}
	})
}

func TestProsthesisHandler_AddFiles(t *testing.T) {
	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.POST("/v1/protesis/:id/archivos", h.AddFiles)

		w := doJSON(r, http.MethodPost, "/v1/protesis/pr-1/archivos", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards every file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.POST("/v1/protesis/:id/archivos", h.AddFiles)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		for _, name := range []string{"scan.stl", "foto.jpg"} {
			fw, err := mw.CreateFormFile("files", name)
			if err != nil {
				t.Fatalf("create form file: %v", err)
			}
			_, _ = fw.Write([]byte("content-" + name))
		}
		_ = mw.Close()

		uc.EXPECT().AddAttachments(gomock.Any(), "pr-1", testActor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, files []workflow.FileUpload) (*entities.Prosthesis, []workflow.AttachmentRejection, error) {
				if len(files) != 2 {
					t.Fatalf("expected 2 files, got %d", len(files))
				}
				rc, err := files[0].Open()
				if err != nil {
					t.Fatalf("open: %v", err)
				}
				defer rc.Close()
				data, _ := io.ReadAll(rc)
				if string(data) != "content-scan.stl" {
					t.Fatalf("unexpected content %q", data)
				}
				return prosthesisAt(entities.ProsthesisStatusPrescrita), []workflow.AttachmentRejection{{Name: "foto.jpg", Reason: "too large"}}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/protesis/pr-1/archivos", &body, mw.FormDataContentType())
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var out struct {
			Rejected []workflow.AttachmentRejection `json:"rejected"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(out.Rejected) != 1 || out.Rejected[0].Name != "foto.jpg" {
			t.Fatalf("unexpected rejections: %#v", out.Rejected)
		}
	})
}

func TestProsthesisHandler_RemoveFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProsthesisUseCase(ctrl)
	h := NewProsthesisHandler(uc)

	r := newTestRouter()
	r.DELETE("/v1/protesis/:id/archivos/:archivo_id", h.RemoveFile)

	uc.EXPECT().RemoveAttachment(gomock.Any(), "pr-1", "att-9", testActor).Return(prosthesisAt(entities.ProsthesisStatusPrescrita), nil)

	w := doRequest(r, http.MethodDelete, "/v1/protesis/pr-1/archivos/att-9", nil, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestProsthesisHandler_PostMessage(t *testing.T) {
	t.Run("invalid sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.POST("/v1/protesis/:id/notas", h.PostMessage)

		uc.EXPECT().PostMessage(gomock.Any(), "pr-1", testActor, "hola", entities.SenderKind("paciente")).
			Return(entities.CommunicationMessage{}, usecase.ErrInvalidMessage)

		w := doJSON(r, http.MethodPost, "/v1/protesis/pr-1/notas", `{"content":"hola","sender_kind":"paciente"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProsthesisUseCase(ctrl)
		h := NewProsthesisHandler(uc)

		r := newTestRouter()
		r.POST("/v1/protesis/:id/notas", h.PostMessage)

		uc.EXPECT().PostMessage(gomock.Any(), "pr-1", testActor, "color A2", entities.SenderKindClinica).
			Return(entities.CommunicationMessage{ID: "m-1", Content: "color A2", AuthorID: testActor, SenderKind: entities.SenderKindClinica}, nil)

		w := doJSON(r, http.MethodPost, "/v1/protesis/pr-1/notas", `{"content":"color A2","sender_kind":"clinica"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

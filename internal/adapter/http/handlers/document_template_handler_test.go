package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"odonto_docs/internal/adapter/http/handlers/mocks"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDocumentTemplateHandler_Placeholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentTemplateUseCase(ctrl)
	h := NewDocumentTemplateHandler(uc)

	r := newTestRouter()
	r.GET("/v1/documentacion/placeholders", h.Placeholders)

	uc.EXPECT().Placeholders().Return([]entities.Placeholder{{Key: "paciente.nombre", Group: "paciente"}})

	w := doRequest(r, http.MethodGet, "/v1/documentacion/placeholders", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !json.Valid(w.Body.Bytes()) {
		t.Fatalf("invalid body %q", w.Body.String())
	}
}

func TestDocumentTemplateHandler_Create(t *testing.T) {
	t.Run("unknown placeholders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentTemplateUseCase(ctrl)
		h := NewDocumentTemplateHandler(uc)

		r := newTestRouter()
		r.POST("/v1/documentacion/plantillas", h.Create)

		uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
			Return(entities.DocumentTemplate{}, &usecase.UnknownPlaceholdersError{Keys: []string{"paciente.apodo"}})

		w := doJSON(r, http.MethodPost, "/v1/documentacion/plantillas", `{"name":"Receta","category":"receta","content":"{{paciente.apodo}}"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNKNOWN_PLACEHOLDERS" {
			t.Fatalf("expected UNKNOWN_PLACEHOLDERS, got %s", body.Code)
		}
	})

	t.Run("not found on get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentTemplateUseCase(ctrl)
		h := NewDocumentTemplateHandler(uc)

		r := newTestRouter()
		r.GET("/v1/documentacion/plantillas/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "dt-404").Return(entities.DocumentTemplate{}, usecase.ErrDocumentTemplateNotFound)

		w := doRequest(r, http.MethodGet, "/v1/documentacion/plantillas/dt-404", nil, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

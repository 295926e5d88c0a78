package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"odonto_docs/internal/adapter/http/handlers"
	"odonto_docs/internal/adapter/http/handlers/mocks"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockIProsthesisUseCase) {
	prostheses := mocks.NewMockIProsthesisUseCase(ctrl)
	return Handlers{
		Consents:          handlers.NewConsentHandler(mocks.NewMockIConsentUseCase(ctrl)),
		LabOrders:         handlers.NewLabOrderHandler(mocks.NewMockILabOrderUseCase(ctrl)),
		Prostheses:        handlers.NewProsthesisHandler(prostheses),
		FabricationOrders: handlers.NewFabricationOrderHandler(mocks.NewMockIFabricationOrderUseCase(ctrl)),
		LabInvoices:       handlers.NewLabInvoiceHandler(mocks.NewMockILabInvoiceUseCase(ctrl)),
		DocumentTemplates: handlers.NewDocumentTemplateHandler(mocks.NewMockIDocumentTemplateUseCase(ctrl)),
	}, prostheses
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping is public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newTestHandlers(ctrl)
		r := NewRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics is exposed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newTestHandlers(ctrl)
		r := NewRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("api requires token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newTestHandlers(ctrl)
		r := NewRouter(h)

		req := httptest.NewRequest(http.MethodGet, PathV1+PathProstheses+"/pr-1", nil)
		req.Header.Set(middleware.HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("api requires acting user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newTestHandlers(ctrl)
		r := NewRouter(h)

		req := httptest.NewRequest(http.MethodGet, PathV1+PathProstheses+"/pr-1", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("authenticated request reaches handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, prostheses := newTestHandlers(ctrl)
		r := NewRouter(h)

		prostheses.EXPECT().GetByID(gomock.Any(), "pr-1").Return(&entities.Prosthesis{
			WorkOrder: entities.WorkOrder[entities.ProsthesisStatus]{ID: "pr-1", CurrentState: entities.ProsthesisStatusPrescrita},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, PathV1+PathProstheses+"/pr-1", nil)
		req.Header.Set("Authorization", "Bearer token")
		req.Header.Set(middleware.HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

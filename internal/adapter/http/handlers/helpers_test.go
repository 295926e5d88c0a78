package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/pkg"

	"github.com/gin-gonic/gin"
)

const testActor = "user-1"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequireIdentity())
	return r
}

func doRequest(r http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set(middleware.HeaderUserID, testActor)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	return doRequest(r, method, target, strings.NewReader(body), "application/json")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var out pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return out
}

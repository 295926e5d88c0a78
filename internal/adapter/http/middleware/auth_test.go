package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(RequireIdentity())
		r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, ActorID(c)) })
		return r
	}

	cases := []struct {
		name   string
		auth   string
		user   string
		status int
	}{
		{"no token", "", "u-1", http.StatusUnauthorized},
		{"basic scheme", "Basic abc", "u-1", http.StatusUnauthorized},
		{"no user", "Bearer abc", "", http.StatusUnauthorized},
		{"ok", "Bearer abc", "u-1", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			if tc.user != "" {
				req.Header.Set(HeaderUserID, tc.user)
			}
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.status == http.StatusOK && w.Body.String() != tc.user {
				t.Fatalf("expected actor %q, got %q", tc.user, w.Body.String())
			}
		})
	}
}

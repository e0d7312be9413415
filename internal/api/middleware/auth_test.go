package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{"ValidToken", "secret", "Bearer secret", http.StatusOK},
		{"WrongToken", "secret", "Bearer nope", http.StatusUnauthorized},
		{"MissingHeader", "secret", "", http.StatusUnauthorized},
		{"MalformedHeader", "secret", "Basic secret", http.StatusUnauthorized},
		{"AuthDisabled", "", "", http.StatusOK},
		{"AuthDisabledIgnoresHeader", "", "Bearer anything", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BearerAuth(tt.token)(protectedHandler())

			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

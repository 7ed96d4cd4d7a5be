package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/corebank/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoPrincipal(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", p.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) services.Response {
	t.Helper()
	var resp services.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthenticate(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	handler := Authenticate(tokens)(echoPrincipal(t))

	valid, err := tokens.GenerateToken("alice", []string{"CUSTOMER"})
	require.NoError(t, err)
	foreign, err := services.NewTokenService("other", time.Hour).GenerateToken("alice", []string{"ADMIN"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lower-case scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/accounts/all", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "alice", w.Header().Get("X-User"))
			} else {
				resp := decodeEnvelope(t, w)
				assert.Equal(t, http.StatusUnauthorized, resp.Status)
				assert.Nil(t, resp.Data)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRoles("ADMIN")(next)

	t.Run("allowed", func(t *testing.T) {
		called = false
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(WithPrincipal(r.Context(), Principal{Username: "root", Roles: []string{"ADMIN"}}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("forbidden before the handler runs", func(t *testing.T) {
		called = false
		r := httptest.NewRequest(http.MethodPost, "/accounts/create/1", nil)
		r = r.WithContext(WithPrincipal(r.Context(), Principal{Username: "alice", Roles: []string{"CUSTOMER"}}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, called)
		assert.Equal(t, "Access denied", decodeEnvelope(t, w).Message)
	})

	t.Run("no principal", func(t *testing.T) {
		called = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})
}

func TestPrincipal_HasAnyRole(t *testing.T) {
	p := Principal{Roles: []string{"CUSTOMER"}}
	assert.True(t, p.HasAnyRole("ADMIN", "CUSTOMER"))
	assert.False(t, p.HasAnyRole("ADMIN"))
	assert.False(t, Principal{}.HasAnyRole("ADMIN"))
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

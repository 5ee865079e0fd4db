package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/log"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "rota pública não exige token",
			path:           "/v1/token",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sem cabeçalho de autorização",
			path:           "/v1/categories/Deluxe/price",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "cabeçalho sem Bearer",
			path:           "/v1/categories/Deluxe/price",
			header:         "Basic abc",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "token expirado",
			path:   "/v1/categories/Deluxe/price",
			header: "Bearer expired",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token válido",
			path:   "/v1/categories/Deluxe/price",
			header: "Bearer good",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("good").Return(&domain.Claims{ClientID: "rms", RoleID: domain.RoleAnalyst}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "administrador", claims: &domain.Claims{RoleID: domain.RoleAdmin}, expectedStatus: http.StatusOK},
		{name: "gerente de receita", claims: &domain.Claims{RoleID: domain.RoleRevenueManager}, expectedStatus: http.StatusOK},
		{name: "analista bloqueado", claims: &domain.Claims{RoleID: domain.RoleAnalyst}, expectedStatus: http.StatusForbidden},
		{name: "sem claims", claims: nil, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/categories/Deluxe/prices/publish", nil)
			if tt.claims != nil {
				req = req.WithContext(withClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOrRevenueManager()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(config.RateLimit{RequestsPerSecond: 0.0001, Burst: 2, Enabled: true})(okHandler)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/categories/Deluxe/price", nil))
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimitDisabled(t *testing.T) {
	handler := RateLimit(config.RateLimit{Enabled: false})(okHandler)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/token", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	}))

	t.Run("reaproveita o ID recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/patterns", nil)
		req.Header.Set(HeaderCorrelationID, "req-42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("gera um ID quando ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderCorrelationID))
	})
}

func TestLoggingResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	_, _ = lrw.Write([]byte("abc"))
	lrw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, lrw.statusCode)
	assert.Equal(t, 3, lrw.bytes)
}

func withClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyClient, claims)
}

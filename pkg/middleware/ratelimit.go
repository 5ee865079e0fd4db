package middleware

import (
	"net/http"

	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit limita as requisições com um token bucket compartilhado pelo servidor
func RateLimit(cfg config.RateLimit) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"path":           r.URL.Path,
				}).Warn("Requisição bloqueada pelo limite de taxa")

				apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Muitas requisições, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/scheduler"
	"github.com/vfg2006/revenue-engine/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/log"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// paramError descreve um parâmetro de consulta inválido
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("parâmetro %s inválido: %q", e.name, e.value)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("handler: falha ao serializar resposta")
	}
}

func categoryParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("category")
}

// queryDate lê uma data YYYY-MM-DD; ausente retorna data zero
func queryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	date, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, &paramError{name: name, value: raw}
	}
	return *date, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{name: name, value: raw}
	}
	return value, nil
}

func queryBool(r *http.Request, name string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &paramError{name: name, value: raw}
	}
	return value, nil
}

func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, &paramError{name: name, value: raw}
	}
	return &value, nil
}

// queryOverrides monta as sobrescritas de coeficientes; nil quando nenhuma foi enviada
func queryOverrides(r *http.Request) (*domain.CoefficientOverrides, error) {
	overrides := &domain.CoefficientOverrides{}
	targets := []struct {
		name  string
		field **float64
	}{
		{"alpha", &overrides.Alpha},
		{"beta", &overrides.Beta},
		{"gamma", &overrides.Gamma},
		{"delta", &overrides.Delta},
	}

	provided := false
	for _, target := range targets {
		value, err := queryFloat(r, target.name)
		if err != nil {
			return nil, err
		}
		if value != nil {
			*target.field = value
			provided = true
		}
	}

	if !provided {
		return nil, nil
	}
	return overrides, nil
}

func writeParamError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}

// handleServiceError traduz erros dos casos de uso para a resposta padronizada
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"error": err.Error(),
	})

	var (
		forecastErr *forecasting.ForecastError
		pricingErr  *pricing.PricingError
		analysisErr *analyzing.AnalysisError
		authErr     *authenticating.AuthError
		configErr   *domain.ConfigurationError
	)

	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		logger.Warn("handler: categoria inexistente")
		apiErrors.WriteError(w, apiErrors.ErrCategoryNotFound, err.Error(), nil)
	case errors.As(err, &configErr):
		logger.Error("handler: configuração de categoria inválida")
		apiErrors.WriteError(w, apiErrors.ErrPricingConfig, configErr.Details, map[string]string{
			"category": configErr.Category,
		})
	case errors.Is(err, scheduler.ErrSyncAlreadyRunning):
		apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, err.Error(), nil)
	case errors.As(err, &forecastErr):
		logger.Warn("handler: erro de previsão")
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), nil)
	case errors.As(err, &pricingErr):
		logger.Warn("handler: erro de precificação")
		apiErrors.WriteError(w, pricingErr.Code, pricingErr.Error(), nil)
	case errors.As(err, &analysisErr):
		logger.Warn("handler: erro de análise")
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), nil)
	case errors.As(err, &authErr):
		logger.Warn("handler: erro de autenticação")
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		logger.Error("handler: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

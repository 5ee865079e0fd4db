package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/log"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

// PublishRequest é o corpo de POST /v1/categories/:category/prices/publish
type PublishRequest struct {
	StartDate    string                       `json:"start_date"`
	EndDate      string                       `json:"end_date"`
	Channel      string                       `json:"channel"`
	Coefficients *domain.CoefficientOverrides `json:"coefficients,omitempty"`
}

func Price(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := categoryParam(r)

		date, err := queryDate(r, "date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		overrides, err := queryOverrides(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		quote, err := service.Price(r.Context(), category, date, overrides)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, quote)
	})
}

func PriceRange(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := categoryParam(r)

		startDate, err := queryDate(r, "start_date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		endDate, err := queryDate(r, "end_date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		overrides, err := queryOverrides(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		quotes, err := service.PriceRange(r.Context(), category, startDate, endDate, overrides)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"category": category,
			"prices":   quotes,
		})
	})
}

// PriceHistory devolve os preços já publicados no intervalo
func PriceHistory(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := categoryParam(r)

		startDate, err := queryDate(r, "start_date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		endDate, err := queryDate(r, "end_date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		records, err := service.History(r.Context(), category, startDate, endDate)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"category": category,
			"records":  records,
		})
	})
}

func PriceSummary(service pricing.Pricer, defaultDays int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		daysAhead, err := queryInt(r, "days_ahead", defaultDays)
		if err != nil {
			writeParamError(w, err)
			return
		}

		summary, err := service.Summary(r.Context(), categoryParam(r), daysAhead)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// PublishPrices calcula e grava no histórico os preços de um intervalo
func PublishPrices(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		category := categoryParam(r)

		var req PublishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida", nil)
			return
		}

		records, err := service.Publish(r.Context(), category, *startDate, *endDate, req.Channel, req.Coefficients)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"category":   category,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
			"records":    len(records),
		}).Info("pricing: preços publicados")

		writeJSON(w, http.StatusCreated, map[string]any{
			"category": category,
			"records":  records,
		})
	})
}

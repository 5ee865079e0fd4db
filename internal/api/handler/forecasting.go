package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/pkg/log"
)

// OccupancySeries retorna a série diária de ocupação da categoria
func OccupancySeries(service forecasting.Forecaster, defaultLookback int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := categoryParam(r)

		lookback, err := queryInt(r, "lookback_days", defaultLookback)
		if err != nil {
			writeParamError(w, err)
			return
		}

		series, err := service.OccupancySeries(r.Context(), category, lookback)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"category":      category,
			"lookback_days": lookback,
			"series":        series,
		})
	})
}

// Forecast calcula a previsão de demanda; stored=true devolve a previsão gravada
func Forecast(service forecasting.Forecaster, defaultUseModel bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		category := categoryParam(r)

		date, err := queryDate(r, "date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		stored, err := queryBool(r, "stored", false)
		if err != nil {
			writeParamError(w, err)
			return
		}

		if stored {
			record, err := service.StoredForecast(r.Context(), category, date)
			if err != nil {
				handleServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		useModel, err := queryBool(r, "use_model", defaultUseModel)
		if err != nil {
			writeParamError(w, err)
			return
		}

		forecast, err := service.Forecast(r.Context(), category, date, useModel)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"category": category,
			"date":     date.Format(time.DateOnly),
		}).Debug("forecast: previsão calculada")

		writeJSON(w, http.StatusOK, forecast)
	})
}

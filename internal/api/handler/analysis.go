package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-engine/internal/usecases/analyzing"
)

func Scenarios(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date, err := queryDate(r, "date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		scenarios, err := service.Scenarios(r.Context(), categoryParam(r), date)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, scenarios)
	})
}

func Accuracy(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date, err := queryDate(r, "date")
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.Accuracy(r.Context(), categoryParam(r), date)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// BookingPatterns agrega o comportamento de reservas; sem category considera todas
func BookingPatterns(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		daysBack, err := queryInt(r, "days_back", analyzing.DefaultPatternDaysBack)
		if err != nil {
			writeParamError(w, err)
			return
		}

		patterns, err := service.Patterns(r.Context(), r.URL.Query().Get("category"), daysBack)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, patterns)
	})
}

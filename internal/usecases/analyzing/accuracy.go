package analyzing

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

const (
	minActualOccupancy  = 0.01
	noForecastAvailable = "no forecast available"
)

// Accuracy compara a ocupação realizada de uma data passada com a previsão armazenada
func (s *Service) Accuracy(ctx context.Context, category string, date time.Time) (*domain.AccuracyReport, error) {
	if date.IsZero() {
		return nil, NewAnalysisError(ErrInvalidDate, apiErrors.ErrMissingRequiredData, "date is required")
	}

	date = utils.DateOnly(date)
	if date.After(s.today()) {
		return nil, NewAnalysisError(ErrFutureDate, apiErrors.ErrInvalidRequest, date.Format(time.DateOnly))
	}

	roomCategory, err := forecasting.RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	report := &domain.AccuracyReport{
		Category: roomCategory.Name,
		Date:     date,
	}

	record, err := s.forecastRepo.GetByCategoryAndDate(ctx, roomCategory.Name, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar previsão armazenada")
	}

	if record == nil {
		report.Message = noForecastAvailable
		return report, nil
	}

	arrivals, err := s.bookingRepo.CountConfirmedArrivals(ctx, roomCategory.Name, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar chegadas confirmadas")
	}

	actual := float64(arrivals) / float64(roomCategory.InventoryCount)
	absoluteError := math.Abs(record.ForecastedDemand - actual)
	percentageError := absoluteError / math.Max(actual, minActualOccupancy) * 100

	report.Available = true
	report.PredictedDemand = record.ForecastedDemand
	report.ActualOccupancy = actual
	report.AbsoluteError = absoluteError
	report.PercentageError = percentageError
	report.AccuracyScore = math.Max(0, 100-percentageError)

	logrus.WithFields(logrus.Fields{
		"category":  roomCategory.Name,
		"date":      date.Format(time.DateOnly),
		"predicted": record.ForecastedDemand,
		"actual":    actual,
		"score":     report.AccuracyScore,
	}).Debug("Acurácia da previsão calculada")

	return report, nil
}

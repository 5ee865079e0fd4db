// Package forecasting estima a demanda (ocupação esperada) por categoria e data.
package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

const fallbackWeekendFactor = 1.1

//go:generate mockgen -source=service.go -destination=mocks/forecaster.go -package=mocks

type Forecaster interface {
	OccupancySeries(ctx context.Context, category string, lookbackDays int) ([]*domain.OccupancyPoint, error)
	Forecast(ctx context.Context, category string, targetDate time.Time, useModel bool) (*domain.Forecast, error)
	ForecastAndStore(ctx context.Context, category string, targetDate time.Time, useModel bool) (*domain.Forecast, error)
	StoredForecast(ctx context.Context, category string, targetDate time.Time) (*domain.ForecastRecord, error)
}

type Service struct {
	categoryRepo   repository.RoomCategoryRepository
	bookingRepo    repository.BookingRepository
	competitorRepo repository.CompetitorRateRepository
	eventRepo      repository.EventRepository
	forecastRepo   repository.ForecastRepository
	cfg            config.Forecasting
	now            func() time.Time
}

func NewService(
	categoryRepo repository.RoomCategoryRepository,
	bookingRepo repository.BookingRepository,
	competitorRepo repository.CompetitorRateRepository,
	eventRepo repository.EventRepository,
	forecastRepo repository.ForecastRepository,
	cfg config.Forecasting,
) Forecaster {
	return &Service{
		categoryRepo:   categoryRepo,
		bookingRepo:    bookingRepo,
		competitorRepo: competitorRepo,
		eventRepo:      eventRepo,
		forecastRepo:   forecastRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *Service) today() time.Time {
	return utils.DateOnly(s.now())
}

func (s *Service) Forecast(ctx context.Context, category string, targetDate time.Time, useModel bool) (*domain.Forecast, error) {
	if targetDate.IsZero() {
		return nil, NewForecastError(ErrInvalidDate, apiErrors.ErrInvalidRequest, category, "target date is required")
	}

	roomCategory, err := RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	return s.forecast(ctx, roomCategory, utils.DateOnly(targetDate), useModel)
}

// ForecastAndStore calcula a previsão e grava o ForecastRecord da (categoria, data)
func (s *Service) ForecastAndStore(ctx context.Context, category string, targetDate time.Time, useModel bool) (*domain.Forecast, error) {
	forecast, err := s.Forecast(ctx, category, targetDate, useModel)
	if err != nil {
		return nil, err
	}

	if err := s.forecastRepo.Upsert(ctx, forecast.Record()); err != nil {
		return nil, fmt.Errorf("erro ao salvar previsão de %s em %s: %w", category, targetDate.Format(time.DateOnly), err)
	}

	return forecast, nil
}

// StoredForecast lê o ForecastRecord gravado para a (categoria, data)
func (s *Service) StoredForecast(ctx context.Context, category string, targetDate time.Time) (*domain.ForecastRecord, error) {
	if targetDate.IsZero() {
		return nil, NewForecastError(ErrInvalidDate, apiErrors.ErrInvalidRequest, category, "target date is required")
	}

	roomCategory, err := RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	record, err := s.forecastRepo.GetByCategoryAndDate(ctx, roomCategory.Name, utils.DateOnly(targetDate))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar previsão armazenada: %w", err)
	}

	if record == nil {
		return nil, NewForecastError(ErrNotStored, apiErrors.ErrForecastNotFound, category, targetDate.Format(time.DateOnly))
	}

	return record, nil
}

func (s *Service) forecast(ctx context.Context, category *domain.RoomCategory, target time.Time, useModel bool) (*domain.Forecast, error) {
	logger := logrus.WithFields(logrus.Fields{
		"category": category.Name,
		"date":     target.Format(time.DateOnly),
	})

	series, err := s.occupancySeries(ctx, category, s.cfg.LookbackDays)
	if err != nil {
		return nil, err
	}
	observed := observedDays(series)

	rates, err := s.competitorRepo.GetByCategoryAndDate(ctx, category.Name, target)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tarifas da concorrência: %w", err)
	}
	competitorIndex := CompetitorIndex(rates, category.BaseRate)

	pace, err := s.bookingPace(ctx, category.Name)
	if err != nil {
		return nil, err
	}

	if observed < s.cfg.MinHistoryPoints {
		reason := fmt.Sprintf("history has %d points, minimum is %d", observed, s.cfg.MinHistoryPoints)
		logger.WithField("history_points", observed).Info("Histórico insuficiente, usando previsão padrão")

		forecast := fallbackForecast(category.Name, target, reason)
		forecast.HistoryPoints = observed
		forecast.BookingPace = pace
		forecast.CompetitorIndex = competitorIndex
		return forecast, nil
	}

	event, err := s.eventRepo.GetByDate(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}

	now := s.now()
	recentBookings, err := s.bookingRepo.GetCreatedBetween(ctx, category.Name, now.AddDate(0, 0, -s.cfg.LeadTimeLookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar reservas recentes: %w", err)
	}

	base := s.estimateBase(series, observed, target, useModel)
	if base.Model != domain.ModelTrained {
		logger.WithField("reason", base.Reason).Debug("Demanda base calculada por suavização exponencial")
	}

	components := domain.ForecastComponents{
		BaseDemand:        base.Demand,
		SeasonalityFactor: seasonalityFactor(target, series),
		TrendFactor:       trendFactor(series),
		DayOfWeekFactor:   dayOfWeekFactor(target, series),
		LeadTimeFactor:    leadTimeFactor(utils.DaysBetween(s.today(), target), recentBookings),
		CompetitorFactor:  competitorFactor(competitorIndex),
		EventFactor:       eventFactor(event),
	}

	return &domain.Forecast{
		Category:         category.Name,
		TargetDate:       target,
		ForecastedDemand: utils.Clip(components.Product(), 0.0, 1.0),
		Components:       components,
		Confidence:       confidence(series),
		ModelUsed:        base.Model,
		ModelReason:      base.Reason,
		HistoryPoints:    observed,
		BookingPace:      pace,
		CompetitorIndex:  competitorIndex,
	}, nil
}

// fallbackForecast usa a demanda de referência com ajuste simples de fim de semana
func fallbackForecast(category string, target time.Time, reason string) *domain.Forecast {
	dow := 1.0
	if utils.IsWeekend(target) {
		dow = fallbackWeekendFactor
	}

	components := domain.ForecastComponents{
		BaseDemand:        domain.DefaultBaseline,
		SeasonalityFactor: 1.0,
		TrendFactor:       1.0,
		DayOfWeekFactor:   dow,
		LeadTimeFactor:    1.0,
		CompetitorFactor:  1.0,
		EventFactor:       1.0,
	}

	return &domain.Forecast{
		Category:         category,
		TargetDate:       target,
		ForecastedDemand: utils.Clip(components.Product(), 0.0, 1.0),
		Components:       components,
		Confidence:       0.5,
		ModelUsed:        domain.ModelFallback,
		ModelReason:      reason,
		CompetitorIndex:  1.0,
	}
}

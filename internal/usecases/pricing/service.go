// Package pricing converte a previsão de demanda em um preço limitado por piso e teto.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	maxRangeDays = 366

	forecastSourceStored   = "stored"
	forecastSourceComputed = "computed:"
)

//go:generate mockgen -source=service.go -destination=mocks/pricer.go -package=mocks

type Pricer interface {
	Price(ctx context.Context, category string, date time.Time, overrides *domain.CoefficientOverrides) (*domain.PriceQuote, error)
	PriceRange(ctx context.Context, category string, start, end time.Time, overrides *domain.CoefficientOverrides) ([]*domain.PriceQuote, error)
	Summary(ctx context.Context, category string, daysAhead int) (*domain.PriceSummary, error)
	Publish(ctx context.Context, category string, start, end time.Time, channel string, overrides *domain.CoefficientOverrides) ([]*domain.PriceRecord, error)
	Record(ctx context.Context, quotes []*domain.PriceQuote, channel, source, runID string) ([]*domain.PriceRecord, error)
	History(ctx context.Context, category string, start, end time.Time) ([]*domain.PriceRecord, error)
}

type Service struct {
	categoryRepo   repository.RoomCategoryRepository
	competitorRepo repository.CompetitorRateRepository
	eventRepo      repository.EventRepository
	forecastRepo   repository.ForecastRepository
	priceRepo      repository.PriceRepository
	forecaster     forecasting.Forecaster
	rules          *config.PricingRules
	cfg            config.Pricing
	useModel       bool
	now            func() time.Time
}

func NewService(
	categoryRepo repository.RoomCategoryRepository,
	competitorRepo repository.CompetitorRateRepository,
	eventRepo repository.EventRepository,
	forecastRepo repository.ForecastRepository,
	priceRepo repository.PriceRepository,
	forecaster forecasting.Forecaster,
	rules *config.PricingRules,
	cfg *config.Config,
) Pricer {
	return &Service{
		categoryRepo:   categoryRepo,
		competitorRepo: competitorRepo,
		eventRepo:      eventRepo,
		forecastRepo:   forecastRepo,
		priceRepo:      priceRepo,
		forecaster:     forecaster,
		rules:          rules,
		cfg:            cfg.Pricing,
		useModel:       cfg.Forecasting.UseModel,
		now:            time.Now,
	}
}

// DefaultCoefficients retorna os coeficientes configurados, sem sobrescritas
func (s *Service) DefaultCoefficients() domain.Coefficients {
	return domain.Coefficients{
		Alpha:          s.cfg.Alpha,
		Beta:           s.cfg.Beta,
		Gamma:          s.cfg.Gamma,
		Delta:          s.cfg.Delta,
		BaselineDemand: s.cfg.BaselineDemand,
		MaxLeadTime:    s.cfg.MaxLeadTime,
	}
}

func (s *Service) today() time.Time {
	return utils.DateOnly(s.now())
}

func (s *Service) Price(ctx context.Context, category string, date time.Time, overrides *domain.CoefficientOverrides) (*domain.PriceQuote, error) {
	if date.IsZero() {
		return nil, NewPricingError(ErrInvalidDate, apiErrors.ErrMissingRequiredData, "date is required")
	}

	coefficients, err := s.coefficients(overrides)
	if err != nil {
		return nil, err
	}

	roomCategory, err := forecasting.RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	return s.quote(ctx, roomCategory, utils.DateOnly(date), coefficients)
}

// coefficients combina os padrões com as sobrescritas da chamada, rejeitando valores não finitos
func (s *Service) coefficients(overrides *domain.CoefficientOverrides) (domain.Coefficients, error) {
	if err := overrides.Validate(); err != nil {
		return domain.Coefficients{}, NewPricingError(ErrInvalidCoefficient, apiErrors.ErrInvalidRequest, err.Error())
	}
	return s.DefaultCoefficients().Apply(overrides), nil
}

// PriceRange precifica cada dia de [start, end] de forma independente
func (s *Service) PriceRange(ctx context.Context, category string, start, end time.Time, overrides *domain.CoefficientOverrides) ([]*domain.PriceQuote, error) {
	start, end = utils.DateOnly(start), utils.DateOnly(end)
	if start.IsZero() || end.Before(start) || utils.DaysBetween(start, end) >= maxRangeDays {
		return nil, NewPricingError(ErrInvalidRange, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("start=%s end=%s", start.Format(time.DateOnly), end.Format(time.DateOnly)))
	}

	coefficients, err := s.coefficients(overrides)
	if err != nil {
		return nil, err
	}

	roomCategory, err := forecasting.RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	quotes := make([]*domain.PriceQuote, 0, utils.DaysBetween(start, end)+1)
	for _, date := range utils.DateRange(start, end) {
		quote, err := s.quote(ctx, roomCategory, date, coefficients)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

// Summary resume os preços finais de [hoje, hoje + daysAhead]
func (s *Service) Summary(ctx context.Context, category string, daysAhead int) (*domain.PriceSummary, error) {
	if daysAhead < 0 {
		return nil, NewPricingError(ErrInvalidRange, apiErrors.ErrInvalidRequest, fmt.Sprintf("days_ahead=%d", daysAhead))
	}

	start := s.today()
	end := start.AddDate(0, 0, daysAhead)

	quotes, err := s.PriceRange(ctx, category, start, end, nil)
	if err != nil {
		return nil, err
	}

	prices := make([]float64, len(quotes))
	for i, quote := range quotes {
		prices[i] = quote.FinalPrice
	}

	summary := &domain.PriceSummary{
		Category:    category,
		StartDate:   start,
		EndDate:     end,
		BaseRate:    quotes[0].BaseRate,
		AvgPrice:    utils.RoundMoney(stat.Mean(prices, nil)),
		MinPrice:    prices[0],
		MaxPrice:    prices[0],
		DailyPrices: quotes,
	}

	for _, price := range prices {
		summary.MinPrice = math.Min(summary.MinPrice, price)
		summary.MaxPrice = math.Max(summary.MaxPrice, price)
	}

	if len(prices) > 1 {
		summary.PriceVariance = utils.RoundMoney(stat.StdDev(prices, nil))
	}

	return summary, nil
}

// Publish precifica o intervalo e registra os preços no histórico
func (s *Service) Publish(ctx context.Context, category string, start, end time.Time, channel string, overrides *domain.CoefficientOverrides) ([]*domain.PriceRecord, error) {
	quotes, err := s.PriceRange(ctx, category, start, end, overrides)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da publicação: %w", err)
	}

	if channel == "" {
		channel = s.cfg.DefaultChannel
	}

	return s.Record(ctx, quotes, channel, domain.SourcePricingEngine, runID)
}

// Record grava os preços calculados; o histórico só recebe inserções
func (s *Service) Record(ctx context.Context, quotes []*domain.PriceQuote, channel, source, runID string) ([]*domain.PriceRecord, error) {
	if len(quotes) == 0 {
		return nil, NewPricingError(ErrNothingToSave, apiErrors.ErrInvalidRequest, "")
	}

	records := make([]*domain.PriceRecord, 0, len(quotes))
	for _, quote := range quotes {
		records = append(records, quote.Record(channel, source, runID))
	}

	if err := s.priceRepo.Append(ctx, records); err != nil {
		return nil, fmt.Errorf("erro ao registrar preços: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"category": quotes[0].Category,
		"run_id":   runID,
		"source":   source,
		"records":  len(records),
	}).Info("Preços registrados no histórico")

	return records, nil
}

// History lista os preços já registrados para as datas de [start, end]
func (s *Service) History(ctx context.Context, category string, start, end time.Time) ([]*domain.PriceRecord, error) {
	start, end = utils.DateOnly(start), utils.DateOnly(end)
	if start.IsZero() || end.Before(start) || utils.DaysBetween(start, end) >= maxRangeDays {
		return nil, NewPricingError(ErrInvalidRange, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("start=%s end=%s", start.Format(time.DateOnly), end.Format(time.DateOnly)))
	}

	roomCategory, err := forecasting.RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	records, err := s.priceRepo.ListByDateRange(ctx, roomCategory.Name, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de preços: %w", err)
	}

	return records, nil
}

func (s *Service) quote(ctx context.Context, category *domain.RoomCategory, date time.Time, coefficients domain.Coefficients) (*domain.PriceQuote, error) {
	demand, forecastSource, err := s.forecastedDemand(ctx, category.Name, date)
	if err != nil {
		return nil, err
	}

	rates, err := s.competitorRepo.GetByCategoryAndDate(ctx, category.Name, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tarifas da concorrência: %w", err)
	}

	event, err := s.eventRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}

	floor, ceiling := s.rules.Bounds(category.Name, category.BaseRate)
	leadTime := utils.DaysBetween(s.today(), date)

	inputs := domain.PriceInputs{
		BaseRate:         category.BaseRate,
		ForecastedDemand: demand,
		CompetitorIndex:  forecasting.CompetitorIndex(rates, category.BaseRate),
		EventMultiplier:  event.MultiplierOrDefault(),
		LeadTimeDays:     leadTime,
		Floor:            floor,
		Ceiling:          ceiling,
	}

	result, err := Calculate(inputs, coefficients)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBounds):
			return nil, domain.NewConfigurationError(category.Name, err.Error())
		case errors.Is(err, ErrNonFinitePrice):
			return nil, NewPricingError(ErrNonFinitePrice, apiErrors.ErrInvalidRequest, date.Format(time.DateOnly))
		}
		return nil, err
	}

	return &domain.PriceQuote{
		Category:       category.Name,
		Date:           date,
		BaseRate:       category.BaseRate,
		RawPrice:       result.RawPrice,
		FinalPrice:     result.FinalPrice,
		Floor:          result.Floor,
		Ceiling:        result.Ceiling,
		LeadTimeDays:   leadTime,
		Components:     result.Components,
		Coefficients:   coefficients,
		ForecastSource: forecastSource,
	}, nil
}

// forecastedDemand lê a previsão armazenada; sem registro, calcula sem gravar
func (s *Service) forecastedDemand(ctx context.Context, category string, date time.Time) (float64, string, error) {
	record, err := s.forecastRepo.GetByCategoryAndDate(ctx, category, date)
	if err != nil {
		return 0, "", fmt.Errorf("erro ao buscar previsão armazenada: %w", err)
	}

	if record != nil {
		return record.ForecastedDemand, forecastSourceStored, nil
	}

	forecast, err := s.forecaster.Forecast(ctx, category, date, s.useModel)
	if err != nil {
		return 0, "", err
	}

	return forecast.ForecastedDemand, forecastSourceComputed + string(forecast.ModelUsed), nil
}

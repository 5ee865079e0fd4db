// Package analyzing gera cenários de demanda, acompanha a acurácia das previsões
// e resume os padrões de reserva.
package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

const DefaultPatternDaysBack = 60

//go:generate mockgen -source=service.go -destination=mocks/analyzer.go -package=mocks

type Analyzer interface {
	Scenarios(ctx context.Context, category string, targetDate time.Time) (*domain.ScenarioSet, error)
	Accuracy(ctx context.Context, category string, date time.Time) (*domain.AccuracyReport, error)
	Patterns(ctx context.Context, category string, daysBack int) (*domain.BookingPatterns, error)
}

type Service struct {
	categoryRepo repository.RoomCategoryRepository
	bookingRepo  repository.BookingRepository
	forecastRepo repository.ForecastRepository
	forecaster   forecasting.Forecaster
	useModel     bool
	now          func() time.Time
}

func NewService(
	categoryRepo repository.RoomCategoryRepository,
	bookingRepo repository.BookingRepository,
	forecastRepo repository.ForecastRepository,
	forecaster forecasting.Forecaster,
	useModel bool,
) Analyzer {
	return &Service{
		categoryRepo: categoryRepo,
		bookingRepo:  bookingRepo,
		forecastRepo: forecastRepo,
		forecaster:   forecaster,
		useModel:     useModel,
		now:          time.Now,
	}
}

func (s *Service) today() time.Time {
	return utils.DateOnly(s.now())
}

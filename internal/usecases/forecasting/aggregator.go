package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

const bookingPaceWindowDays = 7

// RequireCategory busca a categoria e garante inventário positivo.
// Categoria inexistente retorna domain.ErrCategoryNotFound; inventário zero, ConfigurationError.
func RequireCategory(ctx context.Context, repo repository.RoomCategoryRepository, name string) (*domain.RoomCategory, error) {
	if name == "" {
		return nil, NewForecastError(ErrMissingCategory, apiErrors.ErrMissingRequiredData, name, "")
	}

	category, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}

	if !category.HasInventory() {
		return nil, domain.NewConfigurationError(name, "inventory count is zero, occupancy is undefined")
	}

	return category, nil
}

func (s *Service) OccupancySeries(ctx context.Context, category string, lookbackDays int) ([]*domain.OccupancyPoint, error) {
	if lookbackDays <= 0 {
		return nil, NewForecastError(ErrInvalidLookback, apiErrors.ErrInvalidRequest, category, fmt.Sprintf("lookback_days=%d", lookbackDays))
	}

	roomCategory, err := RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	return s.occupancySeries(ctx, roomCategory, lookbackDays)
}

// occupancySeries cobre todos os dias de [hoje - lookback, hoje]; dias sem chegadas têm ocupação 0
func (s *Service) occupancySeries(ctx context.Context, category *domain.RoomCategory, lookbackDays int) ([]*domain.OccupancyPoint, error) {
	today := s.today()
	start := today.AddDate(0, 0, -lookbackDays)

	bookings, err := s.bookingRepo.GetByArrivalRange(ctx, category.Name, start, today)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar reservas da categoria %s: %w", category.Name, err)
	}

	arrivals := make(map[time.Time]int, len(bookings))
	for _, booking := range bookings {
		arrivals[utils.DateOnly(booking.ArrivalDate)]++
	}

	dates := utils.DateRange(start, today)
	series := make([]*domain.OccupancyPoint, 0, len(dates))
	for _, date := range dates {
		count := arrivals[date]
		series = append(series, &domain.OccupancyPoint{
			Date:         date,
			Occupancy:    float64(count) / float64(category.InventoryCount),
			BookingCount: count,
		})
	}

	return series, nil
}

// observedDays conta os dias a partir da primeira chegada registrada.
// Só decide a suficiência do histórico; os fatores usam a janela inteira.
func observedDays(series []*domain.OccupancyPoint) int {
	for i, point := range series {
		if point.BookingCount > 0 {
			return len(series) - i
		}
	}
	return 0
}

// bookingPace é a média diária de reservas criadas nos últimos 7 dias
func (s *Service) bookingPace(ctx context.Context, category string) (float64, error) {
	now := s.now()
	bookings, err := s.bookingRepo.GetCreatedBetween(ctx, category, now.AddDate(0, 0, -bookingPaceWindowDays), now)
	if err != nil {
		return 0, fmt.Errorf("erro ao calcular ritmo de reservas: %w", err)
	}

	return float64(len(bookings)) / bookingPaceWindowDays, nil
}

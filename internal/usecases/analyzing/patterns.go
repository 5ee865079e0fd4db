package analyzing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	velocityWindow        = 7
	acceleratingThreshold = 1.1
	deceleratingThreshold = 0.9
	noBookingData         = "no booking data found"
)

// Patterns resume as reservas criadas em [hoje - daysBack, hoje]; categoria vazia considera todas
func (s *Service) Patterns(ctx context.Context, category string, daysBack int) (*domain.BookingPatterns, error) {
	if daysBack <= 0 {
		return nil, NewAnalysisError(ErrInvalidDaysBack, apiErrors.ErrInvalidRequest, fmt.Sprintf("days_back=%d", daysBack))
	}

	if category != "" {
		roomCategory, err := s.categoryRepo.GetByName(ctx, category)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar categoria")
		}
		if roomCategory == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, category)
		}
	}

	end := s.today()
	start := end.AddDate(0, 0, -daysBack)

	bookings, err := s.bookingRepo.GetCreatedBetween(ctx, category, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar reservas do período")
	}

	patterns := &domain.BookingPatterns{
		Category:            category,
		StartDate:           start,
		EndDate:             end,
		ChannelDistribution: map[string]int{},
		DayOfWeekPattern:    map[string]int{},
		SeasonalPattern:     map[string]int{},
		VelocityTrend:       domain.VelocityInsufficientData,
	}

	if len(bookings) == 0 {
		patterns.Message = noBookingData
		return patterns, nil
	}

	leadTimes := make([]float64, 0, len(bookings))
	rates := make([]float64, 0, len(bookings))
	dailyBookings := map[time.Time]int{}

	for _, booking := range bookings {
		leadTime := booking.LeadTimeDays()
		leadTimes = append(leadTimes, float64(leadTime))
		rates = append(rates, booking.Rate)

		addLeadTime(&patterns.LeadTimeDistribution, leadTime)
		patterns.ChannelDistribution[booking.Channel]++
		patterns.DayOfWeekPattern[booking.ArrivalDate.Weekday().String()]++
		patterns.SeasonalPattern[booking.ArrivalDate.Month().String()]++
		dailyBookings[utils.DateOnly(booking.CreatedAt)]++
	}

	patterns.TotalBookings = len(bookings)
	patterns.AvgLeadTime = stat.Mean(leadTimes, nil)
	patterns.AvgRate = stat.Mean(rates, nil)
	if len(rates) > 1 {
		patterns.RateVolatility = stat.StdDev(rates, nil)
	}

	counts := dailyCounts(dailyBookings)
	patterns.AvgDailyBookings = stat.Mean(counts, nil)
	patterns.VelocityTrend = velocityTrend(counts)

	if category == "" {
		patterns.CategoryPerformance = categoryPerformance(bookings)
	}

	return patterns, nil
}

func addLeadTime(distribution *domain.LeadTimeDistribution, leadTime int) {
	switch {
	case leadTime <= 0:
		distribution.SameDay++
	case leadTime <= 7:
		distribution.OneToSeven++
	case leadTime <= 30:
		distribution.EightToThirty++
	default:
		distribution.ThirtyOnePlus++
	}
}

// dailyCounts devolve a quantidade de reservas por dia de criação, em ordem cronológica
func dailyCounts(daily map[time.Time]int) []float64 {
	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	counts := make([]float64, len(days))
	for i, day := range days {
		counts[i] = float64(daily[day])
	}
	return counts
}

// velocityTrend compara a média dos 7 dias mais recentes com a dos 7 primeiros
func velocityTrend(counts []float64) domain.VelocityTrend {
	if len(counts) < velocityWindow {
		return domain.VelocityInsufficientData
	}

	earlier := stat.Mean(counts[:velocityWindow], nil)
	recent := stat.Mean(counts[len(counts)-velocityWindow:], nil)

	switch {
	case recent > earlier*acceleratingThreshold:
		return domain.VelocityAccelerating
	case recent < earlier*deceleratingThreshold:
		return domain.VelocityDecelerating
	default:
		return domain.VelocityStable
	}
}

func categoryPerformance(bookings []*domain.Booking) map[string]*domain.CategoryPerformance {
	rates := map[string][]float64{}
	leadTimes := map[string][]float64{}

	for _, booking := range bookings {
		rates[booking.Category] = append(rates[booking.Category], booking.Rate)
		leadTimes[booking.Category] = append(leadTimes[booking.Category], float64(booking.LeadTimeDays()))
	}

	performance := make(map[string]*domain.CategoryPerformance, len(rates))
	for category, categoryRates := range rates {
		performance[category] = &domain.CategoryPerformance{
			Bookings:    len(categoryRates),
			AvgRate:     stat.Mean(categoryRates, nil),
			AvgLeadTime: stat.Mean(leadTimes[category], nil),
		}
	}
	return performance
}

package forecasting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	minOverallMean = 0.01

	minTrendPoints = 7
	trendScale     = 10.0
	minTrendFactor = 0.8
	maxTrendFactor = 1.2

	sameDayLeadTimeFactor = 1.10
	shortLeadTimeFactor   = 1.05
	longLeadTimeFactor    = 0.95

	competitorPremiumRatio  = 1.10
	competitorDiscountRatio = 0.90
	competitorBoostFactor   = 1.05
	competitorDragFactor    = 0.95

	maxEventFactor = 1.5

	minConfidence        = 0.3
	maxConfidencePenalty = 0.7
)

func occupancies(history []*domain.OccupancyPoint) []float64 {
	values := make([]float64, len(history))
	for i, point := range history {
		values[i] = point.Occupancy
	}
	return values
}

// groupRatio divide a média do grupo que contém o alvo pela média geral
func groupRatio(history []*domain.OccupancyPoint, inGroup func(time.Time) bool) float64 {
	if len(history) == 0 {
		return 1.0
	}

	group := make([]float64, 0)
	for _, point := range history {
		if inGroup(point.Date) {
			group = append(group, point.Occupancy)
		}
	}

	if len(group) == 0 {
		return 1.0
	}

	overall := stat.Mean(occupancies(history), nil)
	return stat.Mean(group, nil) / math.Max(overall, minOverallMean)
}

func seasonalityFactor(target time.Time, history []*domain.OccupancyPoint) float64 {
	return groupRatio(history, func(date time.Time) bool {
		return date.Month() == target.Month()
	})
}

func dayOfWeekFactor(target time.Time, history []*domain.OccupancyPoint) float64 {
	return groupRatio(history, func(date time.Time) bool {
		return date.Weekday() == target.Weekday()
	})
}

// trendFactor usa a inclinação da regressão linear da ocupação sobre o índice cronológico
func trendFactor(history []*domain.OccupancyPoint) float64 {
	if len(history) < minTrendPoints {
		return 1.0
	}

	x := make([]float64, len(history))
	for i := range history {
		x[i] = float64(i)
	}

	_, slope := stat.LinearRegression(x, occupancies(history), nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 1.0
	}

	return utils.Clip(1.0+slope*trendScale, minTrendFactor, maxTrendFactor)
}

// leadTimeFactor compara a antecedência do alvo com a média histórica da categoria
func leadTimeFactor(leadTimeDays int, recentBookings []*domain.Booking) float64 {
	if leadTimeDays <= 0 {
		return sameDayLeadTimeFactor
	}

	if len(recentBookings) == 0 {
		return 1.0
	}

	leadTimes := make([]float64, len(recentBookings))
	for i, booking := range recentBookings {
		leadTimes[i] = float64(booking.LeadTimeDays())
	}
	avgLeadTime := stat.Mean(leadTimes, nil)

	switch lead := float64(leadTimeDays); {
	case lead < avgLeadTime*0.5:
		return shortLeadTimeFactor
	case lead > avgLeadTime*2:
		return longLeadTimeFactor
	}

	return 1.0
}

// CompetitorIndex é a mediana das tarifas disponíveis dividida pela tarifa base; 1.0 sem dados
func CompetitorIndex(rates []*domain.CompetitorRate, baseRate float64) float64 {
	available := domain.AvailableRates(rates)
	if len(available) == 0 || baseRate <= 0 {
		return 1.0
	}

	return Median(available) / baseRate
}

func competitorFactor(competitorIndex float64) float64 {
	switch {
	case competitorIndex > competitorPremiumRatio:
		return competitorBoostFactor
	case competitorIndex < competitorDiscountRatio:
		return competitorDragFactor
	}
	return 1.0
}

func eventFactor(event *domain.EventMultiplier) float64 {
	return math.Min(event.MultiplierOrDefault(), maxEventFactor)
}

// confidence cai com a variância populacional da ocupação histórica
func confidence(history []*domain.OccupancyPoint) float64 {
	if len(history) < minTrendPoints {
		return minConfidence
	}

	variance := stat.PopVariance(occupancies(history), nil)
	return math.Max(minConfidence, 1.0-math.Min(variance*2, maxConfidencePenalty))
}

// Median retorna a mediana; com quantidade par, a média dos dois valores centrais
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[middle-1] + sorted[middle]) / 2
	}
	return sorted[middle]
}

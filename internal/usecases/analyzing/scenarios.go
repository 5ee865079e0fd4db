package analyzing

import (
	"context"
	"math"
	"time"

	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
)

type scenarioSpec struct {
	name        domain.ScenarioName
	multiplier  float64
	probability float64
	description string
}

// As probabilidades são constantes e somam 1.0
var scenarioSpecs = []scenarioSpec{
	{name: domain.ScenarioLow, multiplier: 0.8, probability: 0.2, description: "Market downturn, increased competition"},
	{name: domain.ScenarioBase, multiplier: 1.0, probability: 0.6, description: "Expected market conditions"},
	{name: domain.ScenarioHigh, multiplier: 1.3, probability: 0.2, description: "Strong market, limited competition"},
}

func (s *Service) Scenarios(ctx context.Context, category string, targetDate time.Time) (*domain.ScenarioSet, error) {
	if targetDate.IsZero() {
		return nil, NewAnalysisError(ErrInvalidDate, apiErrors.ErrMissingRequiredData, "date is required")
	}

	roomCategory, err := forecasting.RequireCategory(ctx, s.categoryRepo, category)
	if err != nil {
		return nil, err
	}

	forecast, err := s.forecaster.Forecast(ctx, category, targetDate, s.useModel)
	if err != nil {
		return nil, err
	}

	return BuildScenarios(roomCategory, forecast), nil
}

// BuildScenarios deriva os cenários low/base/high a partir de uma previsão base
func BuildScenarios(category *domain.RoomCategory, forecast *domain.Forecast) *domain.ScenarioSet {
	base := forecast.ForecastedDemand

	set := &domain.ScenarioSet{
		Category:     category.Name,
		TargetDate:   forecast.TargetDate,
		BaseForecast: base,
		ModelUsed:    forecast.ModelUsed,
		Scenarios:    make([]*domain.Scenario, 0, len(scenarioSpecs)),
	}

	for _, spec := range scenarioSpecs {
		demand := math.Min(base*spec.multiplier, 1.0)
		set.Scenarios = append(set.Scenarios, &domain.Scenario{
			Name:          spec.name,
			Demand:        demand,
			Probability:   spec.probability,
			Description:   spec.description,
			RevenueImpact: revenueImpact(category, demand, base),
		})
	}

	return set
}

// revenueImpact projeta a receita como demanda × inventário × tarifa base
func revenueImpact(category *domain.RoomCategory, scenarioDemand, baseDemand float64) domain.RevenueImpact {
	rooms := float64(category.InventoryCount)

	baseRevenue := baseDemand * rooms * category.BaseRate
	scenarioRevenue := scenarioDemand * rooms * category.BaseRate
	difference := scenarioRevenue - baseRevenue

	return domain.RevenueImpact{
		BaseRevenue:       baseRevenue,
		ScenarioRevenue:   scenarioRevenue,
		RevenueDifference: difference,
		PercentageImpact:  difference / math.Max(baseRevenue, 1) * 100,
	}
}

package pricing

import (
	"fmt"
	"math"

	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

// Result é a saída do cálculo puro de preço
type Result struct {
	Components domain.PriceComponents
	RawPrice   float64
	FinalPrice float64
	Floor      float64
	Ceiling    float64
}

// Calculate aplica a fórmula multiplicativa e limita o preço ao intervalo [piso, teto].
// Piso, teto e preço final são arredondados para centavos; o arredondamento é
// monotônico, então piso <= preço <= teto se mantém.
func Calculate(inputs domain.PriceInputs, coefficients domain.Coefficients) (*Result, error) {
	if !isFinite(inputs.Floor) || !isFinite(inputs.Ceiling) {
		return nil, fmt.Errorf("%w: floor=%v ceiling=%v", ErrInvalidBounds, inputs.Floor, inputs.Ceiling)
	}

	floor := utils.RoundMoney(inputs.Floor)
	ceiling := utils.RoundMoney(inputs.Ceiling)
	if floor >= ceiling {
		return nil, fmt.Errorf("%w: floor=%.2f ceiling=%.2f", ErrInvalidBounds, floor, ceiling)
	}

	components := domain.PriceComponents{
		ForecastedDemand: inputs.ForecastedDemand,
		CompetitorIndex:  inputs.CompetitorIndex,
		EventMultiplier:  inputs.EventMultiplier,
		TimeFactor:       timeFactor(inputs.LeadTimeDays, coefficients.MaxLeadTime),
	}

	components.DemandFactor = 1 + coefficients.Alpha*(inputs.ForecastedDemand-coefficients.BaselineDemand)
	components.CompetitorFactor = 1 + coefficients.Beta*(inputs.CompetitorIndex-1)
	components.EventFactor = 1 + coefficients.Delta*(inputs.EventMultiplier-1)
	components.TimeDiscountFactor = 1 - coefficients.Gamma*components.TimeFactor

	raw := inputs.BaseRate *
		components.DemandFactor *
		components.CompetitorFactor *
		components.EventFactor *
		components.TimeDiscountFactor

	// decimal não representa NaN nem infinito
	if !isFinite(raw) {
		return nil, fmt.Errorf("%w: raw=%v", ErrNonFinitePrice, raw)
	}

	return &Result{
		Components: components,
		RawPrice:   raw,
		FinalPrice: utils.Clip(utils.RoundMoney(raw), floor, ceiling),
		Floor:      floor,
		Ceiling:    ceiling,
	}, nil
}

// timeFactor vale no máximo 10% independentemente do horizonte máximo
func timeFactor(leadTimeDays, maxLeadTime int) float64 {
	if leadTimeDays <= 0 {
		return 0
	}
	if maxLeadTime <= 0 {
		maxLeadTime = domain.DefaultMaxLeadTime
	}

	share := math.Min(float64(leadTimeDays)/float64(maxLeadTime), 1)
	return share * domain.MaxTimeDiscountShare
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

var defaultCoefficients = domain.Coefficients{
	Alpha:          0.3,
	Beta:           0.25,
	Gamma:          0.02,
	Delta:          1.0,
	BaselineDemand: 0.75,
	MaxLeadTime:    365,
}

func baselineInputs() domain.PriceInputs {
	return domain.PriceInputs{
		BaseRate:         280,
		ForecastedDemand: 0.75,
		CompetitorIndex:  1.0,
		EventMultiplier:  1.0,
		LeadTimeDays:     10,
		Floor:            196,
		Ceiling:          420,
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		inputs       func() domain.PriceInputs
		coefficients domain.Coefficients
		validate     func(t *testing.T, result *Result, err error)
	}{
		{
			name:         "demanda no baseline sem evento",
			inputs:       baselineInputs,
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1.0, result.Components.DemandFactor)
				assert.Equal(t, 1.0, result.Components.CompetitorFactor)
				assert.Equal(t, 1.0, result.Components.EventFactor)
				assert.InDelta(t, 0.00274, result.Components.TimeFactor, 0.00001)
				assert.InDelta(t, 0.99995, result.Components.TimeDiscountFactor, 0.00001)
				assert.InDelta(t, 279.99, result.FinalPrice, 0.02)
				assert.Equal(t, 196.0, result.Floor)
				assert.Equal(t, 420.0, result.Ceiling)
			},
		},
		{
			name: "evento com multiplicador 1.25",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.EventMultiplier = 1.25
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1.25, result.Components.EventFactor)
				assert.InDelta(t, 349.98, result.RawPrice, 0.01)
				assert.Equal(t, 349.98, result.FinalPrice)
			},
		},
		{
			name: "preço acima do teto é limitado",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.EventMultiplier = 2.0
				inputs.ForecastedDemand = 1.0
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Greater(t, result.RawPrice, 420.0)
				assert.Equal(t, 420.0, result.FinalPrice)
			},
		},
		{
			name: "preço abaixo do piso é limitado",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.EventMultiplier = 0.5
				inputs.CompetitorIndex = 0.6
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Less(t, result.RawPrice, 196.0)
				assert.Equal(t, 196.0, result.FinalPrice)
			},
		},
		{
			name: "piso igual ao teto",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.Floor = 300
				inputs.Ceiling = 300
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				assert.ErrorIs(t, err, ErrInvalidBounds)
				assert.Nil(t, result)
			},
		},
		{
			name: "piso maior que o teto",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.Floor = 500
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				assert.ErrorIs(t, err, ErrInvalidBounds)
			},
		},
		{
			name: "data passada não aplica desconto",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.LeadTimeDays = -3
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.0, result.Components.TimeFactor)
				assert.Equal(t, 280.0, result.FinalPrice)
			},
		},
		{
			name: "alpha NaN não chega ao arredondamento",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.ForecastedDemand = 0.9
				return inputs
			},
			coefficients: func() domain.Coefficients {
				coefficients := defaultCoefficients
				coefficients.Alpha = math.NaN()
				return coefficients
			}(),
			validate: func(t *testing.T, result *Result, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrNonFinitePrice)
			},
		},
		{
			name: "alpha enorme estoura para infinito",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.ForecastedDemand = 0.9
				return inputs
			},
			coefficients: func() domain.Coefficients {
				coefficients := defaultCoefficients
				coefficients.Alpha = 1e308
				return coefficients
			}(),
			validate: func(t *testing.T, result *Result, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrNonFinitePrice)
			},
		},
		{
			name: "teto infinito",
			inputs: func() domain.PriceInputs {
				inputs := baselineInputs()
				inputs.Ceiling = math.Inf(1)
				return inputs
			},
			coefficients: defaultCoefficients,
			validate: func(t *testing.T, result *Result, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInvalidBounds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.inputs(), tt.coefficients)
			tt.validate(t, result, err)
		})
	}
}

func TestCalculateMonotonicInDemand(t *testing.T) {
	previous := 0.0
	for _, demand := range []float64{0.1, 0.3, 0.5, 0.75, 0.9, 1.0} {
		inputs := baselineInputs()
		inputs.ForecastedDemand = demand

		result, err := Calculate(inputs, defaultCoefficients)
		require.NoError(t, err)

		assert.Greater(t, result.RawPrice, previous, "demanda %.2f", demand)
		previous = result.RawPrice
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	inputs := baselineInputs()
	inputs.ForecastedDemand = 0.83
	inputs.CompetitorIndex = 1.07

	first, err := Calculate(inputs, defaultCoefficients)
	require.NoError(t, err)
	second, err := Calculate(inputs, defaultCoefficients)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateStaysWithinBounds(t *testing.T) {
	for _, demand := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for _, event := range []float64{0.5, 1, 1.5, 3} {
			for _, lead := range []int{0, 30, 180, 365, 900} {
				inputs := baselineInputs()
				inputs.ForecastedDemand = demand
				inputs.EventMultiplier = event
				inputs.LeadTimeDays = lead

				result, err := Calculate(inputs, defaultCoefficients)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, result.FinalPrice, result.Floor)
				assert.LessOrEqual(t, result.FinalPrice, result.Ceiling)
			}
		}
	}
}

func TestTimeFactor(t *testing.T) {
	tests := []struct {
		name        string
		leadTime    int
		maxLeadTime int
		expected    float64
	}{
		{name: "mesmo dia", leadTime: 0, maxLeadTime: 365, expected: 0},
		{name: "metade do horizonte", leadTime: 100, maxLeadTime: 200, expected: 0.05},
		{name: "horizonte completo", leadTime: 365, maxLeadTime: 365, expected: 0.1},
		{name: "além do horizonte limita em 10%", leadTime: 1000, maxLeadTime: 365, expected: 0.1},
		{name: "horizonte inválido usa 365", leadTime: 365, maxLeadTime: 0, expected: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, timeFactor(tt.leadTime, tt.maxLeadTime), 1e-9)
		})
	}
}

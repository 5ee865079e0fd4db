package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultChannel       = "ALL"
	SourcePricingEngine  = "pricing_engine"
	SourceScheduler      = "scheduler"
	DefaultBaseline      = 0.75
	DefaultMaxLeadTime   = 365
	DefaultFloorRatio    = 0.7
	DefaultCeilingRatio  = 1.5
	MaxTimeDiscountShare = 0.1
)

// Coefficients são os coeficientes efetivamente usados em um cálculo
type Coefficients struct {
	Alpha          float64 `json:"alpha"`
	Beta           float64 `json:"beta"`
	Gamma          float64 `json:"gamma"`
	Delta          float64 `json:"delta"`
	BaselineDemand float64 `json:"baseline_demand"`
	MaxLeadTime    int     `json:"max_lead_time"`
}

// CoefficientOverrides é a configuração opcional por chamada; campos nil mantêm o padrão
type CoefficientOverrides struct {
	Alpha *float64 `json:"alpha,omitempty"`
	Beta  *float64 `json:"beta,omitempty"`
	Gamma *float64 `json:"gamma,omitempty"`
	Delta *float64 `json:"delta,omitempty"`
}

// Validate garante que toda sobrescrita informada é um número finito
func (o *CoefficientOverrides) Validate() error {
	if o == nil {
		return nil
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"alpha", o.Alpha},
		{"beta", o.Beta},
		{"gamma", o.Gamma},
		{"delta", o.Delta},
	}
	for _, field := range fields {
		if field.value != nil && (math.IsNaN(*field.value) || math.IsInf(*field.value, 0)) {
			return fmt.Errorf("%w: %s=%v", ErrNonFiniteCoefficient, field.name, *field.value)
		}
	}
	return nil
}

// Apply devolve uma cópia dos coeficientes com as sobrescritas aplicadas
func (c Coefficients) Apply(overrides *CoefficientOverrides) Coefficients {
	if overrides == nil {
		return c
	}
	if overrides.Alpha != nil {
		c.Alpha = *overrides.Alpha
	}
	if overrides.Beta != nil {
		c.Beta = *overrides.Beta
	}
	if overrides.Gamma != nil {
		c.Gamma = *overrides.Gamma
	}
	if overrides.Delta != nil {
		c.Delta = *overrides.Delta
	}
	return c
}

// PriceInputs são os insumos imutáveis de um cálculo de preço
type PriceInputs struct {
	BaseRate         float64 `json:"base_rate"`
	ForecastedDemand float64 `json:"forecasted_demand"`
	CompetitorIndex  float64 `json:"competitor_index"`
	EventMultiplier  float64 `json:"event_multiplier"`
	LeadTimeDays     int     `json:"lead_time_days"`
	Floor            float64 `json:"floor"`
	Ceiling          float64 `json:"ceiling"`
}

type PriceComponents struct {
	ForecastedDemand   float64 `json:"forecasted_demand"`
	CompetitorIndex    float64 `json:"competitor_index"`
	EventMultiplier    float64 `json:"event_multiplier"`
	TimeFactor         float64 `json:"time_factor"`
	DemandFactor       float64 `json:"demand_factor"`
	CompetitorFactor   float64 `json:"competitor_factor"`
	EventFactor        float64 `json:"event_factor"`
	TimeDiscountFactor float64 `json:"time_discount_factor"`
}

// PriceQuote é o detalhamento completo de um preço calculado
type PriceQuote struct {
	Category       string          `json:"category"`
	Date           time.Time       `json:"date"`
	BaseRate       float64         `json:"base_rate"`
	RawPrice       float64         `json:"raw_price"`
	FinalPrice     float64         `json:"final_price"`
	Floor          float64         `json:"floor"`
	Ceiling        float64         `json:"ceiling"`
	LeadTimeDays   int             `json:"lead_time_days"`
	Components     PriceComponents `json:"components"`
	Coefficients   Coefficients    `json:"coefficients"`
	ForecastSource string          `json:"forecast_source"`
}

// Record converte a cotação em um registro de auditoria
func (q *PriceQuote) Record(channel, source, runID string) *PriceRecord {
	if channel == "" {
		channel = DefaultChannel
	}
	return &PriceRecord{
		Date:          q.Date,
		Category:      q.Category,
		Channel:       channel,
		PublishedRate: q.FinalPrice,
		Floor:         q.Floor,
		Ceiling:       q.Ceiling,
		Source:        source,
		RunID:         runID,
		Coefficients:  q.Coefficients,
	}
}

// PriceRecord é a trilha de auditoria (append-only) de todo preço publicado
type PriceRecord struct {
	ID            int64        `json:"id"`
	Date          time.Time    `json:"date"`
	Category      string       `json:"category"`
	Channel       string       `json:"channel"`
	PublishedRate float64      `json:"published_rate"`
	Floor         float64      `json:"floor"`
	Ceiling       float64      `json:"ceiling"`
	Source        string       `json:"source"`
	RunID         string       `json:"run_id,omitempty"`
	Coefficients  Coefficients `json:"coefficients"`
	CreatedAt     time.Time    `json:"created_at"`
}

type PriceSummary struct {
	Category      string        `json:"category"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	BaseRate      float64       `json:"base_rate"`
	AvgPrice      float64       `json:"avg_price"`
	MinPrice      float64       `json:"min_price"`
	MaxPrice      float64       `json:"max_price"`
	PriceVariance float64       `json:"price_variance"` // Desvio padrão amostral dos preços finais
	DailyPrices   []*PriceQuote `json:"daily_prices"`
}

package domain

import "time"

// ModelUsed identifica qual estimador produziu a demanda base
type ModelUsed string

const (
	ModelFallback ModelUsed = "fallback"
	ModelTrained  ModelUsed = "trained"
	ModelSmoothed ModelUsed = "smoothed"
)

// OccupancyPoint é um ponto diário da série histórica de ocupação
type OccupancyPoint struct {
	Date         time.Time `json:"date"`
	Occupancy    float64   `json:"occupancy"`
	BookingCount int       `json:"booking_count"`
}

type ForecastComponents struct {
	BaseDemand        float64 `json:"base_demand"`
	SeasonalityFactor float64 `json:"seasonality_factor"`
	TrendFactor       float64 `json:"trend_factor"`
	DayOfWeekFactor   float64 `json:"day_of_week_factor"`
	LeadTimeFactor    float64 `json:"lead_time_factor"`
	CompetitorFactor  float64 `json:"competitor_factor"`
	EventFactor       float64 `json:"event_factor"`
}

// Product multiplica a demanda base por todos os fatores
func (c ForecastComponents) Product() float64 {
	return c.BaseDemand *
		c.SeasonalityFactor *
		c.TrendFactor *
		c.DayOfWeekFactor *
		c.CompetitorFactor *
		c.EventFactor *
		c.LeadTimeFactor
}

// Forecast é o resultado auditável de uma previsão de demanda
type Forecast struct {
	Category         string             `json:"category"`
	TargetDate       time.Time          `json:"target_date"`
	ForecastedDemand float64            `json:"forecasted_demand"`
	Components       ForecastComponents `json:"components"`
	Confidence       float64            `json:"confidence"`
	ModelUsed        ModelUsed          `json:"model_used"`
	ModelReason      string             `json:"model_reason,omitempty"`
	HistoryPoints    int                `json:"history_points"`
	BookingPace      float64            `json:"booking_pace"`
	CompetitorIndex  float64            `json:"competitor_index"`
}

// Record converte a previsão no registro persistido
func (f *Forecast) Record() *ForecastRecord {
	return &ForecastRecord{
		Date:             f.TargetDate,
		Category:         f.Category,
		ForecastedDemand: f.ForecastedDemand,
		BookingPace:      f.BookingPace,
		CompetitorIndex:  f.CompetitorIndex,
		Confidence:       f.Confidence,
		ModelUsed:        f.ModelUsed,
	}
}

// ForecastRecord é um cache recalculável, um registro lógico por (categoria, data)
type ForecastRecord struct {
	ID               int64     `json:"id"`
	Date             time.Time `json:"date"`
	Category         string    `json:"category"`
	ForecastedDemand float64   `json:"forecasted_demand"`
	BookingPace      float64   `json:"booking_pace"`
	CompetitorIndex  float64   `json:"competitor_index"`
	Confidence       float64   `json:"confidence"`
	ModelUsed        ModelUsed `json:"model_used"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

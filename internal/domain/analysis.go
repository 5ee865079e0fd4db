package domain

import "time"

type ScenarioName string

const (
	ScenarioLow  ScenarioName = "low"
	ScenarioBase ScenarioName = "base"
	ScenarioHigh ScenarioName = "high"
)

type RevenueImpact struct {
	BaseRevenue       float64 `json:"base_revenue"`
	ScenarioRevenue   float64 `json:"scenario_revenue"`
	RevenueDifference float64 `json:"revenue_difference"`
	PercentageImpact  float64 `json:"percentage_impact"`
}

type Scenario struct {
	Name          ScenarioName  `json:"name"`
	Demand        float64       `json:"demand"`
	Probability   float64       `json:"probability"`
	Description   string        `json:"description"`
	RevenueImpact RevenueImpact `json:"revenue_impact"`
}

type ScenarioSet struct {
	Category     string      `json:"category"`
	TargetDate   time.Time   `json:"target_date"`
	BaseForecast float64     `json:"base_forecast"`
	ModelUsed    ModelUsed   `json:"model_used"`
	Scenarios    []*Scenario `json:"scenarios"`
}

// TotalProbability soma as probabilidades de todos os cenários
func (s *ScenarioSet) TotalProbability() float64 {
	total := 0.0
	for _, scenario := range s.Scenarios {
		total += scenario.Probability
	}
	return total
}

type AccuracyReport struct {
	Category        string    `json:"category"`
	Date            time.Time `json:"date"`
	Available       bool      `json:"available"`
	Message         string    `json:"message,omitempty"`
	PredictedDemand float64   `json:"predicted_demand"`
	ActualOccupancy float64   `json:"actual_occupancy"`
	AbsoluteError   float64   `json:"absolute_error"`
	PercentageError float64   `json:"percentage_error"`
	AccuracyScore   float64   `json:"accuracy_score"`
}

type VelocityTrend string

const (
	VelocityAccelerating     VelocityTrend = "accelerating"
	VelocityDecelerating     VelocityTrend = "decelerating"
	VelocityStable           VelocityTrend = "stable"
	VelocityInsufficientData VelocityTrend = "insufficient_data"
)

type LeadTimeDistribution struct {
	SameDay       int `json:"same_day"`
	OneToSeven    int `json:"1-7_days"`
	EightToThirty int `json:"8-30_days"`
	ThirtyOnePlus int `json:"31+_days"`
}

type CategoryPerformance struct {
	Bookings    int     `json:"bookings"`
	AvgRate     float64 `json:"avg_rate"`
	AvgLeadTime float64 `json:"avg_lead_time"`
}

type BookingPatterns struct {
	Category             string                          `json:"category,omitempty"`
	StartDate            time.Time                       `json:"start_date"`
	EndDate              time.Time                       `json:"end_date"`
	Message              string                          `json:"message,omitempty"`
	TotalBookings        int                             `json:"total_bookings"`
	AvgLeadTime          float64                         `json:"avg_lead_time"`
	LeadTimeDistribution LeadTimeDistribution            `json:"lead_time_distribution"`
	ChannelDistribution  map[string]int                  `json:"channel_distribution"`
	DayOfWeekPattern     map[string]int                  `json:"day_of_week_pattern"` // chave: nome do dia em inglês
	SeasonalPattern      map[string]int                  `json:"seasonal_pattern"`    // chave: nome do mês em inglês
	AvgRate              float64                         `json:"avg_rate"`
	RateVolatility       float64                         `json:"rate_volatility"`
	AvgDailyBookings     float64                         `json:"avg_daily_bookings"`
	VelocityTrend        VelocityTrend                   `json:"booking_velocity_trend"`
	CategoryPerformance  map[string]*CategoryPerformance `json:"room_type_performance,omitempty"`
}

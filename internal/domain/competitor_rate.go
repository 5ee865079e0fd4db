package domain

import "time"

// CompetitorRate é uma linha por (concorrente, categoria, data)
type CompetitorRate struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	CompetitorID string    `json:"competitor_id"`
	Category     string    `json:"category"`
	Rate         float64   `json:"rate"`
	Available    bool      `json:"available"`
	ScrapedAt    time.Time `json:"scraped_at"`
}

// AvailableRates filtra as tarifas de concorrentes com disponibilidade
func AvailableRates(rates []*CompetitorRate) []float64 {
	available := make([]float64, 0, len(rates))
	for _, rate := range rates {
		if rate != nil && rate.Available {
			available = append(available, rate.Rate)
		}
	}
	return available
}

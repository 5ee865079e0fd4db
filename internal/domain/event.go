package domain

import "time"

type EventMultiplier struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Multiplier  float64   `json:"multiplier"`
	Description string    `json:"description"`
}

// MultiplierOrDefault retorna 1.0 quando não há evento na data
func (e *EventMultiplier) MultiplierOrDefault() float64 {
	if e == nil || e.Multiplier <= 0 {
		return 1.0
	}
	return e.Multiplier
}

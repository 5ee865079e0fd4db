package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64         `json:"id"`
	Category      string        `json:"category"`
	ArrivalDate   time.Time     `json:"arrival_date"`
	DepartureDate time.Time     `json:"departure_date"`
	Rate          float64       `json:"rate"`
	Channel       string        `json:"channel"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// LeadTimeDays retorna os dias entre a criação da reserva e a chegada
func (b *Booking) LeadTimeDays() int {
	created := time.Date(b.CreatedAt.Year(), b.CreatedAt.Month(), b.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
	arrival := time.Date(b.ArrivalDate.Year(), b.ArrivalDate.Month(), b.ArrivalDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(arrival.Sub(created).Hours() / 24)
}

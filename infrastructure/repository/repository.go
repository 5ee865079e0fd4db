// Package repository implementa o acesso ao Postgres das entidades do motor de receita.
package repository

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

//go:generate mockgen -source=room_category.go -destination=mocks/room_category.go -package=mocks
//go:generate mockgen -source=booking.go -destination=mocks/booking.go -package=mocks
//go:generate mockgen -source=competitor_rate.go -destination=mocks/competitor_rate.go -package=mocks
//go:generate mockgen -source=event.go -destination=mocks/event.go -package=mocks
//go:generate mockgen -source=forecast.go -destination=mocks/forecast.go -package=mocks
//go:generate mockgen -source=price.go -destination=mocks/price.go -package=mocks
//go:generate mockgen -source=api_client.go -destination=mocks/api_client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func dateParam(t time.Time) string {
	return t.Format(time.DateOnly)
}

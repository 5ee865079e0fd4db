package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 2, 27, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)

	assert.Len(t, dates, 5)
	assert.Equal(t, time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), dates[2])
	assert.Equal(t, end, dates[4])

	assert.Empty(t, DateRange(end, start))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 14, DaysBetween(start, end))
	assert.Equal(t, -14, DaysBetween(end, start))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	assert.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("15/06/2024")
	assert.Error(t, err)
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "já arredondado", amount: 210, expected: 210},
		{name: "arredonda para cima", amount: 279.985, expected: 279.99},
		{name: "arredonda para baixo", amount: 349.9841, expected: 349.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundMoney(tt.amount), 1e-9)
		})
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.8, Clip(0.5, 0.8, 1.2))
	assert.Equal(t, 1.2, Clip(1.5, 0.8, 1.2))
	assert.Equal(t, 1.0, Clip(1.0, 0.8, 1.2))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsWeekend(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsWeekend(time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 12)
}

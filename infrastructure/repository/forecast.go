package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const forecastsTable = "demand_forecasts"

type ForecastRepository interface {
	// Upsert grava a previsão da (categoria, data); a última escrita prevalece
	Upsert(ctx context.Context, record *domain.ForecastRecord) error
	GetByCategoryAndDate(ctx context.Context, category string, date time.Time) (*domain.ForecastRecord, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) Upsert(ctx context.Context, record *domain.ForecastRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(forecastsTable).
		Columns("date", "category", "forecasted_demand", "booking_pace", "competitor_index", "confidence", "model_used").
		Values(
			dateParam(record.Date),
			record.Category,
			record.ForecastedDemand,
			record.BookingPace,
			record.CompetitorIndex,
			record.Confidence,
			string(record.ModelUsed),
		).
		Suffix(`
			ON CONFLICT (category, date) DO UPDATE SET
				forecasted_demand = EXCLUDED.forecasted_demand,
				booking_pace = EXCLUDED.booking_pace,
				competitor_index = EXCLUDED.competitor_index,
				confidence = EXCLUDED.confidence,
				model_used = EXCLUDED.model_used,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao salvar previsão: %w", err)
	}

	return nil
}

func (r *forecastRepository) GetByCategoryAndDate(ctx context.Context, category string, date time.Time) (*domain.ForecastRecord, error) {
	query, args, err := squirrel.
		Select("id, date, category, forecasted_demand, booking_pace, competitor_index, confidence, model_used, created_at, updated_at").
		From(forecastsTable).
		Where(squirrel.Eq{"category": category, "date": dateParam(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var record domain.ForecastRecord
	var modelUsed string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.Date,
		&record.Category,
		&record.ForecastedDemand,
		&record.BookingPace,
		&record.CompetitorIndex,
		&record.Confidence,
		&modelUsed,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar previsão: %w", err)
	}
	record.ModelUsed = domain.ModelUsed(modelUsed)

	return &record, nil
}

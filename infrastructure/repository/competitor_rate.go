package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const competitorRatesTable = "competitor_rates cr"

type CompetitorRateRepository interface {
	GetByCategoryAndDate(ctx context.Context, category string, date time.Time) ([]*domain.CompetitorRate, error)
}

type competitorRateRepository struct {
	conn *postgres.Connection
}

func NewCompetitorRateRepository(conn *postgres.Connection) CompetitorRateRepository {
	return &competitorRateRepository{
		conn: conn,
	}
}

func (r *competitorRateRepository) GetByCategoryAndDate(ctx context.Context, category string, date time.Time) ([]*domain.CompetitorRate, error) {
	query, args, err := squirrel.
		Select("cr.id, cr.date, cr.competitor_id, cr.category, cr.rate, cr.available, cr.scraped_at").
		From(competitorRatesTable).
		Where(squirrel.Eq{"cr.category": category, "cr.date": dateParam(date)}).
		OrderBy("cr.competitor_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tarifas da concorrência: %w", err)
	}
	defer rows.Close()

	rates := make([]*domain.CompetitorRate, 0)
	for rows.Next() {
		var rate domain.CompetitorRate
		if err := rows.Scan(
			&rate.ID,
			&rate.Date,
			&rate.CompetitorID,
			&rate.Category,
			&rate.Rate,
			&rate.Available,
			&rate.ScrapedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear tarifa da concorrência: %w", err)
		}
		rates = append(rates, &rate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rates, nil
}

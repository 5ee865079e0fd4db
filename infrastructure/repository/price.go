package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const rateHistoryTable = "rate_history"

type PriceRepository interface {
	// Append insere os registros no histórico; nunca atualiza linhas existentes
	Append(ctx context.Context, records []*domain.PriceRecord) error
	ListByDateRange(ctx context.Context, category string, start, end time.Time) ([]*domain.PriceRecord, error)
}

type priceRepository struct {
	conn *postgres.Connection
}

func NewPriceRepository(conn *postgres.Connection) PriceRepository {
	return &priceRepository{
		conn: conn,
	}
}

func (r *priceRepository) Append(ctx context.Context, records []*domain.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(rateHistoryTable).
		Columns("date", "category", "channel", "published_rate", "floor", "ceiling", "source", "run_id", "coefficients").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		coefficients, err := json.Marshal(record.Coefficients)
		if err != nil {
			return fmt.Errorf("erro ao serializar coeficientes para JSON: %w", err)
		}

		builder = builder.Values(
			dateParam(record.Date),
			record.Category,
			record.Channel,
			record.PublishedRate,
			record.Floor,
			record.Ceiling,
			record.Source,
			record.RunID,
			coefficients,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar histórico de preços: %w", err)
	}

	return nil
}

func (r *priceRepository) ListByDateRange(ctx context.Context, category string, start, end time.Time) ([]*domain.PriceRecord, error) {
	query, args, err := squirrel.
		Select("id, date, category, channel, published_rate, floor, ceiling, source, run_id, coefficients, created_at").
		From(rateHistoryTable).
		Where(squirrel.Eq{"category": category}).
		Where(squirrel.GtOrEq{"date": dateParam(start)}).
		Where(squirrel.LtOrEq{"date": dateParam(end)}).
		OrderBy("date ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de preços: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.PriceRecord, 0)
	for rows.Next() {
		var record domain.PriceRecord
		var coefficients []byte
		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Category,
			&record.Channel,
			&record.PublishedRate,
			&record.Floor,
			&record.Ceiling,
			&record.Source,
			&record.RunID,
			&coefficients,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de preços: %w", err)
		}

		if len(coefficients) > 0 {
			if err := json.Unmarshal(coefficients, &record.Coefficients); err != nil {
				return nil, fmt.Errorf("erro ao deserializar coeficientes: %w", err)
			}
		}

		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

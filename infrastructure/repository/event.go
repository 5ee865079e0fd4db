package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const eventsTable = "events e"

type EventRepository interface {
	// GetByDate retorna nil quando não há evento na data
	GetByDate(ctx context.Context, date time.Time) (*domain.EventMultiplier, error)
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) GetByDate(ctx context.Context, date time.Time) (*domain.EventMultiplier, error) {
	query, args, err := squirrel.
		Select("e.id, e.date, e.name, e.multiplier, e.description").
		From(eventsTable).
		Where(squirrel.Eq{"e.date": dateParam(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var event domain.EventMultiplier
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&event.Date,
		&event.Name,
		&event.Multiplier,
		&event.Description,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}

	return &event, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const (
	bookingsTable  = "bookings b"
	bookingColumns = "b.id, b.category, b.arrival_date, b.departure_date, b.rate, b.channel, b.status, b.created_at"
)

type BookingRepository interface {
	// GetByArrivalRange retorna reservas confirmadas com chegada em [start, end]
	GetByArrivalRange(ctx context.Context, category string, start, end time.Time) ([]*domain.Booking, error)
	// GetCreatedBetween retorna reservas confirmadas criadas em [since, until); categoria vazia considera todas
	GetCreatedBetween(ctx context.Context, category string, since, until time.Time) ([]*domain.Booking, error)
	CountConfirmedArrivals(ctx context.Context, category string, date time.Time) (int, error)
}

type bookingRepository struct {
	conn *postgres.Connection
}

func NewBookingRepository(conn *postgres.Connection) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

func (r *bookingRepository) GetByArrivalRange(ctx context.Context, category string, start, end time.Time) ([]*domain.Booking, error) {
	query, args, err := squirrel.
		Select(bookingColumns).
		From(bookingsTable).
		Where(squirrel.Eq{"b.category": category, "b.status": string(domain.BookingStatusConfirmed)}).
		Where(squirrel.GtOrEq{"b.arrival_date": dateParam(start)}).
		Where(squirrel.LtOrEq{"b.arrival_date": dateParam(end)}).
		OrderBy("b.arrival_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args)
}

func (r *bookingRepository) GetCreatedBetween(ctx context.Context, category string, since, until time.Time) ([]*domain.Booking, error) {
	builder := squirrel.
		Select(bookingColumns).
		From(bookingsTable).
		Where(squirrel.Eq{"b.status": string(domain.BookingStatusConfirmed)}).
		Where(squirrel.GtOrEq{"b.created_at": since}).
		Where(squirrel.Lt{"b.created_at": until}).
		OrderBy("b.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		builder = builder.Where(squirrel.Eq{"b.category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args)
}

func (r *bookingRepository) CountConfirmedArrivals(ctx context.Context, category string, date time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(bookingsTable).
		Where(squirrel.Eq{
			"b.category":     category,
			"b.status":       string(domain.BookingStatusConfirmed),
			"b.arrival_date": dateParam(date),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar reservas confirmadas: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) query(ctx context.Context, query string, args []any) ([]*domain.Booking, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		var status string
		if err := rows.Scan(
			&booking.ID,
			&booking.Category,
			&booking.ArrivalDate,
			&booking.DepartureDate,
			&booking.Rate,
			&booking.Channel,
			&status,
			&booking.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear reserva: %w", err)
		}
		booking.Status = domain.BookingStatus(status)
		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return bookings, nil
}

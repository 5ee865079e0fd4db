package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const (
	roomCategoriesTable = "room_categories rc"
	roomCategoryColumns = "rc.id, rc.name, rc.capacity, rc.base_rate, COALESCE(i.count, 0), rc.created_at"
	inventoryJoin       = "inventory i ON i.room_category_id = rc.id"
)

type RoomCategoryRepository interface {
	GetByName(ctx context.Context, name string) (*domain.RoomCategory, error)
	List(ctx context.Context) ([]*domain.RoomCategory, error)
}

type roomCategoryRepository struct {
	conn *postgres.Connection
}

func NewRoomCategoryRepository(conn *postgres.Connection) RoomCategoryRepository {
	return &roomCategoryRepository{
		conn: conn,
	}
}

// GetByName retorna a categoria com o inventário físico; nil quando não existe
func (r *roomCategoryRepository) GetByName(ctx context.Context, name string) (*domain.RoomCategory, error) {
	query, args, err := squirrel.
		Select(roomCategoryColumns).
		From(roomCategoriesTable).
		LeftJoin(inventoryJoin).
		Where(squirrel.Eq{"rc.name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var category domain.RoomCategory
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Name,
		&category.Capacity,
		&category.BaseRate,
		&category.InventoryCount,
		&category.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar categoria %s: %w", name, err)
	}

	return &category, nil
}

func (r *roomCategoryRepository) List(ctx context.Context) ([]*domain.RoomCategory, error) {
	query, args, err := squirrel.
		Select(roomCategoryColumns).
		From(roomCategoriesTable).
		LeftJoin(inventoryJoin).
		OrderBy("rc.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.RoomCategory, 0)
	for rows.Next() {
		var category domain.RoomCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Capacity,
			&category.BaseRate,
			&category.InventoryCount,
			&category.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

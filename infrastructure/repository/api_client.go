package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/internal/domain"
)

const apiClientsTable = "api_clients"

type APIClientRepository interface {
	GetByClientID(ctx context.Context, clientID string) (*domain.APIClient, error)
	Create(ctx context.Context, client *domain.APIClient) error
}

type apiClientRepository struct {
	conn *postgres.Connection
}

func NewAPIClientRepository(conn *postgres.Connection) APIClientRepository {
	return &apiClientRepository{
		conn: conn,
	}
}

func (r *apiClientRepository) GetByClientID(ctx context.Context, clientID string) (*domain.APIClient, error) {
	query, args, err := squirrel.
		Select("id, client_id, name, secret_hash, role_id, active, created_at, updated_at").
		From(apiClientsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var client domain.APIClient
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.ClientID,
		&client.Name,
		&client.SecretHash,
		&client.RoleID,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cliente da API: %w", err)
	}

	return &client, nil
}

// Create insere o cliente e preenche ID e datas de criação
func (r *apiClientRepository) Create(ctx context.Context, client *domain.APIClient) error {
	query, args, err := squirrel.
		Insert(apiClientsTable).
		Columns("client_id", "name", "secret_hash", "role_id", "active").
		Values(client.ClientID, client.Name, client.SecretHash, client.RoleID, client.Active).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao criar cliente da API: %w", err)
	}

	return nil
}

// Package migrations aplica o schema do banco a partir dos arquivos SQL embutidos.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var files embed.FS

const versionTable = "schema_migrations"

// Migration é um arquivo SQL identificado pela versão no prefixo do nome
type Migration struct {
	Version string
	Name    string
	SQL     string
}

type Migrator struct {
	conn       *postgres.Connection
	migrations []*Migration
}

func NewMigrator(conn *postgres.Connection) (*Migrator, error) {
	migrations, err := Load(files)
	if err != nil {
		return nil, err
	}

	return &Migrator{conn: conn, migrations: migrations}, nil
}

// Load lê os arquivos .sql em ordem de versão
func Load(fsys fs.FS) ([]*Migration, error) {
	entries, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)

	migrations := make([]*Migration, 0, len(entries))
	for _, entry := range entries {
		content, err := fs.ReadFile(fsys, entry)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler migração %s: %w", entry, err)
		}

		base := strings.TrimSuffix(path.Base(entry), ".sql")
		version, name, found := strings.Cut(base, "_")
		if !found {
			return nil, fmt.Errorf("nome de migração inválido: %s", entry)
		}

		migrations = append(migrations, &Migration{Version: version, Name: name, SQL: string(content)})
	}

	return migrations, nil
}

// Up aplica as migrações pendentes, cada uma em sua própria transação.
// Retorna as versões aplicadas nesta execução.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if _, err := m.conn.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version     VARCHAR(20) PRIMARY KEY,
			name        VARCHAR(200) NOT NULL,
			applied_at  TIMESTAMP NOT NULL DEFAULT NOW()
		)`, versionTable)); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela de versões: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	executed := []string{}
	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}

		logrus.WithField("version", migration.Version).Infof("Aplicando migração %s", migration.Name)

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				fmt.Sprintf("INSERT INTO %s (version, name) VALUES ($1, $2)", versionTable),
				migration.Version, migration.Name)
			return err
		})
		if err != nil {
			return executed, fmt.Errorf("erro ao aplicar migração %s: %w", migration.Version, err)
		}

		executed = append(executed, migration.Version)
	}

	return executed, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := m.conn.QueryContext(ctx, fmt.Sprintf("SELECT version FROM %s", versionTable))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar versões aplicadas: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

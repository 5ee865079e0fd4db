package migrations

import (
	"context"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
)

func TestLoad(t *testing.T) {
	t.Run("arquivos embutidos em ordem", func(t *testing.T) {
		migrations, err := Load(files)
		require.NoError(t, err)
		require.Len(t, migrations, 4)

		assert.Equal(t, "0001", migrations[0].Version)
		assert.Equal(t, "reference_data", migrations[0].Name)
		assert.Equal(t, "0004", migrations[3].Version)
		assert.Contains(t, migrations[2].SQL, "demand_forecasts")
	})

	t.Run("nome sem versão", func(t *testing.T) {
		fsys := fstest.MapFS{"sql/schema.sql": {Data: []byte("SELECT 1")}}

		_, err := Load(fsys)
		assert.Error(t, err)
	})
}

func TestMigratorUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrator := &Migrator{
		conn: &postgres.Connection{DB: db},
		migrations: []*Migration{
			{Version: "0001", Name: "first", SQL: "CREATE TABLE a (id INT)"},
			{Version: "0002", Name: "second", SQL: "CREATE TABLE b (id INT)"},
		},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002", "second").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	executed, err := migrator.Up(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"0002"}, executed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

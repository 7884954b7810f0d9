package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashkit-cli/flashkit/schemas"
)

func TestMigrate(t *testing.T) {
	t.Run("applies migrations in name order", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()
		db := sqlx.NewDb(mockDB, "mysql")

		migrations := fstest.MapFS{
			"migrations/002_add_index.sql":    {Data: []byte("CREATE INDEX idx ON review_logs (quality)")},
			"migrations/001_create_table.sql": {Data: []byte("CREATE TABLE review_logs (id BIGINT)")},
		}

		mock.ExpectExec("CREATE TABLE review_logs").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX idx").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, Migrate(context.Background(), db, migrations))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops on the first failing migration", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()
		db := sqlx.NewDb(mockDB, "mysql")

		migrations := fstest.MapFS{
			"migrations/001_create_table.sql": {Data: []byte("CREATE TABLE review_logs (id BIGINT)")},
			"migrations/002_add_index.sql":    {Data: []byte("CREATE INDEX idx ON review_logs (quality)")},
		}

		mock.ExpectExec("CREATE TABLE review_logs").WillReturnError(assert.AnError)

		err = Migrate(context.Background(), db, migrations)
		assert.ErrorContains(t, err, "apply migration 001_create_table.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("embedded migrations are readable", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()
		db := sqlx.NewDb(mockDB, "mysql")

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS review_logs").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, Migrate(context.Background(), db, schemas.Migrations))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

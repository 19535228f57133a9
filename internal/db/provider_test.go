package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"foodshare/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	_, err := NewProvider("mysql", "food.db")
	assert.Error(t, err)

	_, err = NewProvider(DriverSQLite, "")
	assert.Error(t, err)

	p, err := NewProvider(DriverSQLite, "food.db")
	require.NoError(t, err)
	assert.Equal(t, sq.Question, p.Placeholder())
	assert.Equal(t, "food.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", p.source())

	p, err = NewProvider(DriverPgx, "postgres://localhost/food")
	require.NoError(t, err)
	assert.Equal(t, sq.Dollar, p.Placeholder())
	assert.Equal(t, "postgres://localhost/food", p.source())
}

func TestAcquireUnavailable(t *testing.T) {
	p, err := NewProvider(DriverSQLite, filepath.Join(t.TempDir(), "no", "such", "dir", "food.db"))
	require.NoError(t, err)

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, types.ErrStoreUnavailable)

	assert.ErrorIs(t, p.Ping(context.Background()), types.ErrStoreUnavailable)
}

func TestWithReleasesHandle(t *testing.T) {
	p, err := NewProvider(DriverSQLite, filepath.Join(t.TempDir(), "food.db"))
	require.NoError(t, err)

	var captured *sql.DB
	boom := errors.New("boom")
	err = p.With(context.Background(), func(conn *sql.DB) error {
		captured = conn
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// a closed handle refuses new work
	require.NotNil(t, captured)
	assert.Error(t, captured.Ping())
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	p, err := NewProvider(DriverSQLite, filepath.Join(t.TempDir(), "food.db"))
	require.NoError(t, err)

	require.NoError(t, p.Migrate(ctx))
	require.NoError(t, p.Migrate(ctx))

	err = p.With(ctx, func(conn *sql.DB) error {
		var count int
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM "Food_Listings"`).Scan(&count)
	})
	assert.NoError(t, err)
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	p, err := NewProvider(DriverSQLite, filepath.Join(t.TempDir(), "food.db"))
	require.NoError(t, err)
	require.NoError(t, p.Migrate(ctx))

	err = p.With(ctx, func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `INSERT INTO "Food_Listings"
			("Food_Name", "Quantity", "Expiry_Date", "Provider_ID", "Food_Type", "Meal_Type")
			VALUES ('Rice', -5, '2025-01-01', 1, 'Vegan', 'Lunch')`)
		return err
	})
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err))
	assert.ErrorIs(t, Classify(err), types.ErrConstraintViolation)

	pgErr := &pgconn.PgError{Code: "23505"}
	assert.ErrorIs(t, Classify(pgErr), types.ErrConstraintViolation)

	other := errors.New("disk I/O error")
	assert.ErrorIs(t, Classify(other), types.ErrStoreUnavailable)
	assert.ErrorIs(t, Classify(other), other)

	assert.NoError(t, Classify(nil))
}

func TestResyncSequence(t *testing.T) {
	assert.Contains(t, resyncListingSequence, `COALESCE(MAX("Food_ID"), 0) + 1, false`)

	ctx := context.Background()
	provider, err := NewProvider(DriverSQLite, filepath.Join(t.TempDir(), "food.db"))
	require.NoError(t, err)
	require.NoError(t, provider.Migrate(ctx))

	err = provider.With(ctx, func(conn *sql.DB) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		return provider.ResyncSequence(ctx, tx)
	})
	assert.NoError(t, err)
}

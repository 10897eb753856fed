package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/campusadmin/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*db.SQLiteUnitOfWork, func() int) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	count := func() int {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM journal_entries`).Scan(&n))
		return n
	}
	return db.NewSQLiteUnitOfWork(database), count
}

func insert(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO journal_entries (id, at, op, kind) VALUES (?, '2024-01-01T00:00:00Z', 'add', 'task')`, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, count := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insert(ctx, tx, "k1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, count := openUoW(t)
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		require.NoError(t, insert(ctx, tx, "k1"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count())
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, count := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			require.NoError(t, insert(ctx, tx, "k1"))
			panic("kaboom")
		})
	})
	assert.Equal(t, 0, count())
}

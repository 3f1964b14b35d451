package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_SaveSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`(?s)INSERT INTO carts \(user_id, snapshot, updated_at\).*ON CONFLICT \(user_id\)`).
			WithArgs("u1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		items := []LineItem{{ProductID: "p1", Title: "Netflix Premium", Price: 500, Quantity: 1}}
		assert.NoError(t, repo.SaveSnapshot(ctx, "u1", items))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`(?s)INSERT INTO carts`).
			WillReturnError(errors.New("db error"))

		err = repo.SaveSnapshot(ctx, "u1", nil)
		assert.ErrorIs(t, err, ErrFailedSaveSnapshot)
	})
}

func TestRepository_LoadSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		snap := Snapshot{
			Items:      []LineItem{{ProductID: "p1", Title: "Netflix Premium", Price: 500, Quantity: 2}},
			Total:      1000,
			CapturedAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(snap)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT snapshot FROM carts WHERE user_id = \$1`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"snapshot"}).AddRow(payload))

		items, err := repo.LoadSnapshot(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("NoRowsMeansEmptyCart", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT snapshot FROM carts WHERE user_id = \$1`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"snapshot"}))

		items, err := repo.LoadSnapshot(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("CorruptSnapshotDegradesToEmpty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT snapshot FROM carts WHERE user_id = \$1`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"snapshot"}).AddRow([]byte("{not json")))

		items, err := repo.LoadSnapshot(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestRepository_DeleteSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM carts WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteSnapshot(context.Background(), "u1"))
}

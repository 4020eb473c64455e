package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "created_at"}).
			AddRow(1, 7, 3, 2, time.Now())

		mock.ExpectQuery("SELECT id, user_id, product_id, quantity, created_at\\s+FROM carts").
			WithArgs(7, 3).
			WillReturnRows(rows)

		item, err := repo.GetItem(context.Background(), 7, 3)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("NotFound returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, product_id, quantity, created_at\\s+FROM carts").
			WithArgs(7, 99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "created_at"}))

		item, err := repo.GetItem(context.Background(), 7, 99)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_CreateItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO carts").
			WithArgs(7, 3, 1).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.CreateItem(context.Background(), 7, 3, 1))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO carts").
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.CreateItem(context.Background(), 7, 3, 1))
	})
}

func TestRepository_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE carts\\s+SET quantity = \\$1").
			WithArgs(3, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateQuantity(context.Background(), 1, 3))
	})

	t.Run("NoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE carts\\s+SET quantity = \\$1").
			WithArgs(3, 42).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateQuantity(context.Background(), 42, 3), ErrNotInCart)
	})
}

func TestRepository_DeleteItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts WHERE id = \\$1").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteItem(context.Background(), 1))
	})

	t.Run("NoRows", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts WHERE id = \\$1").
			WithArgs(42).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteItem(context.Background(), 42), ErrNotInCart)
	})
}

func TestRepository_GetCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "product_id", "quantity", "created_at",
			"title", "price", "img", "weight",
		}).
			AddRow(1, 7, 3, 2, time.Now(), "Milk", 89.0, "milk.png", 1.0).
			AddRow(2, 7, 4, 1, time.Now(), "Bread", 45.0, "bread.png", 0.4)

		mock.ExpectQuery("SELECT\\s+c.id, c.user_id, .* FROM carts c\\s+JOIN products p").
			WithArgs(7).
			WillReturnRows(rows)

		items, err := repo.GetCart(context.Background(), 7)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "Milk", items[0].Title)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT\\s+c.id, c.user_id, .* FROM carts c").
			WithArgs(8).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "product_id", "quantity", "created_at",
				"title", "price", "img", "weight",
			}))

		items, err := repo.GetCart(context.Background(), 8)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}

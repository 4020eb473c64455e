package favorite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(7, 3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 7, 3)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO favorites").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Create(context.Background(), 7, 3))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO favorites").
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.Create(context.Background(), 7, 3))
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM favorites").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 7, 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM favorites").
			WithArgs(7, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 7, 99), ErrNotInFavorites)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "product_id", "created_at",
		"title", "price", "img", "weight", "quantity",
	}).AddRow(1, 7, 3, time.Now(), "Milk", 89.0, "milk.png", 1.0, 10)

	mock.ExpectQuery("SELECT\\s+f.id, f.user_id, .* FROM favorites f\\s+JOIN products p").
		WithArgs(7).
		WillReturnRows(rows)

	favorites, err := repo.List(context.Background(), 7)
	assert.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Milk", favorites[0].Title)
}

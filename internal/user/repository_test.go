package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{"id", "email", "password", "role", "bonus_points", "phone_number", "address", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "bonus_points", "created_at"}).
			AddRow(1, "a@b.com", "hashed", "USER", 0, time.Now())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("a@b.com", "hashed", "USER").
			WillReturnRows(rows)

		u, err := repo.Create(context.Background(), "a@b.com", "hashed", "USER")
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, 0, u.BonusPoints)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), "a@b.com", "hashed", "USER")
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(7, "a@b.com", "hashed", "USER", 500, nil, nil, time.Now())

		mock.ExpectQuery("SELECT id, email, password, role, bonus_points, phone_number, address, created_at\\s+FROM users WHERE id").
			WithArgs(7).
			WillReturnRows(rows)

		u, err := repo.FindByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 500, u.BonusPoints)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE id").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		_, err := repo.FindByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_GetProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success with recent orders", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE id").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(7, "a@b.com", "hashed", "USER", 120, nil, nil, time.Now()))

		orderRows := sqlmock.NewRows([]string{"id", "status", "final_amount", "created_at"}).
			AddRow(3, "Processing", 970.0, time.Now()).
			AddRow(2, "Processing", 450.0, time.Now())

		mock.ExpectQuery("SELECT id, status, final_amount, created_at\\s+FROM orders\\s+WHERE user_id = \\$1\\s+ORDER BY created_at DESC LIMIT \\$2").
			WithArgs(7, 5).
			WillReturnRows(orderRows)

		p, err := repo.GetProfile(context.Background(), 7, 5)
		assert.NoError(t, err)
		assert.Len(t, p.Orders, 2)
		assert.Equal(t, 120, p.BonusPoints)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE id").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		_, err := repo.GetProfile(context.Background(), 99, 5)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Partial update", func(t *testing.T) {
		phone := "+7 900 000-00-00"

		rows := sqlmock.NewRows(userColumns()).
			AddRow(7, "a@b.com", "hashed", "USER", 0, phone, nil, time.Now())

		mock.ExpectQuery("UPDATE users SET phone_number = \\$1\\s+WHERE id = \\$2").
			WithArgs(phone, 7).
			WillReturnRows(rows)

		u, err := repo.Update(context.Background(), UpdateUserParams{UserID: 7, PhoneNumber: &phone})
		assert.NoError(t, err)
		assert.Equal(t, phone, *u.PhoneNumber)
	})

	t.Run("No fields falls back to read", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE id").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(7, "a@b.com", "hashed", "USER", 0, nil, nil, time.Now()))

		u, err := repo.Update(context.Background(), UpdateUserParams{UserID: 7})
		assert.NoError(t, err)
		assert.Equal(t, "a@b.com", u.Email)
	})
}

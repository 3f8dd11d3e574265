package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestGetStats(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM foods`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE deleted_at IS NULL$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE deleted_at IS NULL AND payment = true`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(80))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1840.50))
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Food Processing", 30).
			AddRow("Out for Delivery", 20).
			AddRow("Delivered", 50))

	repo := NewStatsRepository(db)
	stats, err := repo.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(12), stats.TotalFoods)
	assert.Equal(t, int64(100), stats.TotalOrders)
	assert.Equal(t, int64(80), stats.PaidOrders)
	assert.Equal(t, 1840.50, stats.Revenue)
	assert.Equal(t, 30, stats.OrdersByStatus["Food Processing"])
	assert.Equal(t, 50, stats.OrdersByStatus["Delivered"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatsQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnError(assert.AnError)

	repo := NewStatsRepository(db)
	_, err := repo.GetStats(context.Background())

	assert.Error(t, err)
}

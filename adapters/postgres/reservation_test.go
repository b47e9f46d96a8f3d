package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/domain"
)

func TestReservationPostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &ReservationPostgreSQLRepository{}

	res := &domain.Reservation{
		LotID:      1,
		CustomerID: 2,
		QuantityKg: decimal.NewFromInt(10),
		ReservedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Create(context.Background(), tx, res)
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationPostgreSQLRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &ReservationPostgreSQLRepository{}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reservations WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.Delete(context.Background(), tx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cn.ErrEntityNotFound))
	require.NoError(t, tx.Commit())
}

func TestReservationPostgreSQLRepository_SumByLot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &ReservationPostgreSQLRepository{}

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity_kg\\), 0\\) FROM reservations WHERE lot_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("25.5"))

	sum, err := repo.SumByLot(context.Background(), db, 1)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.5").Equal(sum))
}

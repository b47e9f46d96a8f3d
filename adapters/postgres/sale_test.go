package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/domain"
)

func TestSalePostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &SalePostgreSQLRepository{}

	s := &domain.Sale{CustomerID: 1, SoldAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sales").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Create(context.Background(), tx, s)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalePostgreSQLRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &SalePostgreSQLRepository{connection: conn}

	mock.ExpectQuery("SELECT id, customer_id, sold_at, notes, created_at FROM sales WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cn.ErrEntityNotFound))
}

func TestSalePostgreSQLRepository_CustomersByLots(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &SalePostgreSQLRepository{connection: conn}

	rows := sqlmock.NewRows([]string{"lot_id", "customer_id"}).
		AddRow(int64(1), int64(5))

	mock.ExpectQuery("SELECT sl.lot_id, s.customer_id").
		WillReturnRows(rows)

	result, err := repo.CustomersByLots(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, result[1])
}

func TestSalePostgreSQLRepository_CustomersByLots_Empty(t *testing.T) {
	repo := &SalePostgreSQLRepository{}

	result, err := repo.CustomersByLots(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrace/lotcore/domain"
)

func TestProductionPostgreSQLRepository_CreateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &ProductionPostgreSQLRepository{}

	o := &domain.ProductionOrder{
		ProcessProfileID: 1,
		ProcessType:      domain.ProcessTypeBreakdown,
		StartedAt:        time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO production_orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.CreateOrder(context.Background(), tx, o)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductionPostgreSQLRepository_InputsByOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &ProductionPostgreSQLRepository{connection: conn}

	rows := sqlmock.NewRows([]string{"id", "order_id", "lot_id", "quantity_kg"}).
		AddRow(int64(1), int64(9), int64(1), "50")

	mock.ExpectQuery("SELECT id, order_id, lot_id, quantity_kg FROM production_inputs WHERE order_id = \\$1").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	inputs, err := repo.InputsByOrder(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.True(t, decimal.NewFromInt(50).Equal(inputs[0].QuantityKg))
}

func TestProductionPostgreSQLRepository_OrdersWithLotAsInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &ProductionPostgreSQLRepository{connection: conn}

	rows := sqlmock.NewRows([]string{"lot_id", "order_id"}).
		AddRow(int64(1), int64(9)).
		AddRow(int64(1), int64(10))

	mock.ExpectQuery("SELECT lot_id, order_id FROM production_inputs WHERE lot_id = ANY\\(\\$1\\)").
		WillReturnRows(rows)

	result, err := repo.OrdersWithLotAsInput(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 10}, result[1])
}

func TestProductionPostgreSQLRepository_InputLotsByOrders_Empty(t *testing.T) {
	repo := &ProductionPostgreSQLRepository{}

	lots, err := repo.InputLotsByOrders(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, lots)
}

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

func TestMovementPostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &MovementPostgreSQLRepository{tableName: "inventory_movements"}

	mv := &domain.InventoryMovement{
		LotID:      1,
		QuantityKg: decimal.NewFromInt(100),
		MovedAt:    time.Now(),
		MoveType:   domain.MoveTypeReceiving,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO inventory_movements").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Create(context.Background(), tx, mv)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementPostgreSQLRepository_SumByLot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &MovementPostgreSQLRepository{tableName: "inventory_movements"}

	rows := sqlmock.NewRows([]string{"move_type", "quantity_kg"}).
		AddRow("receiving", "100").
		AddRow("sale", "30").
		AddRow("breakdown_loss:trim", "5")

	mock.ExpectQuery("SELECT move_type, quantity_kg FROM inventory_movements WHERE lot_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	sum, err := repo.SumByLot(context.Background(), db, 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(65).Equal(sum), "got %s", sum)
}

func TestMovementPostgreSQLRepository_ListByLot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &MovementPostgreSQLRepository{connection: conn, tableName: "inventory_movements"}

	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "lot_id", "from_location_id", "to_location_id", "quantity_kg",
		"moved_at", "move_type", "created_at",
	}).AddRow(int64(1), int64(1), nil, int64(2), "100", now, "receiving", now)

	mock.ExpectQuery("SELECT (.+) FROM inventory_movements WHERE lot_id = \\$1").
		WithArgs(int64(1), uint64(10), uint64(0)).
		WillReturnRows(rows)

	movements, err := repo.ListByLot(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, domain.MoveTypeReceiving, movements[0].MoveType)
	assert.Nil(t, movements[0].FromLocationID)
	require.NotNil(t, movements[0].ToLocationID)
	assert.Equal(t, int64(2), *movements[0].ToLocationID)
}
